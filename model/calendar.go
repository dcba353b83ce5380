package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventProject EventType = "project"
	EventInvoice EventType = "invoice"
	EventTodo    EventType = "todo"
)

// CalendarEvent is a derived row merging project deadlines, invoice due
// dates and todo due dates into one agenda.
type CalendarEvent struct {
	EventID     string           `json:"id"`
	Title       string           `json:"title"`
	Date        time.Time        `json:"date"`
	Type        EventType        `json:"type"`
	Status      string           `json:"status"`
	Description string           `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Priority    string           `json:"priority,omitempty"`
}
