package services

import (
	"fmt"
	"sort"

	"frilance/model"
)

// BuildCalendarEvents merges project deadlines, invoice due dates and todo
// due dates into a single agenda sorted by date. Rows without a date are
// skipped rather than failing.
func BuildCalendarEvents(projects []model.Project, invoices []model.Invoice, todos []model.Todo) []model.CalendarEvent {
	events := []model.CalendarEvent{}

	for _, p := range projects {
		if p.Deadline == nil {
			continue
		}
		events = append(events, model.CalendarEvent{
			EventID:     p.ProjectID,
			Title:       "Deadline: " + p.Name,
			Date:        *p.Deadline,
			Type:        model.EventProject,
			Status:      string(p.Status),
			Description: p.ClientName,
		})
	}
	for _, inv := range invoices {
		if inv.DueDate == nil {
			continue
		}
		total := inv.Total
		events = append(events, model.CalendarEvent{
			EventID:     inv.InvoiceID,
			Title:       fmt.Sprintf("Invoice #%s", inv.InvoiceNumber),
			Date:        *inv.DueDate,
			Type:        model.EventInvoice,
			Status:      string(inv.Status),
			Amount:      &total,
			Description: inv.ClientName,
		})
	}
	for _, t := range todos {
		if t.DueDate == nil {
			continue
		}
		status := "pending"
		if t.Completed {
			status = "completed"
		}
		events = append(events, model.CalendarEvent{
			EventID:     t.TodoID,
			Title:       t.Title,
			Date:        *t.DueDate,
			Type:        model.EventTodo,
			Status:      status,
			Priority:    string(t.Priority),
			Description: t.Description,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}
