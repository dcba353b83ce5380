package model

import "time"

type TimeEntry struct {
	EntryID     string    `json:"id"`
	ProjectID   string    `json:"projectId,omitempty"`
	ProjectName string    `json:"projectName,omitempty"`
	Description string    `json:"description"`
	Hours       float64   `json:"hours"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
