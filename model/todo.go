package model

import (
	"time"
)

type TodoPriority string

const (
	PriorityLow    TodoPriority = "low"
	PriorityMedium TodoPriority = "medium"
	PriorityHigh   TodoPriority = "high"
)

// Rank orders priorities for sorting: high sorts before medium before low.
func (p TodoPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func (p TodoPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Recurrence string

const (
	RecurringNone    Recurrence = "none"
	RecurringDaily   Recurrence = "daily"
	RecurringWeekly  Recurrence = "weekly"
	RecurringMonthly Recurrence = "monthly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurringNone, RecurringDaily, RecurringWeekly, RecurringMonthly:
		return true
	}
	return false
}

type Todo struct {
	TodoID      string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ClientID    string       `json:"clientId,omitempty"`
	ClientName  string       `json:"clientName,omitempty"`
	ProjectID   string       `json:"projectId,omitempty"`
	ProjectName string       `json:"projectName,omitempty"`
	Priority    TodoPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Completed   bool         `json:"completed"`
	Recurring   Recurrence   `json:"recurring"`
	Labels      []string     `json:"labels"`
	Subtasks    []Subtask    `json:"subtasks"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (t Todo) HasLabel(id string) bool {
	for _, l := range t.Labels {
		if l == id {
			return true
		}
	}
	return false
}

type Subtask struct {
	SubtaskID string    `json:"id"`
	TodoID    string    `json:"todoId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// TodoLabel is one entry of the fixed label catalog the UI offers.
type TodoLabel struct {
	LabelID string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

func TodoLabels() []TodoLabel {
	return []TodoLabel{
		{LabelID: "urgent", Name: "Urgent", Color: "red"},
		{LabelID: "important", Name: "Important", Color: "orange"},
		{LabelID: "review", Name: "Review", Color: "purple"},
		{LabelID: "meeting", Name: "Meeting", Color: "blue"},
		{LabelID: "design", Name: "Design", Color: "pink"},
		{LabelID: "development", Name: "Development", Color: "emerald"},
		{LabelID: "bug", Name: "Bug", Color: "crimson"},
		{LabelID: "feature", Name: "Feature", Color: "cyan"},
	}
}
