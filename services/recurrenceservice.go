package services

import (
	"time"

	"frilance/model"

	"github.com/google/uuid"
)

// NextDueDate advances a due date by one recurrence period. It reports
// false for non-recurring todos. Monthly recurrence keeps the day of month
// and clamps to the target month's last day when that month is shorter
// (Jan 31 -> Feb 29 in a leap year).
func NextDueDate(due time.Time, recurring model.Recurrence) (time.Time, bool) {
	switch recurring {
	case model.RecurringDaily:
		return due.AddDate(0, 0, 1), true
	case model.RecurringWeekly:
		return due.AddDate(0, 0, 7), true
	case model.RecurringMonthly:
		return addMonthClamped(due), true
	default:
		return time.Time{}, false
	}
}

func addMonthClamped(t time.Time) time.Time {
	y, m, d := t.Date()
	h, min, sec := t.Clock()
	// day 0 of month m+2 normalizes to the last day of month m+1
	last := time.Date(y, m+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > last {
		d = last
	}
	return time.Date(y, m+1, d, h, min, sec, t.Nanosecond(), t.Location())
}

// Successor builds the next occurrence for a recurring todo that has just
// been completed. The original todo is left untouched as a completed
// historical record; the successor copies everything except completion
// state, subtasks and timestamps.
func Successor(t model.Todo, now time.Time) (model.Todo, bool) {
	if t.DueDate == nil {
		return model.Todo{}, false
	}
	next, ok := NextDueDate(*t.DueDate, t.Recurring)
	if !ok {
		return model.Todo{}, false
	}
	return model.Todo{
		TodoID:      uuid.New().String(),
		Title:       t.Title,
		Description: t.Description,
		ClientID:    t.ClientID,
		ClientName:  t.ClientName,
		ProjectID:   t.ProjectID,
		ProjectName: t.ProjectName,
		Priority:    t.Priority,
		DueDate:     &next,
		Completed:   false,
		Recurring:   t.Recurring,
		Labels:      append([]string(nil), t.Labels...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, true
}
