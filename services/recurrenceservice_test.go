package services

import (
	"testing"
	"time"

	"frilance/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDueDate(t *testing.T) {
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)

	next, ok := NextDueDate(base, model.RecurringDaily)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 11, 9, 0, 0, 0, time.Local), next)

	next, ok = NextDueDate(base, model.RecurringWeekly)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 17, 9, 0, 0, 0, time.Local), next)

	_, ok = NextDueDate(base, model.RecurringNone)
	assert.False(t, ok)
}

func TestNextDueDateMonthlyClampsToShortMonth(t *testing.T) {
	jan31 := time.Date(2024, 1, 31, 12, 0, 0, 0, time.Local)
	next, ok := NextDueDate(jan31, model.RecurringMonthly)
	require.True(t, ok)
	// 2024 is a leap year
	assert.Equal(t, time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local), next)

	jan31 = time.Date(2023, 1, 31, 12, 0, 0, 0, time.Local)
	next, ok = NextDueDate(jan31, model.RecurringMonthly)
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, 2, 28, 12, 0, 0, 0, time.Local), next)
}

func TestNextDueDateMonthlyKeepsDay(t *testing.T) {
	mar15 := time.Date(2024, 3, 15, 8, 30, 0, 0, time.Local)
	next, ok := NextDueDate(mar15, model.RecurringMonthly)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 15, 8, 30, 0, 0, time.Local), next)
}

func TestNextDueDateMonthlyYearRollover(t *testing.T) {
	dec31 := time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local)
	next, ok := NextDueDate(dec31, model.RecurringMonthly)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local), next)
}

func TestSuccessorCopiesEverythingButCompletion(t *testing.T) {
	due := time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local)
	now := time.Date(2024, 1, 10, 18, 0, 0, 0, time.Local)
	original := model.Todo{
		TodoID:      "orig",
		Title:       "Send monthly report",
		Description: "numbers for the retainer",
		ClientID:    "c-1",
		ClientName:  "Acme",
		ProjectID:   "p-1",
		ProjectName: "Retainer",
		Priority:    model.PriorityHigh,
		DueDate:     &due,
		Completed:   true,
		Recurring:   model.RecurringWeekly,
		Labels:      []string{"billing"},
	}

	next, ok := Successor(original, now)
	require.True(t, ok)
	assert.NotEqual(t, original.TodoID, next.TodoID)
	assert.Equal(t, original.Title, next.Title)
	assert.Equal(t, original.ClientName, next.ClientName)
	assert.Equal(t, original.Priority, next.Priority)
	assert.Equal(t, original.Recurring, next.Recurring)
	assert.Equal(t, original.Labels, next.Labels)
	assert.False(t, next.Completed)
	assert.Empty(t, next.Subtasks)
	require.NotNil(t, next.DueDate)
	assert.Equal(t, due.AddDate(0, 0, 7), *next.DueDate)
	assert.Equal(t, now, next.CreatedAt)
}

func TestSuccessorRequiresDueDateAndRecurrence(t *testing.T) {
	_, ok := Successor(model.Todo{Recurring: model.RecurringDaily}, time.Now())
	assert.False(t, ok, "no due date, no successor")

	due := time.Now()
	_, ok = Successor(model.Todo{DueDate: &due, Recurring: model.RecurringNone}, time.Now())
	assert.False(t, ok)
}
