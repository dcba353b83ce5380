package services

import (
	"testing"
	"time"

	"frilance/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestParseTodoView(t *testing.T) {
	view, err := ParseTodoView("", "", "")
	require.NoError(t, err)
	assert.Equal(t, ViewAll, view.Kind)

	view, err = ParseTodoView("priority", "high", "")
	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, view.Priority)

	_, err = ParseTodoView("priority", "urgent", "")
	assert.Error(t, err)

	_, err = ParseTodoView("project", "", "")
	assert.Error(t, err, "project view needs an id")

	_, err = ParseTodoView("someday", "", "")
	assert.Error(t, err)
}

func TestTodayViewMatchesCalendarDate(t *testing.T) {
	now := time.Date(2024, 3, 5, 15, 30, 0, 0, time.Local)

	morning := model.Todo{DueDate: datePtr(time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local))}
	lateNight := model.Todo{DueDate: datePtr(time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local))}
	tomorrow := model.Todo{DueDate: datePtr(time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local))}
	undated := model.Todo{}

	view := TodayView()
	assert.True(t, view.Matches(morning, now))
	assert.True(t, view.Matches(lateNight, now))
	assert.False(t, view.Matches(tomorrow, now))
	assert.False(t, view.Matches(undated, now))
}

func TestUpcomingViewStartsAfterToday(t *testing.T) {
	now := time.Date(2024, 3, 5, 15, 30, 0, 0, time.Local)

	today := model.Todo{DueDate: datePtr(time.Date(2024, 3, 5, 23, 0, 0, 0, time.Local))}
	tomorrow := model.Todo{DueDate: datePtr(time.Date(2024, 3, 6, 8, 0, 0, 0, time.Local))}
	yesterday := model.Todo{DueDate: datePtr(time.Date(2024, 3, 4, 8, 0, 0, 0, time.Local))}

	view := UpcomingView()
	assert.False(t, view.Matches(today, now))
	assert.True(t, view.Matches(tomorrow, now))
	assert.False(t, view.Matches(yesterday, now))
}

func TestAssociationViews(t *testing.T) {
	todo := model.Todo{
		ClientID:  "c-1",
		ProjectID: "p-1",
		Labels:    []string{"design", "urgent"},
	}
	now := time.Now()

	assert.True(t, ProjectView("p-1").Matches(todo, now))
	assert.False(t, ProjectView("p-2").Matches(todo, now))
	assert.True(t, ClientView("c-1").Matches(todo, now))
	assert.True(t, LabelView("urgent").Matches(todo, now))
	assert.False(t, LabelView("billing").Matches(todo, now))
}

func TestFilterTodosSearch(t *testing.T) {
	todos := []model.Todo{
		{TodoID: "1", Title: "Design landing page", ClientName: "Acme"},
		{TodoID: "2", Title: "Send invoice", Description: "for the acme project"},
		{TodoID: "3", Title: "Grocery run"},
	}
	now := time.Now()

	got := FilterTodos(todos, AllView(), "ACME", now)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].TodoID)
	assert.Equal(t, "2", got[1].TodoID)

	got = FilterTodos(todos, AllView(), "", now)
	assert.Len(t, got, 3)
}

func TestSortTodosCompletedAlwaysLast(t *testing.T) {
	todos := []model.Todo{
		{TodoID: "done", Completed: true, Priority: model.PriorityHigh},
		{TodoID: "open", Completed: false, Priority: model.PriorityLow},
	}
	SortTodos(todos, SortPriority)
	assert.Equal(t, "open", todos[0].TodoID)
	assert.Equal(t, "done", todos[1].TodoID)
}

func TestSortTodosByDueDateNilLast(t *testing.T) {
	todos := []model.Todo{
		{TodoID: "undated"},
		{TodoID: "later", DueDate: datePtr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))},
		{TodoID: "sooner", DueDate: datePtr(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))},
	}
	SortTodos(todos, SortDueDate)
	assert.Equal(t, "sooner", todos[0].TodoID)
	assert.Equal(t, "later", todos[1].TodoID)
	assert.Equal(t, "undated", todos[2].TodoID)
}

func TestSortTodosByPriority(t *testing.T) {
	todos := []model.Todo{
		{TodoID: "l", Priority: model.PriorityLow},
		{TodoID: "h", Priority: model.PriorityHigh},
		{TodoID: "m", Priority: model.PriorityMedium},
	}
	SortTodos(todos, SortPriority)
	assert.Equal(t, []string{"h", "m", "l"}, []string{todos[0].TodoID, todos[1].TodoID, todos[2].TodoID})
}

func TestSortTodosByCreatedAtNewestFirst(t *testing.T) {
	todos := []model.Todo{
		{TodoID: "oldest", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{TodoID: "newest", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{TodoID: "middle", CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	SortTodos(todos, SortCreatedAt)
	assert.Equal(t, []string{"newest", "middle", "oldest"},
		[]string{todos[0].TodoID, todos[1].TodoID, todos[2].TodoID})
}

func TestSortTodosByTitle(t *testing.T) {
	todos := []model.Todo{
		{TodoID: "c", Title: "Call client"},
		{TodoID: "a", Title: "Archive files"},
		{TodoID: "b", Title: "Book flights"},
	}
	SortTodos(todos, SortTitle)
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{todos[0].TodoID, todos[1].TodoID, todos[2].TodoID})
}

func TestSortTodosIsStable(t *testing.T) {
	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	todos := []model.Todo{
		{TodoID: "first", DueDate: &due},
		{TodoID: "second", DueDate: &due},
	}
	SortTodos(todos, SortDueDate)
	assert.Equal(t, "first", todos[0].TodoID)
	assert.Equal(t, "second", todos[1].TodoID)
}

func TestParseSortOptionFallsBackToDueDate(t *testing.T) {
	assert.Equal(t, SortPriority, ParseSortOption("priority"))
	assert.Equal(t, SortDueDate, ParseSortOption(""))
	assert.Equal(t, SortDueDate, ParseSortOption("garbage"))
}
