package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"frilance/model"
)

type ViewKind string

const (
	ViewAll      ViewKind = "all"
	ViewToday    ViewKind = "today"
	ViewUpcoming ViewKind = "upcoming"
	ViewPriority ViewKind = "priority"
	ViewProject  ViewKind = "project"
	ViewClient   ViewKind = "client"
	ViewLabel    ViewKind = "label"
)

// TodoView selects which todos are visible. Priority is set only for
// ViewPriority, RefID only for ViewProject, ViewClient and ViewLabel.
type TodoView struct {
	Kind     ViewKind
	Priority model.TodoPriority
	RefID    string
}

func AllView() TodoView                             { return TodoView{Kind: ViewAll} }
func TodayView() TodoView                           { return TodoView{Kind: ViewToday} }
func UpcomingView() TodoView                        { return TodoView{Kind: ViewUpcoming} }
func PriorityView(p model.TodoPriority) TodoView    { return TodoView{Kind: ViewPriority, Priority: p} }
func ProjectView(id string) TodoView                { return TodoView{Kind: ViewProject, RefID: id} }
func ClientView(id string) TodoView                 { return TodoView{Kind: ViewClient, RefID: id} }
func LabelView(id string) TodoView                  { return TodoView{Kind: ViewLabel, RefID: id} }

// ParseTodoView builds a view from query parameters. An empty kind means
// the All view; priority and ref carry the variant argument.
func ParseTodoView(kind, priority, ref string) (TodoView, error) {
	switch ViewKind(kind) {
	case ViewAll, "":
		return AllView(), nil
	case ViewToday:
		return TodayView(), nil
	case ViewUpcoming:
		return UpcomingView(), nil
	case ViewPriority:
		p := model.TodoPriority(priority)
		if !p.Valid() {
			return TodoView{}, fmt.Errorf("invalid priority %q", priority)
		}
		return PriorityView(p), nil
	case ViewProject:
		if ref == "" {
			return TodoView{}, fmt.Errorf("project view requires an id")
		}
		return ProjectView(ref), nil
	case ViewClient:
		if ref == "" {
			return TodoView{}, fmt.Errorf("client view requires an id")
		}
		return ClientView(ref), nil
	case ViewLabel:
		if ref == "" {
			return TodoView{}, fmt.Errorf("label view requires an id")
		}
		return LabelView(ref), nil
	default:
		return TodoView{}, fmt.Errorf("unknown view %q", kind)
	}
}

// Matches reports whether the todo belongs to the view. Date views compare
// against the local calendar date of now; todos without a due date never
// match them.
func (v TodoView) Matches(t model.Todo, now time.Time) bool {
	switch v.Kind {
	case ViewToday:
		return t.DueDate != nil && sameCalendarDay(*t.DueDate, now)
	case ViewUpcoming:
		return t.DueDate != nil && t.DueDate.After(endOfDay(now))
	case ViewPriority:
		return t.Priority == v.Priority
	case ViewProject:
		return t.ProjectID == v.RefID
	case ViewClient:
		return t.ClientID == v.RefID
	case ViewLabel:
		return t.HasLabel(v.RefID)
	default:
		return true // ViewAll
	}
}

// FilterTodos applies the search text first, then the view predicate, and
// returns the survivors in their incoming order.
func FilterTodos(todos []model.Todo, view TodoView, query string, now time.Time) []model.Todo {
	result := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if !matchesSearch(t, query) {
			continue
		}
		if !view.Matches(t, now) {
			continue
		}
		result = append(result, t)
	}
	return result
}

func matchesSearch(t model.Todo, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(t.ClientName), q) ||
		strings.Contains(strings.ToLower(t.ProjectName), q)
}

type SortOption string

const (
	SortDueDate   SortOption = "due_date"
	SortPriority  SortOption = "priority"
	SortCreatedAt SortOption = "created_at"
	SortTitle     SortOption = "title"
)

// ParseSortOption falls back to due-date ordering for anything it does not
// recognize, matching the UI default.
func ParseSortOption(v string) SortOption {
	switch SortOption(v) {
	case SortPriority, SortCreatedAt, SortTitle:
		return SortOption(v)
	default:
		return SortDueDate
	}
}

// SortTodos orders todos in place: incomplete before completed regardless
// of the chosen key, then by the selected secondary key. The sort is stable
// so equal todos keep their incoming order.
func SortTodos(todos []model.Todo, by SortOption) {
	sort.SliceStable(todos, func(i, j int) bool {
		a, b := todos[i], todos[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch by {
		case SortPriority:
			return a.Priority.Rank() < b.Priority.Rank()
		case SortCreatedAt:
			return a.CreatedAt.After(b.CreatedAt)
		case SortTitle:
			return a.Title < b.Title
		default: // due_date; missing dates sort last
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return false
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			default:
				return a.DueDate.Before(*b.DueDate)
			}
		}
	})
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}
