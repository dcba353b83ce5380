package services

import (
	"database/sql"
	"errors"
	"time"

	"frilance/model"

	"github.com/google/uuid"
)

var ErrTodoNotFound = errors.New("todo not found")

// FetchTodos returns all todos with their subtasks attached, in the base
// order the UI expects: incomplete first, then due date with missing dates
// last, then newest created.
func FetchTodos(db *sql.DB) ([]model.Todo, error) {
	rows, err := db.Query(`SELECT todo_id, title, description, client_id, client_name,
		project_id, project_name, priority, due_date, completed, recurring, labels,
		created_at, updated_at
		FROM todos
		ORDER BY completed ASC, due_date IS NULL ASC, due_date ASC, created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []model.Todo{}
	index := map[string]int{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		index[t.TodoID] = len(todos)
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	subtasks, err := fetchSubtasks(db)
	if err != nil {
		return nil, err
	}
	for _, s := range subtasks {
		if i, ok := index[s.TodoID]; ok {
			todos[i].Subtasks = append(todos[i].Subtasks, s)
		}
	}
	return todos, nil
}

func fetchSubtasks(db *sql.DB) ([]model.Subtask, error) {
	rows, err := db.Query(`SELECT subtask_id, todo_id, title, completed, sort_order, created_at
		FROM subtasks ORDER BY sort_order ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subtasks []model.Subtask
	for rows.Next() {
		var s model.Subtask
		var completedInt int
		var createdStr string
		if err := rows.Scan(&s.SubtaskID, &s.TodoID, &s.Title, &completedInt, &s.SortOrder, &createdStr); err != nil {
			return nil, err
		}
		s.Completed = completedInt == 1
		s.CreatedAt = parseTime(createdStr)
		subtasks = append(subtasks, s)
	}
	return subtasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (model.Todo, error) {
	var t model.Todo
	var completedInt int
	var dueStr sql.NullString
	var labelsStr, createdStr, updatedStr string
	err := row.Scan(&t.TodoID, &t.Title, &t.Description, &t.ClientID, &t.ClientName,
		&t.ProjectID, &t.ProjectName, &t.Priority, &dueStr, &completedInt, &t.Recurring,
		&labelsStr, &createdStr, &updatedStr)
	if err != nil {
		return model.Todo{}, err
	}
	t.Completed = completedInt == 1
	t.DueDate = parseNullTime(dueStr)
	t.Labels = splitList(labelsStr)
	t.Subtasks = []model.Subtask{}
	t.CreatedAt = parseTime(createdStr)
	t.UpdatedAt = parseTime(updatedStr)
	return t, nil
}

func GetTodo(db *sql.DB, todoID string) (model.Todo, error) {
	row := db.QueryRow(`SELECT todo_id, title, description, client_id, client_name,
		project_id, project_name, priority, due_date, completed, recurring, labels,
		created_at, updated_at FROM todos WHERE todo_id = ?;`, todoID)
	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		return model.Todo{}, err
	}

	rows, err := db.Query(`SELECT subtask_id, todo_id, title, completed, sort_order, created_at
		FROM subtasks WHERE todo_id = ? ORDER BY sort_order ASC;`, todoID)
	if err != nil {
		return model.Todo{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.Subtask
		var completedInt int
		var createdStr string
		if err := rows.Scan(&s.SubtaskID, &s.TodoID, &s.Title, &completedInt, &s.SortOrder, &createdStr); err != nil {
			return model.Todo{}, err
		}
		s.Completed = completedInt == 1
		s.CreatedAt = parseTime(createdStr)
		t.Subtasks = append(t.Subtasks, s)
	}
	return t, rows.Err()
}

func InsertTodo(db *sql.DB, t model.Todo) error {
	completed := 0
	if t.Completed {
		completed = 1
	}
	_, err := db.Exec(`INSERT INTO todos (todo_id, title, description, client_id, client_name,
		project_id, project_name, priority, due_date, completed, recurring, labels, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		t.TodoID, t.Title, t.Description, t.ClientID, t.ClientName,
		t.ProjectID, t.ProjectName, string(t.Priority), nullTimeString(t.DueDate),
		completed, string(t.Recurring), joinList(t.Labels), formatTime(t.CreatedAt), formatTime(t.UpdatedAt))
	return err
}

func UpdateTodo(db *sql.DB, t model.Todo) error {
	completed := 0
	if t.Completed {
		completed = 1
	}
	res, err := db.Exec(`UPDATE todos SET title = ?, description = ?, client_id = ?, client_name = ?,
		project_id = ?, project_name = ?, priority = ?, due_date = ?, completed = ?, recurring = ?,
		labels = ?, updated_at = ? WHERE todo_id = ?;`,
		t.Title, t.Description, t.ClientID, t.ClientName,
		t.ProjectID, t.ProjectName, string(t.Priority), nullTimeString(t.DueDate),
		completed, string(t.Recurring), joinList(t.Labels), formatTime(time.Now()), t.TodoID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrTodoNotFound)
}

func DeleteTodo(db *sql.DB, todoID string) error {
	if _, err := db.Exec(`DELETE FROM subtasks WHERE todo_id = ?;`, todoID); err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM todos WHERE todo_id = ?;`, todoID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrTodoNotFound)
}

// SetTodoCompleted sets the completion flag and returns the updated todo
// along with the flag's prior value, so callers can act only on an actual
// false-to-true transition.
func SetTodoCompleted(db *sql.DB, todoID string, completed bool) (model.Todo, bool, error) {
	var wasInt int
	err := db.QueryRow(`SELECT completed FROM todos WHERE todo_id = ?;`, todoID).Scan(&wasInt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Todo{}, false, ErrTodoNotFound
	}
	if err != nil {
		return model.Todo{}, false, err
	}

	val := 0
	if completed {
		val = 1
	}
	_, err = db.Exec(`UPDATE todos SET completed = ?, updated_at = ? WHERE todo_id = ?;`,
		val, formatTime(time.Now()), todoID)
	if err != nil {
		return model.Todo{}, false, err
	}
	t, err := GetTodo(db, todoID)
	return t, wasInt == 1, err
}

// InsertSubtask appends a subtask at the end of the todo's list:
// sort_order is one past the current maximum.
func InsertSubtask(db *sql.DB, todoID, title string) (model.Subtask, error) {
	if _, err := GetTodo(db, todoID); err != nil {
		return model.Subtask{}, err
	}
	var next int
	err := db.QueryRow(`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM subtasks WHERE todo_id = ?;`, todoID).Scan(&next)
	if err != nil {
		return model.Subtask{}, err
	}
	s := model.Subtask{
		SubtaskID: uuid.New().String(),
		TodoID:    todoID,
		Title:     title,
		SortOrder: next,
		CreatedAt: time.Now(),
	}
	_, err = db.Exec(`INSERT INTO subtasks (subtask_id, todo_id, title, completed, sort_order, created_at)
		VALUES (?, ?, ?, 0, ?, ?);`,
		s.SubtaskID, s.TodoID, s.Title, s.SortOrder, formatTime(s.CreatedAt))
	if err != nil {
		return model.Subtask{}, err
	}
	return s, nil
}

func SetSubtaskCompleted(db *sql.DB, subtaskID string, completed bool) error {
	val := 0
	if completed {
		val = 1
	}
	res, err := db.Exec(`UPDATE subtasks SET completed = ? WHERE subtask_id = ?;`, val, subtaskID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrTodoNotFound)
}

func DeleteSubtask(db *sql.DB, subtaskID string) error {
	res, err := db.Exec(`DELETE FROM subtasks WHERE subtask_id = ?;`, subtaskID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrTodoNotFound)
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
