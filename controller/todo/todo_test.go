package todo_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frilance/connection"
	"frilance/controller/todo"
	"frilance/model"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, connection.EnsureSchema(db))

	router := gin.New()
	todo.TodoController(router, db)
	return router, db
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := services.CreateAccessToken("u-1", "dev@example.com", "user")
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTodosRequireAuth(t *testing.T) {
	router, _ := setupRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndListTodos(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/todos", gin.H{
		"title":    "Write proposal",
		"priority": "high",
		"dueDate":  "2024-03-05",
		"labels":   []string{"work"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.TodoID)
	assert.Equal(t, model.PriorityHigh, created.Priority)
	assert.False(t, created.Completed)

	w = doJSON(t, router, http.MethodGet, "/todos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Write proposal", listed[0].Title)
	assert.Equal(t, []string{"work"}, listed[0].Labels)
}

func TestCreateTodoRejectsBadPriority(t *testing.T) {
	router, _ := setupRouter(t)
	w := doJSON(t, router, http.MethodPost, "/todos", gin.H{
		"title":    "Bad",
		"priority": "urgent",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTodosFilterAndSort(t *testing.T) {
	router, _ := setupRouter(t)

	for _, body := range []gin.H{
		{"title": "Low later", "priority": "low", "dueDate": "2030-06-01"},
		{"title": "High soon", "priority": "high", "dueDate": "2030-05-01"},
		{"title": "Medium undated", "priority": "medium"},
	} {
		w := doJSON(t, router, http.MethodPost, "/todos", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/todos?sort=priority", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var todos []model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todos))
	require.Len(t, todos, 3)
	assert.Equal(t, "High soon", todos[0].Title)
	assert.Equal(t, "Medium undated", todos[1].Title)
	assert.Equal(t, "Low later", todos[2].Title)

	w = doJSON(t, router, http.MethodGet, "/todos?view=priority&priority=high", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, "High soon", todos[0].Title)

	w = doJSON(t, router, http.MethodGet, "/todos?search=medium", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todos))
	require.Len(t, todos, 1)

	w = doJSON(t, router, http.MethodGet, "/todos?view=nothing", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleRecurringSpawnsSuccessor(t *testing.T) {
	router, db := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/todos", gin.H{
		"title":     "Weekly report",
		"dueDate":   "2024-01-10",
		"recurring": "weekly",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPatch, "/todos/"+created.TodoID+"/toggle", gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Todo      model.Todo  `json:"todo"`
		Successor *model.Todo `json:"successor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Todo.Completed)
	require.NotNil(t, resp.Successor, "completing a recurring todo spawns the next occurrence")
	assert.False(t, resp.Successor.Completed)
	require.NotNil(t, resp.Successor.DueDate)
	assert.Equal(t, created.DueDate.AddDate(0, 0, 7).Format(time.DateOnly),
		resp.Successor.DueDate.Format(time.DateOnly))

	todos, err := services.FetchTodos(db)
	require.NoError(t, err)
	assert.Len(t, todos, 2, "original stays as a completed record")
}

func TestRepeatedCompleteSpawnsOnlyOneSuccessor(t *testing.T) {
	router, db := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/todos", gin.H{
		"title":     "Weekly report",
		"dueDate":   "2024-01-10",
		"recurring": "weekly",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// the bulk-complete flow sends completed=true for rows that may
	// already be completed
	for i := 0; i < 2; i++ {
		w = doJSON(t, router, http.MethodPatch, "/todos/"+created.TodoID+"/toggle", gin.H{"completed": true})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	todos, err := services.FetchTodos(db)
	require.NoError(t, err)
	assert.Len(t, todos, 2, "one completion, exactly one successor")
}

func TestUncompleteThenCompleteSpawnsAgain(t *testing.T) {
	router, db := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/todos", gin.H{
		"title":     "Daily standup notes",
		"dueDate":   "2024-01-10",
		"recurring": "daily",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPatch, "/todos/"+created.TodoID+"/toggle", gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPatch, "/todos/"+created.TodoID+"/toggle", gin.H{"completed": false})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPatch, "/todos/"+created.TodoID+"/toggle", gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	todos, err := services.FetchTodos(db)
	require.NoError(t, err)
	assert.Len(t, todos, 3, "each false-to-true transition spawns one successor")
}

func TestToggleNonRecurringDoesNotSpawn(t *testing.T) {
	router, db := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/todos", gin.H{"title": "One-off", "dueDate": "2024-01-10"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPatch, "/todos/"+created.TodoID+"/toggle", gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	todos, err := services.FetchTodos(db)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestSubtaskLifecycle(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/todos", gin.H{"title": "Parent"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/todos/"+created.TodoID+"/subtasks", gin.H{"title": "Step one"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var sub model.Subtask
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))

	w = doJSON(t, router, http.MethodPatch, "/subtasks/"+sub.SubtaskID, gin.H{"completed": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/todos/"+created.TodoID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Len(t, fetched.Subtasks, 1)
	assert.True(t, fetched.Subtasks[0].Completed)

	w = doJSON(t, router, http.MethodDelete, "/subtasks/"+sub.SubtaskID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateTodoPartial(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/todos", gin.H{
		"title":   "Draft contract",
		"dueDate": "2024-04-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPut, "/todos/"+created.TodoID, gin.H{
		"priority": "high",
		"dueDate":  "",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated model.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Draft contract", updated.Title, "untouched fields survive")
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Nil(t, updated.DueDate, "empty string clears the date")
}

func TestDeleteTodoNotFound(t *testing.T) {
	router, _ := setupRouter(t)
	w := doJSON(t, router, http.MethodDelete, "/todos/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
