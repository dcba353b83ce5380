package todo

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"frilance/dto"
	"frilance/middleware"
	"frilance/model"
	"frilance/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TodoController(router *gin.Engine, db *sql.DB) {
	auth := middleware.AccessTokenMiddleware()

	router.GET("/todos", auth, func(c *gin.Context) { ListTodos(c, db) })
	router.GET("/todos/labels", auth, func(c *gin.Context) {
		c.JSON(http.StatusOK, model.TodoLabels())
	})
	router.GET("/todos/:id", auth, func(c *gin.Context) { GetTodo(c, db) })
	router.POST("/todos", auth, func(c *gin.Context) { CreateTodo(c, db) })
	router.PUT("/todos/:id", auth, func(c *gin.Context) { UpdateTodo(c, db) })
	router.DELETE("/todos/:id", auth, func(c *gin.Context) { DeleteTodo(c, db) })
	router.PATCH("/todos/:id/toggle", auth, func(c *gin.Context) { ToggleTodo(c, db) })
	router.POST("/todos/:id/subtasks", auth, func(c *gin.Context) { AddSubtask(c, db) })
	router.PATCH("/subtasks/:id", auth, func(c *gin.Context) { ToggleSubtask(c, db) })
	router.DELETE("/subtasks/:id", auth, func(c *gin.Context) { DeleteSubtask(c, db) })
}

// ListTodos evaluates the selected view, search text and sort key against
// the full collection and returns the visible, ordered list.
func ListTodos(c *gin.Context, db *sql.DB) {
	view, err := services.ParseTodoView(c.Query("view"), c.Query("priority"), c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sortBy := services.ParseSortOption(c.Query("sort"))

	todos, err := services.FetchTodos(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load todos"})
		return
	}

	result := services.FilterTodos(todos, view, c.Query("search"), time.Now())
	services.SortTodos(result, sortBy)
	c.JSON(http.StatusOK, result)
}

func GetTodo(c *gin.Context, db *sql.DB) {
	t, err := services.GetTodo(db, c.Param("id"))
	if errors.Is(err, services.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load todo"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func CreateTodo(c *gin.Context, db *sql.DB) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	priority := model.TodoPriority(req.Priority)
	if req.Priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}
	recurring := model.Recurrence(req.Recurring)
	if req.Recurring == "" {
		recurring = model.RecurringNone
	}
	if !recurring.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurring value"})
		return
	}
	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format"})
		return
	}

	now := time.Now()
	t := model.Todo{
		TodoID:      uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		Priority:    priority,
		DueDate:     dueDate,
		Recurring:   recurring,
		Labels:      req.Labels,
		Subtasks:    []model.Subtask{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	fillAssociationNames(db, &t)

	if err := services.InsertTodo(db, t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func UpdateTodo(c *gin.Context, db *sql.DB) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	t, err := services.GetTodo(db, c.Param("id"))
	if errors.Is(err, services.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load todo"})
		return
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.ClientID != nil {
		t.ClientID = *req.ClientID
		t.ClientName = ""
	}
	if req.ProjectID != nil {
		t.ProjectID = *req.ProjectID
		t.ProjectName = ""
	}
	if req.Priority != nil {
		p := model.TodoPriority(*req.Priority)
		if !p.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		t.Priority = p
	}
	if req.Recurring != nil {
		r := model.Recurrence(*req.Recurring)
		if !r.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurring value"})
			return
		}
		t.Recurring = r
	}
	if req.DueDate != nil {
		due, err := dto.ParseDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format"})
			return
		}
		t.DueDate = due
	}
	if req.Labels != nil {
		t.Labels = *req.Labels
	}
	fillAssociationNames(db, &t)

	if err := services.UpdateTodo(db, t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func DeleteTodo(c *gin.Context, db *sql.DB) {
	err := services.DeleteTodo(db, c.Param("id"))
	if errors.Is(err, services.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
}

// ToggleTodo flips completion. A recurring todo spawns its next occurrence
// only when the flag actually transitions from false to true, so repeating
// the same request never produces duplicate successors. The successor
// insert is allowed to fail without undoing the completion, and the failure
// is surfaced in the response.
func ToggleTodo(c *gin.Context, db *sql.DB) {
	var req dto.ToggleTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	t, wasCompleted, err := services.SetTodoCompleted(db, c.Param("id"), *req.Completed)
	if errors.Is(err, services.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle todo"})
		return
	}

	response := gin.H{"todo": t}
	if *req.Completed && !wasCompleted && t.Recurring != model.RecurringNone {
		if successor, ok := services.Successor(t, time.Now()); ok {
			if err := services.InsertTodo(db, successor); err != nil {
				response["recurrenceError"] = "Failed to create next occurrence"
			} else {
				response["successor"] = successor
			}
		}
	}
	c.JSON(http.StatusOK, response)
}

func AddSubtask(c *gin.Context, db *sql.DB) {
	var req dto.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	s, err := services.InsertSubtask(db, c.Param("id"), req.Title)
	if errors.Is(err, services.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subtask"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func ToggleSubtask(c *gin.Context, db *sql.DB) {
	var req dto.ToggleSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	err := services.SetSubtaskCompleted(db, c.Param("id"), *req.Completed)
	if errors.Is(err, services.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subtask not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle subtask"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subtask updated"})
}

func DeleteSubtask(c *gin.Context, db *sql.DB) {
	err := services.DeleteSubtask(db, c.Param("id"))
	if errors.Is(err, services.ErrTodoNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subtask not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subtask"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subtask deleted"})
}

// fillAssociationNames denormalizes client and project names onto the todo
// so search and display never need a join. Lookup failures leave the name
// empty; a missing association is never an error.
func fillAssociationNames(db *sql.DB, t *model.Todo) {
	if t.ClientID != "" && t.ClientName == "" {
		if client, err := services.GetClient(db, t.ClientID); err == nil {
			t.ClientName = client.Name
		}
	}
	if t.ProjectID != "" && t.ProjectName == "" {
		if project, err := services.GetProject(db, t.ProjectID); err == nil {
			t.ProjectName = project.Name
		}
	}
}
