package dto

type CreateTodoRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ClientID    string   `json:"clientId"`
	ProjectID   string   `json:"projectId"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate"`
	Recurring   string   `json:"recurring"`
	Labels      []string `json:"labels"`
}

type UpdateTodoRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	ClientID    *string   `json:"clientId"`
	ProjectID   *string   `json:"projectId"`
	Priority    *string   `json:"priority"`
	DueDate     *string   `json:"dueDate"` // empty string clears the date
	Recurring   *string   `json:"recurring"`
	Labels      *[]string `json:"labels"`
}

type ToggleTodoRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title" binding:"required"`
}

type ToggleSubtaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
