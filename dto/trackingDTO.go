package dto

type ExpenseRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date" binding:"required"`
}

type TimeEntryRequest struct {
	ProjectID   string  `json:"projectId"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
}
