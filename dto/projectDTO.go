package dto

type ProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ClientID    string  `json:"clientId"`
	Status      string  `json:"status"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Deadline    string  `json:"deadline"`
}
