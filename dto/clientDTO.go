package dto

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// ClientStatusRequest moves a client across the pipeline board.
type ClientStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
