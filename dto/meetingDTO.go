package dto

type MeetingRequest struct {
	Title     string   `json:"title" binding:"required"`
	ClientID  string   `json:"clientId"`
	Date      string   `json:"date" binding:"required"`
	Time      string   `json:"time"`
	Attendees []string `json:"attendees"`
	Agenda    string   `json:"agenda"`
	Notes     string   `json:"notes"`
	Status    string   `json:"status"`
}
