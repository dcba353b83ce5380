package model

import "time"

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingCompleted MeetingStatus = "completed"
	MeetingCancelled MeetingStatus = "cancelled"
)

func (s MeetingStatus) Valid() bool {
	switch s {
	case MeetingScheduled, MeetingCompleted, MeetingCancelled:
		return true
	}
	return false
}

type Meeting struct {
	MeetingID string        `json:"id"`
	Title     string        `json:"title"`
	ClientID  string        `json:"clientId,omitempty"`
	ClientName string       `json:"clientName,omitempty"`
	Date      time.Time     `json:"date"`
	Time      string        `json:"time"`
	Attendees []string      `json:"attendees"`
	Agenda    string        `json:"agenda"`
	Notes     string        `json:"notes"`
	Status    MeetingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
