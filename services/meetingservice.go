package services

import (
	"database/sql"
	"errors"
	"time"

	"frilance/model"
)

var ErrMeetingNotFound = errors.New("meeting not found")

func FetchMeetings(db *sql.DB) ([]model.Meeting, error) {
	rows, err := db.Query(`SELECT meeting_id, title, client_id, client_name, date, time, attendees,
		agenda, notes, status, created_at, updated_at FROM meetings ORDER BY date DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := []model.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func GetMeeting(db *sql.DB, meetingID string) (model.Meeting, error) {
	row := db.QueryRow(`SELECT meeting_id, title, client_id, client_name, date, time, attendees,
		agenda, notes, status, created_at, updated_at FROM meetings WHERE meeting_id = ?;`, meetingID)
	m, err := scanMeeting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Meeting{}, ErrMeetingNotFound
	}
	return m, err
}

func scanMeeting(row rowScanner) (model.Meeting, error) {
	var m model.Meeting
	var dateStr, attendeesStr, createdStr, updatedStr string
	err := row.Scan(&m.MeetingID, &m.Title, &m.ClientID, &m.ClientName, &dateStr, &m.Time,
		&attendeesStr, &m.Agenda, &m.Notes, &m.Status, &createdStr, &updatedStr)
	if err != nil {
		return model.Meeting{}, err
	}
	m.Date = parseTime(dateStr)
	m.Attendees = splitList(attendeesStr)
	m.CreatedAt = parseTime(createdStr)
	m.UpdatedAt = parseTime(updatedStr)
	return m, nil
}

func InsertMeeting(db *sql.DB, m model.Meeting) error {
	_, err := db.Exec(`INSERT INTO meetings (meeting_id, title, client_id, client_name, date, time,
		attendees, agenda, notes, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		m.MeetingID, m.Title, m.ClientID, m.ClientName, formatTime(m.Date), m.Time,
		joinList(m.Attendees), m.Agenda, m.Notes, string(m.Status),
		formatTime(m.CreatedAt), formatTime(m.UpdatedAt))
	return err
}

func UpdateMeeting(db *sql.DB, m model.Meeting) error {
	res, err := db.Exec(`UPDATE meetings SET title = ?, client_id = ?, client_name = ?, date = ?, time = ?,
		attendees = ?, agenda = ?, notes = ?, status = ?, updated_at = ? WHERE meeting_id = ?;`,
		m.Title, m.ClientID, m.ClientName, formatTime(m.Date), m.Time,
		joinList(m.Attendees), m.Agenda, m.Notes, string(m.Status),
		formatTime(time.Now()), m.MeetingID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrMeetingNotFound)
}

func DeleteMeeting(db *sql.DB, meetingID string) error {
	res, err := db.Exec(`DELETE FROM meetings WHERE meeting_id = ?;`, meetingID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrMeetingNotFound)
}
