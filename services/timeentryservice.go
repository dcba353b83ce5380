package services

import (
	"database/sql"
	"errors"

	"frilance/model"
)

var ErrTimeEntryNotFound = errors.New("time entry not found")

func FetchTimeEntries(db *sql.DB) ([]model.TimeEntry, error) {
	rows, err := db.Query(`SELECT entry_id, project_id, project_name, description, hours, date, created_at
		FROM time_entries ORDER BY date DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.TimeEntry{}
	for rows.Next() {
		var e model.TimeEntry
		var dateStr, createdStr string
		if err := rows.Scan(&e.EntryID, &e.ProjectID, &e.ProjectName, &e.Description, &e.Hours, &dateStr, &createdStr); err != nil {
			return nil, err
		}
		e.Date = parseTime(dateStr)
		e.CreatedAt = parseTime(createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func InsertTimeEntry(db *sql.DB, e model.TimeEntry) error {
	_, err := db.Exec(`INSERT INTO time_entries (entry_id, project_id, project_name, description, hours, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);`,
		e.EntryID, e.ProjectID, e.ProjectName, e.Description, e.Hours,
		formatTime(e.Date), formatTime(e.CreatedAt))
	return err
}

func DeleteTimeEntry(db *sql.DB, entryID string) error {
	res, err := db.Exec(`DELETE FROM time_entries WHERE entry_id = ?;`, entryID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrTimeEntryNotFound)
}
