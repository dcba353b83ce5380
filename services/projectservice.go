package services

import (
	"database/sql"
	"errors"
	"time"

	"frilance/model"
)

var ErrProjectNotFound = errors.New("project not found")

func FetchProjects(db *sql.DB) ([]model.Project, error) {
	rows, err := db.Query(`SELECT project_id, name, description, client_id, client_name, status,
		budget, spent, deadline, created_at, updated_at FROM projects ORDER BY created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func GetProject(db *sql.DB, projectID string) (model.Project, error) {
	row := db.QueryRow(`SELECT project_id, name, description, client_id, client_name, status,
		budget, spent, deadline, created_at, updated_at FROM projects WHERE project_id = ?;`, projectID)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, ErrProjectNotFound
	}
	return p, err
}

func scanProject(row rowScanner) (model.Project, error) {
	var p model.Project
	var budgetStr, spentStr, createdStr, updatedStr string
	var deadlineStr sql.NullString
	err := row.Scan(&p.ProjectID, &p.Name, &p.Description, &p.ClientID, &p.ClientName,
		&p.Status, &budgetStr, &spentStr, &deadlineStr, &createdStr, &updatedStr)
	if err != nil {
		return model.Project{}, err
	}
	p.Budget = parseDecimal(budgetStr)
	p.Spent = parseDecimal(spentStr)
	p.Deadline = parseNullTime(deadlineStr)
	p.CreatedAt = parseTime(createdStr)
	p.UpdatedAt = parseTime(updatedStr)
	return p, nil
}

func InsertProject(db *sql.DB, p model.Project) error {
	_, err := db.Exec(`INSERT INTO projects (project_id, name, description, client_id, client_name,
		status, budget, spent, deadline, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		p.ProjectID, p.Name, p.Description, p.ClientID, p.ClientName, string(p.Status),
		decimalString(p.Budget), decimalString(p.Spent), nullTimeString(p.Deadline),
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
	return err
}

func UpdateProject(db *sql.DB, p model.Project) error {
	res, err := db.Exec(`UPDATE projects SET name = ?, description = ?, client_id = ?, client_name = ?,
		status = ?, budget = ?, spent = ?, deadline = ?, updated_at = ? WHERE project_id = ?;`,
		p.Name, p.Description, p.ClientID, p.ClientName, string(p.Status),
		decimalString(p.Budget), decimalString(p.Spent), nullTimeString(p.Deadline),
		formatTime(time.Now()), p.ProjectID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrProjectNotFound)
}

func DeleteProject(db *sql.DB, projectID string) error {
	res, err := db.Exec(`DELETE FROM projects WHERE project_id = ?;`, projectID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrProjectNotFound)
}
