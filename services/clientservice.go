package services

import (
	"database/sql"
	"errors"
	"time"

	"frilance/model"
)

var ErrClientNotFound = errors.New("client not found")

func FetchClients(db *sql.DB) ([]model.Client, error) {
	rows, err := db.Query(`SELECT client_id, name, email, phone, company, address, status, created_at, updated_at
		FROM clients ORDER BY created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []model.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func GetClient(db *sql.DB, clientID string) (model.Client, error) {
	row := db.QueryRow(`SELECT client_id, name, email, phone, company, address, status, created_at, updated_at
		FROM clients WHERE client_id = ?;`, clientID)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Client{}, ErrClientNotFound
	}
	return c, err
}

func scanClient(row rowScanner) (model.Client, error) {
	var c model.Client
	var createdStr, updatedStr string
	err := row.Scan(&c.ClientID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Address,
		&c.Status, &createdStr, &updatedStr)
	if err != nil {
		return model.Client{}, err
	}
	c.CreatedAt = parseTime(createdStr)
	c.UpdatedAt = parseTime(updatedStr)
	return c, nil
}

func InsertClient(db *sql.DB, c model.Client) error {
	_, err := db.Exec(`INSERT INTO clients (client_id, name, email, phone, company, address, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		c.ClientID, c.Name, c.Email, c.Phone, c.Company, c.Address, string(c.Status),
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
	return err
}

func UpdateClient(db *sql.DB, c model.Client) error {
	res, err := db.Exec(`UPDATE clients SET name = ?, email = ?, phone = ?, company = ?, address = ?,
		status = ?, updated_at = ? WHERE client_id = ?;`,
		c.Name, c.Email, c.Phone, c.Company, c.Address, string(c.Status),
		formatTime(time.Now()), c.ClientID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrClientNotFound)
}

// SetClientStatus moves a client to another pipeline stage; this is what a
// card drag on the pipeline board turns into.
func SetClientStatus(db *sql.DB, clientID string, status model.ClientStatus) error {
	res, err := db.Exec(`UPDATE clients SET status = ?, updated_at = ? WHERE client_id = ?;`,
		string(status), formatTime(time.Now()), clientID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrClientNotFound)
}

func DeleteClient(db *sql.DB, clientID string) error {
	res, err := db.Exec(`DELETE FROM clients WHERE client_id = ?;`, clientID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrClientNotFound)
}
