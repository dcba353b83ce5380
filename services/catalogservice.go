package services

import (
	"database/sql"
	"errors"
	"time"

	"frilance/model"
)

var ErrServiceNotFound = errors.New("service not found")

func FetchServices(db *sql.DB) ([]model.ServiceItem, error) {
	rows, err := db.Query(`SELECT service_id, name, category, price, description, created_at, updated_at
		FROM services ORDER BY category ASC, name ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.ServiceItem{}
	for rows.Next() {
		var s model.ServiceItem
		var priceStr, createdStr, updatedStr string
		if err := rows.Scan(&s.ServiceID, &s.Name, &s.Category, &priceStr, &s.Description, &createdStr, &updatedStr); err != nil {
			return nil, err
		}
		s.Price = parseDecimal(priceStr)
		s.CreatedAt = parseTime(createdStr)
		s.UpdatedAt = parseTime(updatedStr)
		items = append(items, s)
	}
	return items, rows.Err()
}

func InsertService(db *sql.DB, s model.ServiceItem) error {
	_, err := db.Exec(`INSERT INTO services (service_id, name, category, price, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);`,
		s.ServiceID, s.Name, s.Category, decimalString(s.Price), s.Description,
		formatTime(s.CreatedAt), formatTime(s.UpdatedAt))
	return err
}

func UpdateService(db *sql.DB, s model.ServiceItem) error {
	res, err := db.Exec(`UPDATE services SET name = ?, category = ?, price = ?, description = ?, updated_at = ?
		WHERE service_id = ?;`,
		s.Name, s.Category, decimalString(s.Price), s.Description, formatTime(time.Now()), s.ServiceID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrServiceNotFound)
}

func DeleteService(db *sql.DB, serviceID string) error {
	res, err := db.Exec(`DELETE FROM services WHERE service_id = ?;`, serviceID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrServiceNotFound)
}
