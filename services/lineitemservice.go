package services

import (
	"database/sql"
	"fmt"

	"frilance/model"

	"github.com/google/uuid"
)

// Invoice and quotation line items live in twin tables; both sides go
// through these helpers. Items are kept in explicit positions so the
// document order survives round trips.

func fetchLineItems(db *sql.DB, table, fkColumn, docID string) ([]model.LineItem, error) {
	query := fmt.Sprintf(`SELECT item_id, description, quantity, rate, amount
		FROM %s WHERE %s = ? ORDER BY position ASC;`, table, fkColumn)
	rows, err := db.Query(query, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.LineItem{}
	for rows.Next() {
		var item model.LineItem
		var rateStr, amountStr string
		if err := rows.Scan(&item.ItemID, &item.Description, &item.Quantity, &rateStr, &amountStr); err != nil {
			return nil, err
		}
		item.Rate = parseDecimal(rateStr)
		item.Amount = parseDecimal(amountStr)
		items = append(items, item)
	}
	return items, rows.Err()
}

func replaceLineItems(db *sql.DB, table, fkColumn, docID string, items []model.LineItem) error {
	if _, err := db.Exec(fmt.Sprintf(`DELETE FROM %s WHERE %s = ?;`, table, fkColumn), docID); err != nil {
		return err
	}
	insert := fmt.Sprintf(`INSERT INTO %s (item_id, %s, description, quantity, rate, amount, position)
		VALUES (?, ?, ?, ?, ?, ?, ?);`, table, fkColumn)
	for i, item := range items {
		if item.ItemID == "" {
			item.ItemID = uuid.New().String()
		}
		_, err := db.Exec(insert, item.ItemID, docID, item.Description, item.Quantity,
			decimalString(item.Rate), decimalString(item.Amount), i)
		if err != nil {
			return err
		}
	}
	return nil
}
