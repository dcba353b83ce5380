package services

import (
	"database/sql"
	"errors"
	"time"

	"frilance/model"
)

var ErrQuotationNotFound = errors.New("quotation not found")

const quotationColumns = `quotation_id, quotation_number, project_id, project_name, client_id, client_name,
	subtotal, tax, tax_rate, total, status, valid_until, created_at, updated_at`

func FetchQuotations(db *sql.DB) ([]model.Quotation, error) {
	rows, err := db.Query(`SELECT ` + quotationColumns + ` FROM quotations ORDER BY created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotations := []model.Quotation{}
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range quotations {
		items, err := fetchLineItems(db, "quotation_items", "quotation_id", quotations[i].QuotationID)
		if err != nil {
			return nil, err
		}
		quotations[i].Items = items
	}
	return quotations, nil
}

func GetQuotation(db *sql.DB, quotationID string) (model.Quotation, error) {
	row := db.QueryRow(`SELECT `+quotationColumns+` FROM quotations WHERE quotation_id = ?;`, quotationID)
	q, err := scanQuotation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Quotation{}, ErrQuotationNotFound
	}
	if err != nil {
		return model.Quotation{}, err
	}
	q.Items, err = fetchLineItems(db, "quotation_items", "quotation_id", q.QuotationID)
	return q, err
}

func scanQuotation(row rowScanner) (model.Quotation, error) {
	var q model.Quotation
	var subtotalStr, taxStr, totalStr, createdStr, updatedStr string
	var rateStr, validStr sql.NullString
	err := row.Scan(&q.QuotationID, &q.QuotationNumber, &q.ProjectID, &q.ProjectName,
		&q.ClientID, &q.ClientName, &subtotalStr, &taxStr, &rateStr, &totalStr,
		&q.Status, &validStr, &createdStr, &updatedStr)
	if err != nil {
		return model.Quotation{}, err
	}
	q.Subtotal = parseDecimal(subtotalStr)
	q.Tax = parseDecimal(taxStr)
	q.TaxRate = nullDecimal(rateStr)
	q.Total = parseDecimal(totalStr)
	q.ValidUntil = parseNullTime(validStr)
	q.CreatedAt = parseTime(createdStr)
	q.UpdatedAt = parseTime(updatedStr)
	return q, nil
}

func InsertQuotation(db *sql.DB, q model.Quotation) error {
	_, err := db.Exec(`INSERT INTO quotations (`+quotationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		q.QuotationID, q.QuotationNumber, q.ProjectID, q.ProjectName,
		q.ClientID, q.ClientName, decimalString(q.Subtotal), decimalString(q.Tax),
		nullDecimalString(q.TaxRate), decimalString(q.Total), string(q.Status),
		nullTimeString(q.ValidUntil), formatTime(q.CreatedAt), formatTime(q.UpdatedAt))
	if err != nil {
		return err
	}
	return replaceLineItems(db, "quotation_items", "quotation_id", q.QuotationID, q.Items)
}

func UpdateQuotation(db *sql.DB, q model.Quotation) error {
	res, err := db.Exec(`UPDATE quotations SET quotation_number = ?, project_id = ?, project_name = ?,
		client_id = ?, client_name = ?, subtotal = ?, tax = ?, tax_rate = ?, total = ?,
		status = ?, valid_until = ?, updated_at = ? WHERE quotation_id = ?;`,
		q.QuotationNumber, q.ProjectID, q.ProjectName,
		q.ClientID, q.ClientName, decimalString(q.Subtotal), decimalString(q.Tax),
		nullDecimalString(q.TaxRate), decimalString(q.Total), string(q.Status),
		nullTimeString(q.ValidUntil), formatTime(time.Now()), q.QuotationID)
	if err != nil {
		return err
	}
	if err := requireRow(res, ErrQuotationNotFound); err != nil {
		return err
	}
	return replaceLineItems(db, "quotation_items", "quotation_id", q.QuotationID, q.Items)
}

func DeleteQuotation(db *sql.DB, quotationID string) error {
	if _, err := db.Exec(`DELETE FROM quotation_items WHERE quotation_id = ?;`, quotationID); err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM quotations WHERE quotation_id = ?;`, quotationID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrQuotationNotFound)
}
