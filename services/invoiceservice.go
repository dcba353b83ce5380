package services

import (
	"database/sql"
	"errors"

	"frilance/model"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

const invoiceColumns = `invoice_id, invoice_number, project_id, project_name, client_id, client_name,
	subtotal, tax, tax_rate, total, status, due_date, created_at, paid_at`

func FetchInvoices(db *sql.DB) ([]model.Invoice, error) {
	rows, err := db.Query(`SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []model.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range invoices {
		items, err := fetchLineItems(db, "invoice_items", "invoice_id", invoices[i].InvoiceID)
		if err != nil {
			return nil, err
		}
		invoices[i].Items = items
	}
	return invoices, nil
}

func GetInvoice(db *sql.DB, invoiceID string) (model.Invoice, error) {
	row := db.QueryRow(`SELECT `+invoiceColumns+` FROM invoices WHERE invoice_id = ?;`, invoiceID)
	inv, err := scanInvoice(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Invoice{}, ErrInvoiceNotFound
	}
	if err != nil {
		return model.Invoice{}, err
	}
	inv.Items, err = fetchLineItems(db, "invoice_items", "invoice_id", inv.InvoiceID)
	return inv, err
}

func scanInvoice(row rowScanner) (model.Invoice, error) {
	var inv model.Invoice
	var subtotalStr, taxStr, totalStr, createdStr string
	var rateStr, dueStr, paidStr sql.NullString
	err := row.Scan(&inv.InvoiceID, &inv.InvoiceNumber, &inv.ProjectID, &inv.ProjectName,
		&inv.ClientID, &inv.ClientName, &subtotalStr, &taxStr, &rateStr, &totalStr,
		&inv.Status, &dueStr, &createdStr, &paidStr)
	if err != nil {
		return model.Invoice{}, err
	}
	inv.Subtotal = parseDecimal(subtotalStr)
	inv.Tax = parseDecimal(taxStr)
	inv.TaxRate = nullDecimal(rateStr)
	inv.Total = parseDecimal(totalStr)
	inv.DueDate = parseNullTime(dueStr)
	inv.CreatedAt = parseTime(createdStr)
	inv.PaidAt = parseNullTime(paidStr)
	return inv, nil
}

func InsertInvoice(db *sql.DB, inv model.Invoice) error {
	_, err := db.Exec(`INSERT INTO invoices (`+invoiceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		inv.InvoiceID, inv.InvoiceNumber, inv.ProjectID, inv.ProjectName,
		inv.ClientID, inv.ClientName, decimalString(inv.Subtotal), decimalString(inv.Tax),
		nullDecimalString(inv.TaxRate), decimalString(inv.Total), string(inv.Status),
		nullTimeString(inv.DueDate), formatTime(inv.CreatedAt), nullTimeString(inv.PaidAt))
	if err != nil {
		return err
	}
	return replaceLineItems(db, "invoice_items", "invoice_id", inv.InvoiceID, inv.Items)
}

func UpdateInvoice(db *sql.DB, inv model.Invoice) error {
	res, err := db.Exec(`UPDATE invoices SET invoice_number = ?, project_id = ?, project_name = ?,
		client_id = ?, client_name = ?, subtotal = ?, tax = ?, tax_rate = ?, total = ?,
		status = ?, due_date = ?, paid_at = ? WHERE invoice_id = ?;`,
		inv.InvoiceNumber, inv.ProjectID, inv.ProjectName,
		inv.ClientID, inv.ClientName, decimalString(inv.Subtotal), decimalString(inv.Tax),
		nullDecimalString(inv.TaxRate), decimalString(inv.Total), string(inv.Status),
		nullTimeString(inv.DueDate), nullTimeString(inv.PaidAt), inv.InvoiceID)
	if err != nil {
		return err
	}
	if err := requireRow(res, ErrInvoiceNotFound); err != nil {
		return err
	}
	return replaceLineItems(db, "invoice_items", "invoice_id", inv.InvoiceID, inv.Items)
}

func DeleteInvoice(db *sql.DB, invoiceID string) error {
	if _, err := db.Exec(`DELETE FROM invoice_items WHERE invoice_id = ?;`, invoiceID); err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM invoices WHERE invoice_id = ?;`, invoiceID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrInvoiceNotFound)
}
