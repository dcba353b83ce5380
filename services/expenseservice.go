package services

import (
	"database/sql"
	"errors"

	"frilance/model"
)

var ErrExpenseNotFound = errors.New("expense not found")

func FetchExpenses(db *sql.DB) ([]model.Expense, error) {
	rows, err := db.Query(`SELECT expense_id, description, amount, category, date, created_at
		FROM expenses ORDER BY date DESC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		var e model.Expense
		var amountStr, dateStr, createdStr string
		if err := rows.Scan(&e.ExpenseID, &e.Description, &amountStr, &e.Category, &dateStr, &createdStr); err != nil {
			return nil, err
		}
		e.Amount = parseDecimal(amountStr)
		e.Date = parseTime(dateStr)
		e.CreatedAt = parseTime(createdStr)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func InsertExpense(db *sql.DB, e model.Expense) error {
	_, err := db.Exec(`INSERT INTO expenses (expense_id, description, amount, category, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?);`,
		e.ExpenseID, e.Description, decimalString(e.Amount), e.Category,
		formatTime(e.Date), formatTime(e.CreatedAt))
	return err
}

func UpdateExpense(db *sql.DB, e model.Expense) error {
	res, err := db.Exec(`UPDATE expenses SET description = ?, amount = ?, category = ?, date = ?
		WHERE expense_id = ?;`,
		e.Description, decimalString(e.Amount), e.Category, formatTime(e.Date), e.ExpenseID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrExpenseNotFound)
}

func DeleteExpense(db *sql.DB, expenseID string) error {
	res, err := db.Exec(`DELETE FROM expenses WHERE expense_id = ?;`, expenseID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrExpenseNotFound)
}
