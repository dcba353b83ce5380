package services

import (
	"database/sql"
	"errors"

	"frilance/model"
)

// GetSettings returns the single business profile row, falling back to the
// defaults when nothing has been saved yet.
func GetSettings(db *sql.DB) (model.Settings, error) {
	row := db.QueryRow(`SELECT business_name, business_email, business_address, business_phone,
		default_tax_rate, currency FROM settings WHERE id = 1;`)
	var s model.Settings
	var rateStr string
	err := row.Scan(&s.BusinessName, &s.BusinessEmail, &s.BusinessAddress, &s.BusinessPhone, &rateStr, &s.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, err
	}
	s.DefaultTaxRate = parseDecimal(rateStr)
	return s, nil
}

func SaveSettings(db *sql.DB, s model.Settings) error {
	_, err := db.Exec(`INSERT INTO settings (id, business_name, business_email, business_address,
		business_phone, default_tax_rate, currency) VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET business_name = excluded.business_name,
		business_email = excluded.business_email, business_address = excluded.business_address,
		business_phone = excluded.business_phone, default_tax_rate = excluded.default_tax_rate,
		currency = excluded.currency;`,
		s.BusinessName, s.BusinessEmail, s.BusinessAddress, s.BusinessPhone,
		decimalString(s.DefaultTaxRate), s.Currency)
	return err
}
