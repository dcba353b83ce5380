package services

import (
	"database/sql"
	"errors"
	"time"

	"frilance/model"
)

var ErrUserNotFound = errors.New("user not found")

func UserExists(db *sql.DB, email string) (bool, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(1) FROM users WHERE email = ?;`, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func GetUserByEmail(db *sql.DB, email string) (model.User, error) {
	return scanUser(db.QueryRow(
		`SELECT user_id, name, email, password, role, created_at FROM users WHERE email = ?;`, email))
}

func GetUserByID(db *sql.DB, userID string) (model.User, error) {
	return scanUser(db.QueryRow(
		`SELECT user_id, name, email, password, role, created_at FROM users WHERE user_id = ?;`, userID))
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var createdStr string
	err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.Password, &u.Role, &createdStr)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.CreatedAt = parseTime(createdStr)
	return u, nil
}

func UpdateUserProfile(db *sql.DB, userID, name, password string) error {
	res, err := db.Exec(`UPDATE users SET name = COALESCE(NULLIF(?, ''), name),
		password = COALESCE(NULLIF(?, ''), password) WHERE user_id = ?;`,
		name, password, userID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrUserNotFound)
}

func DeleteUser(db *sql.DB, userID string) error {
	res, err := db.Exec(`DELETE FROM users WHERE user_id = ?;`, userID)
	if err != nil {
		return err
	}
	return requireRow(res, ErrUserNotFound)
}

func InsertUser(db *sql.DB, u model.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	_, err := db.Exec(
		`INSERT INTO users (user_id, name, email, password, role, created_at) VALUES (?, ?, ?, ?, ?, ?);`,
		u.UserID, u.Name, u.Email, u.Password, u.Role, formatTime(u.CreatedAt))
	return err
}
