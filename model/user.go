package model

import "time"

type User struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"` // "user" or "admin"
	CreatedAt time.Time `json:"createdAt"`
}
