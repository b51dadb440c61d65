package domain

import "time"

// User models an entry in the user directory.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns a copy of u without credential material.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
