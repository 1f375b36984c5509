package models

import "time"

// User represents an account on the job board.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	LastName     string    `json:"lastName"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserUpdate carries replacement profile fields for a user. Password is
// optional and triggers a rehash only when set.
type UserUpdate struct {
	Name     string
	Email    string
	LastName string
	Location string
	Password *string
}
