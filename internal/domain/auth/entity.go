package auth

import "time"

// Farmer is the account owning workers and all their records.
type Farmer struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
