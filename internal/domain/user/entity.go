package user

import "time"

// User is the owning account. Every worker, attendance mark, payment and bill
// belongs to exactly one user.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
