package user

import "time"

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash *string
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
