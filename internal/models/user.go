package models

import "time"

// User is a registered shopper. The email identifies the user and namespaces
// their persisted cart.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
