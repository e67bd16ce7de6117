// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can log in and consume the study endpoints.
type User struct {
	ID           int64     // Database-assigned identifier, also the token subject.
	Name         string    // Display name.
	Email        string    // Login identifier, unique across accounts.
	PasswordHash string    // bcrypt hash, never exposed to clients.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
