package models

import "time"

// UserRole mirrors domain.UserRole for the users table.
type UserRole string

// User is the persistence model for a user row.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	JobTitle     string
	Role         UserRole
	IsActive     bool
	LastAccessAt *time.Time
	AuditFields
}
