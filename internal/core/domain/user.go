package domain

import "time"

// UserRole is the authorization profile of a user (perfil).
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleAccountant UserRole = "CONTADOR"
	RoleAssistant  UserRole = "AUXILIAR"
	RoleManager    UserRole = "GERENTE"
	RoleViewer     UserRole = "CONSULTA"
)

// User is an authenticated system user.
type User struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	JobTitle     string     `json:"jobTitle"` // cargo, free text
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastAccessAt *time.Time `json:"lastAccessAt"`
	AuditFields
}
