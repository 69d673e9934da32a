package mapping

import (
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	"github.com/sgcontabil/sgc_backend/internal/models"
)

// ToDomainUser converts a stored models.User back to the domain type.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		JobTitle:     m.JobTitle,
		Role:         domain.UserRole(m.Role),
		IsActive:     m.IsActive,
		LastAccessAt: m.LastAccessAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
