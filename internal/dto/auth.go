package dto

import "github.com/sgcontabil/sgc_backend/internal/core/domain"

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// UsuarioResponse is the authenticated user's wire form.
type UsuarioResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nome   string `json:"nome"`
	Perfil string `json:"perfil"`
	Ativo  bool   `json:"ativo"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Sucesso bool            `json:"sucesso"`
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// ToUsuarioResponse converts a domain.User to its wire form.
func ToUsuarioResponse(u *domain.User) UsuarioResponse {
	return UsuarioResponse{
		ID:     u.UserID,
		Email:  u.Email,
		Nome:   u.Name,
		Perfil: string(u.Role),
		Ativo:  u.IsActive,
	}
}
