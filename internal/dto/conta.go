package dto

import (
	"github.com/sgcontabil/sgc_backend/internal/core/domain"
)

// CreateContaRequest defines the payload to create a chart-of-accounts node.
type CreateContaRequest struct {
	Codigo            string  `json:"codigo" binding:"required,codigoconta"`
	Descricao         string  `json:"descricao" binding:"required"`
	Tipo              string  `json:"tipo" binding:"required,oneof=ATIVO PASSIVO RECEITA DESPESA RESULTADO"`
	Natureza          string  `json:"natureza" binding:"required,oneof=DEVEDORA CREDORA"`
	Nivel             int     `json:"nivel" binding:"required,gte=1"`
	ContaPaiID        *string `json:"conta_pai_id"`
	PermiteLancamento bool    `json:"permite_lancamento"`
}

// UpdateContaRequest defines the payload to update an account. The original
// front end always resends the full record, so required fields match create;
// ativo is optional and defaults to keeping the account active.
type UpdateContaRequest struct {
	Codigo            string  `json:"codigo" binding:"required,codigoconta"`
	Descricao         string  `json:"descricao" binding:"required"`
	Tipo              string  `json:"tipo" binding:"required,oneof=ATIVO PASSIVO RECEITA DESPESA RESULTADO"`
	Natureza          string  `json:"natureza" binding:"required,oneof=DEVEDORA CREDORA"`
	Nivel             int     `json:"nivel" binding:"required,gte=1"`
	ContaPaiID        *string `json:"conta_pai_id"`
	PermiteLancamento bool    `json:"permite_lancamento"`
	Ativo             *bool   `json:"ativo"`
}

// ListContasParams defines the plano-contas listing filters.
type ListContasParams struct {
	Ativo *bool  `form:"ativo"`
	Tipo  string `form:"tipo"`
}

// ContaRefResponse is the short account reference embedded in hierarchy
// responses (conta_pai / contas_filhas).
type ContaRefResponse struct {
	ID        string `json:"id"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

// ContaResponse is the full wire representation of an account.
type ContaResponse struct {
	ID                string              `json:"id"`
	Codigo            string              `json:"codigo"`
	Descricao         string              `json:"descricao"`
	Tipo              string              `json:"tipo"`
	Natureza          string              `json:"natureza"`
	Nivel             int                 `json:"nivel"`
	ContaPaiID        *string             `json:"conta_pai_id"`
	PermiteLancamento bool                `json:"permite_lancamento"`
	Ativo             bool                `json:"ativo"`
	ContaPai          *ContaRefResponse   `json:"conta_pai,omitempty"`
	ContasFilhas      []ContaRefResponse  `json:"contas_filhas,omitempty"`
}

// ToContaResponse converts a domain.Account to its wire form.
func ToContaResponse(acc *domain.Account) ContaResponse {
	var parentID *string
	if acc.ParentAccountID != "" {
		id := acc.ParentAccountID
		parentID = &id
	}
	return ContaResponse{
		ID:                acc.AccountID,
		Codigo:            acc.Code,
		Descricao:         acc.Description,
		Tipo:              string(acc.Type),
		Natureza:          string(acc.Nature),
		Nivel:             acc.Level,
		ContaPaiID:        parentID,
		PermiteLancamento: acc.AllowsPosting,
		Ativo:             acc.IsActive,
	}
}

// ToContaResponses converts a slice of accounts.
func ToContaResponses(accounts []domain.Account) []ContaResponse {
	out := make([]ContaResponse, len(accounts))
	for i := range accounts {
		out[i] = ToContaResponse(&accounts[i])
	}
	return out
}

// ToContaRefResponse converts an account to its short reference form.
func ToContaRefResponse(acc *domain.Account) ContaRefResponse {
	return ContaRefResponse{ID: acc.AccountID, Codigo: acc.Code, Descricao: acc.Description}
}
