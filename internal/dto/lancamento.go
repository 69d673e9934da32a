package dto

import (
	"time"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartidaRequest is one debit/credit line of a new entry.
type CreatePartidaRequest struct {
	ContaID               string          `json:"conta_id" binding:"required"`
	CentroCustoID         *string         `json:"centro_custo_id"`
	Tipo                  string          `json:"tipo" binding:"required,oneof=DEBITO CREDITO"`
	Valor                 decimal.Decimal `json:"valor" binding:"required"`
	HistoricoComplementar string          `json:"historico_complementar"`
}

// CreateLancamentoRequest is the payload to post a new journal entry.
type CreateLancamentoRequest struct {
	NumeroLancamento string                 `json:"numero_lancamento" binding:"required"`
	DataLancamento   DateOnly               `json:"data_lancamento" binding:"required"`
	DataCompetencia  DateOnly               `json:"data_competencia" binding:"required"`
	TipoLancamento   string                 `json:"tipo_lancamento" binding:"required,oneof=NORMAL ABERTURA ENCERRAMENTO AJUSTE RECLASSIFICACAO"`
	Historico        string                 `json:"historico" binding:"required"`
	Valor            decimal.Decimal        `json:"valor" binding:"required"`
	Partidas         []CreatePartidaRequest `json:"partidas" binding:"required,min=2,dive"`
	Origem           string                 `json:"origem"`
	OrigemID         *string                `json:"origem_id"`
}

// MotivoRequest carries the mandatory reason for a rejection or reversal.
type MotivoRequest struct {
	Motivo string `json:"motivo" binding:"required"`
}

// ListLancamentosParams defines the lancamentos listing filters.
// Dates arrive as YYYY-MM-DD strings and are parsed by the handler.
type ListLancamentosParams struct {
	DataInicio     string `form:"data_inicio"`
	DataFim        string `form:"data_fim"`
	Status         string `form:"status"`
	TipoLancamento string `form:"tipo_lancamento"`
	ContaID        string `form:"conta_id"`
	Page           int    `form:"page,default=1"`
	Limit          int    `form:"limit,default=20"`
}

// PartidaResponse is the wire form of a journal line.
type PartidaResponse struct {
	ID                    string          `json:"id"`
	LancamentoID          string          `json:"lancamento_id"`
	ContaID               string          `json:"conta_id"`
	CentroCustoID         *string         `json:"centro_custo_id"`
	Tipo                  string          `json:"tipo"`
	Valor                 decimal.Decimal `json:"valor"`
	HistoricoComplementar string          `json:"historico_complementar"`
	Conta                 *ContaRefResponse `json:"conta,omitempty"`
}

// LancamentoResponse is the wire form of a journal entry.
type LancamentoResponse struct {
	ID               string            `json:"id"`
	NumeroLancamento string            `json:"numero_lancamento"`
	DataLancamento   DateOnly          `json:"data_lancamento"`
	DataCompetencia  DateOnly          `json:"data_competencia"`
	TipoLancamento   string            `json:"tipo_lancamento"`
	Historico        string            `json:"historico"`
	Valor            decimal.Decimal   `json:"valor"`
	Origem           string            `json:"origem,omitempty"`
	OrigemID         *string           `json:"origem_id,omitempty"`
	Status           string            `json:"status"`
	UsuarioID        string            `json:"usuario_id"`
	DataCriacao      time.Time         `json:"data_criacao"`
	Partidas         []PartidaResponse `json:"partidas,omitempty"`
}

// ListLancamentosResponse is the paginated listing envelope.
type ListLancamentosResponse struct {
	Sucesso      bool                 `json:"sucesso"`
	Lancamentos  []LancamentoResponse `json:"lancamentos"`
	Total        int64                `json:"total"`
	Pagina       int                  `json:"pagina"`
	TotalPaginas int                  `json:"total_paginas"`
}

// AuditEventResponse is the wire form of a lifecycle audit event.
type AuditEventResponse struct {
	ID           string    `json:"id"`
	LancamentoID string    `json:"lancamento_id"`
	Acao         string    `json:"acao"`
	Motivo       string    `json:"motivo,omitempty"`
	UsuarioID    string    `json:"usuario_id"`
	DataCriacao  time.Time `json:"data_criacao"`
}

// ToPartidaResponse converts a domain.JournalLine to its wire form.
func ToPartidaResponse(line *domain.JournalLine) PartidaResponse {
	resp := PartidaResponse{
		ID:                    line.LineID,
		LancamentoID:          line.EntryID,
		ContaID:               line.AccountID,
		CentroCustoID:         line.CostCenterID,
		Tipo:                  string(line.Side),
		Valor:                 line.Amount,
		HistoricoComplementar: line.Memo,
	}
	if line.AccountCode != "" {
		resp.Conta = &ContaRefResponse{
			ID:        line.AccountID,
			Codigo:    line.AccountCode,
			Descricao: line.AccountDescription,
		}
	}
	return resp
}

// ToLancamentoResponse converts a domain.JournalEntry to its wire form.
func ToLancamentoResponse(entry *domain.JournalEntry) LancamentoResponse {
	resp := LancamentoResponse{
		ID:               entry.EntryID,
		NumeroLancamento: entry.EntryNumber,
		DataLancamento:   DateOnly{Time: entry.PostingDate},
		DataCompetencia:  DateOnly{Time: entry.AccrualDate},
		TipoLancamento:   string(entry.EntryType),
		Historico:        entry.Narrative,
		Valor:            entry.Amount,
		Origem:           entry.Origin,
		OrigemID:         entry.OriginID,
		Status:           string(entry.Status),
		UsuarioID:        entry.CreatedBy,
		DataCriacao:      entry.CreatedAt,
	}
	if len(entry.Lines) > 0 {
		resp.Partidas = make([]PartidaResponse, len(entry.Lines))
		for i := range entry.Lines {
			resp.Partidas[i] = ToPartidaResponse(&entry.Lines[i])
		}
	}
	return resp
}

// ToLancamentoResponses converts a slice of entries.
func ToLancamentoResponses(entries []domain.JournalEntry) []LancamentoResponse {
	out := make([]LancamentoResponse, len(entries))
	for i := range entries {
		out[i] = ToLancamentoResponse(&entries[i])
	}
	return out
}

// ToAuditEventResponses converts audit events to their wire form.
func ToAuditEventResponses(events []domain.EntryAuditEvent) []AuditEventResponse {
	out := make([]AuditEventResponse, len(events))
	for i, ev := range events {
		out[i] = AuditEventResponse{
			ID:           ev.AuditID,
			LancamentoID: ev.EntryID,
			Acao:         string(ev.Action),
			Motivo:       ev.Reason,
			UsuarioID:    ev.ActorID,
			DataCriacao:  ev.CreatedAt,
		}
	}
	return out
}
