package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgcontabil/sgc_backend/internal/core/domain"
	portssvc "github.com/sgcontabil/sgc_backend/internal/core/ports/services"
	"github.com/sgcontabil/sgc_backend/internal/dto"
	"github.com/sgcontabil/sgc_backend/internal/middleware"
)

// lancamentoHandler handles journal entry requests.
type lancamentoHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newLancamentoHandler(es portssvc.EntrySvcFacade) *lancamentoHandler {
	return &lancamentoHandler{entryService: es}
}

// RegisterLancamentoRoutes wires the lancamentos routes. Creation is open to
// AUXILIAR as well; approval, rejection and reversal need ADMIN or CONTADOR.
func RegisterLancamentoRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newLancamentoHandler(entryService)
	approverRoles := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccountant)
	creatorRoles := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccountant, domain.RoleAssistant)

	lancamentos := rg.Group("/lancamentos")
	{
		lancamentos.GET("", h.listLancamentos)
		lancamentos.GET("/:id", h.getLancamento)
		lancamentos.GET("/:id/auditoria", h.listAuditoria)
		lancamentos.POST("", creatorRoles, h.createLancamento)
		lancamentos.POST("/:id/aprovar", approverRoles, h.aprovarLancamento)
		lancamentos.POST("/:id/rejeitar", approverRoles, h.rejeitarLancamento)
		lancamentos.POST("/:id/estornar", approverRoles, h.estornarLancamento)
	}
}

// listLancamentos godoc
// @Summary List journal entries
// @Description Lists entries filtered by date range, status, type and account, paginated.
// @Tags lancamentos
// @Produce json
// @Param data_inicio query string false "Posting date lower bound (YYYY-MM-DD)"
// @Param data_fim query string false "Posting date upper bound (YYYY-MM-DD)"
// @Param status query string false "Status filter" Enums(PENDENTE, APROVADO, REJEITADO, ESTORNADO)
// @Param tipo_lancamento query string false "Entry type filter"
// @Param conta_id query string false "Only entries with a line on this account"
// @Param page query int false "1-indexed page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListLancamentosResponse
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/lancamentos [get]
func (h *lancamentoHandler) listLancamentos(c *gin.Context) {
	var params dto.ListLancamentosParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.entryService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getLancamento godoc
// @Summary Get a journal entry
// @Description Retrieves one entry with its lines, each carrying its resolved account.
// @Tags lancamentos
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/lancamentos/{id} [get]
func (h *lancamentoHandler) getLancamento(c *gin.Context) {
	entry, err := h.entryService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "lancamento": dto.ToLancamentoResponse(entry)})
}

// listAuditoria godoc
// @Summary List an entry's lifecycle audit events
// @Description Returns the approve/reject/reverse events recorded for the entry, oldest first.
// @Tags lancamentos
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/lancamentos/{id}/auditoria [get]
func (h *lancamentoHandler) listAuditoria(c *gin.Context) {
	events, err := h.entryService.ListAuditEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "eventos": dto.ToAuditEventResponses(events)})
}

// createLancamento godoc
// @Summary Post a journal entry
// @Description Validates structure and balance and persists the entry in PENDENTE status.
// @Tags lancamentos
// @Accept json
// @Produce json
// @Param lancamento body dto.CreateLancamentoRequest true "Entry with its lines"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/lancamentos [post]
func (h *lancamentoHandler) createLancamento(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLancamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLancamento", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"sucesso": false, "mensagem": "Token de autenticação não fornecido"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sucesso": true, "lancamento": dto.ToLancamentoResponse(entry)})
}

// aprovarLancamento godoc
// @Summary Approve a pending entry
// @Description Moves a PENDENTE entry to APROVADO. Approval is a one-way gate.
// @Tags lancamentos
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/lancamentos/{id}/aprovar [post]
func (h *lancamentoHandler) aprovarLancamento(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"sucesso": false, "mensagem": "Token de autenticação não fornecido"})
		return
	}

	entry, err := h.entryService.Approve(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "lancamento": dto.ToLancamentoResponse(entry)})
}

// rejeitarLancamento godoc
// @Summary Reject a pending entry
// @Description Moves a PENDENTE entry to REJEITADO. The reason is mandatory.
// @Tags lancamentos
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param motivo body dto.MotivoRequest true "Rejection reason"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/lancamentos/{id}/rejeitar [post]
func (h *lancamentoHandler) rejeitarLancamento(c *gin.Context) {
	var req dto.MotivoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"sucesso": false, "mensagem": "Token de autenticação não fornecido"})
		return
	}

	entry, err := h.entryService.Reject(c.Request.Context(), c.Param("id"), req.Motivo, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "lancamento": dto.ToLancamentoResponse(entry)})
}

// estornarLancamento godoc
// @Summary Reverse an approved entry
// @Description Marks the entry ESTORNADO and creates the mirrored reversing entry ("E" + original number) already approved.
// @Tags lancamentos
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param motivo body dto.MotivoRequest true "Reversal reason"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/lancamentos/{id}/estornar [post]
func (h *lancamentoHandler) estornarLancamento(c *gin.Context) {
	var req dto.MotivoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"sucesso": false, "mensagem": "Token de autenticação não fornecido"})
		return
	}

	reversing, err := h.entryService.Reverse(c.Request.Context(), c.Param("id"), req.Motivo, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "lancamento": dto.ToLancamentoResponse(reversing)})
}
