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

// contaHandler handles chart-of-accounts requests.
type contaHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newContaHandler(as portssvc.AccountSvcFacade) *contaHandler {
	return &contaHandler{accountService: as}
}

// RegisterContaRoutes wires the plano-contas routes; reads are open to any
// authenticated user, mutations to ADMIN and CONTADOR.
func RegisterContaRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newContaHandler(accountService)
	mutatingRoles := middleware.RequireRoles(domain.RoleAdmin, domain.RoleAccountant)

	contas := rg.Group("/plano-contas")
	{
		contas.GET("", h.listContas)
		contas.GET("/:id", h.getConta)
		contas.POST("", mutatingRoles, h.createConta)
		contas.PUT("/:id", mutatingRoles, h.updateConta)
	}
}

// listContas godoc
// @Summary List chart-of-accounts entries
// @Description Lists accounts, optionally filtered by active flag and type, ordered by code.
// @Tags plano-contas
// @Produce json
// @Param ativo query bool false "Filter by active flag"
// @Param tipo query string false "Filter by account type" Enums(ATIVO, PASSIVO, RECEITA, DESPESA, RESULTADO)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/plano-contas [get]
func (h *contaHandler) listContas(c *gin.Context) {
	var params dto.ListContasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "contas": dto.ToContaResponses(accounts)})
}

// getConta godoc
// @Summary Get an account with its hierarchy
// @Description Retrieves one account with its resolved parent and direct children.
// @Tags plano-contas
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/plano-contas/{id} [get]
func (h *contaHandler) getConta(c *gin.Context) {
	detail, err := h.accountService.GetAccountDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ToContaResponse(&detail.Account)
	if detail.Parent != nil {
		ref := dto.ToContaRefResponse(detail.Parent)
		resp.ContaPai = &ref
	}
	if len(detail.Children) > 0 {
		resp.ContasFilhas = make([]dto.ContaRefResponse, len(detail.Children))
		for i := range detail.Children {
			resp.ContasFilhas[i] = dto.ToContaRefResponse(&detail.Children[i])
		}
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "conta": resp})
}

// createConta godoc
// @Summary Create an account
// @Description Creates a chart-of-accounts node. Codes are globally unique.
// @Tags plano-contas
// @Accept json
// @Produce json
// @Param conta body dto.CreateContaRequest true "Account details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/plano-contas [post]
func (h *contaHandler) createConta(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateContaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createConta", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"sucesso": false, "mensagem": "Token de autenticação não fornecido"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sucesso": true, "conta": dto.ToContaResponse(account)})
}

// updateConta godoc
// @Summary Update an account
// @Description Updates classification, hierarchy or the active flag of an account.
// @Tags plano-contas
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param conta body dto.UpdateContaRequest true "Account details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /contabil/plano-contas/{id} [put]
func (h *contaHandler) updateConta(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateContaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateConta", slog.String("error", err.Error()))
		bindError(c, err)
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"sucesso": false, "mensagem": "Token de autenticação não fornecido"})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sucesso": true, "conta": dto.ToContaResponse(account)})
}
