package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgcontabil/sgc_backend/internal/apperrors"
	"github.com/sgcontabil/sgc_backend/internal/middleware"
)

// respondError maps the domain error taxonomy onto HTTP statuses and the
// {sucesso, mensagem} envelope the front end expects. Unclassified errors
// are treated as storage failures: logged and hidden behind a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnbalanced):
		c.JSON(http.StatusBadRequest, gin.H{"sucesso": false, "mensagem": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"sucesso": false, "mensagem": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"sucesso": false, "mensagem": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"sucesso": false, "mensagem": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"sucesso": false, "mensagem": err.Error()})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error in handler", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"sucesso": false, "mensagem": "Erro interno do servidor"})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"sucesso": false, "mensagem": "Dados inválidos: " + err.Error()})
}
