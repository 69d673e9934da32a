package dto_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/sgcontabil/sgc_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindLancamento(t *testing.T, body string) (dto.CreateLancamentoRequest, error) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	require.NoError(t, err)
	var payload dto.CreateLancamentoRequest
	return payload, binding.JSON.Bind(req, &payload)
}

const validLancamentoBody = `{
	"numero_lancamento": "L001",
	"data_lancamento": "2025-01-15",
	"data_competencia": "2025-01-31",
	"tipo_lancamento": "NORMAL",
	"historico": "Recebimento de cliente",
	"valor": "150.00",
	"partidas": [
		{"conta_id": "c1", "tipo": "DEBITO", "valor": "150.00"},
		{"conta_id": "c2", "tipo": "CREDITO", "valor": "150.00"}
	]
}`

func TestCreateLancamentoRequestBinding(t *testing.T) {
	payload, err := bindLancamento(t, validLancamentoBody)
	require.NoError(t, err)
	assert.Equal(t, "L001", payload.NumeroLancamento)
	assert.Equal(t, "2025-01-15", payload.DataLancamento.String())
	assert.Equal(t, "150.00", payload.Valor.StringFixed(2))
	require.Len(t, payload.Partidas, 2)
	assert.Equal(t, "DEBITO", payload.Partidas[0].Tipo)
}

func TestCreateLancamentoRequestBinding_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"single line fails min", `{
			"numero_lancamento": "L001",
			"data_lancamento": "2025-01-15",
			"data_competencia": "2025-01-31",
			"tipo_lancamento": "NORMAL",
			"historico": "x",
			"valor": "150.00",
			"partidas": [{"conta_id": "c1", "tipo": "DEBITO", "valor": "150.00"}]
		}`},
		{"unknown entry type", `{
			"numero_lancamento": "L001",
			"data_lancamento": "2025-01-15",
			"data_competencia": "2025-01-31",
			"tipo_lancamento": "TRANSFERENCIA",
			"historico": "x",
			"valor": "150.00",
			"partidas": [
				{"conta_id": "c1", "tipo": "DEBITO", "valor": "150.00"},
				{"conta_id": "c2", "tipo": "CREDITO", "valor": "150.00"}
			]
		}`},
		{"unknown line side", `{
			"numero_lancamento": "L001",
			"data_lancamento": "2025-01-15",
			"data_competencia": "2025-01-31",
			"tipo_lancamento": "NORMAL",
			"historico": "x",
			"valor": "150.00",
			"partidas": [
				{"conta_id": "c1", "tipo": "D", "valor": "150.00"},
				{"conta_id": "c2", "tipo": "CREDITO", "valor": "150.00"}
			]
		}`},
		{"bad posting date format", `{
			"numero_lancamento": "L001",
			"data_lancamento": "15/01/2025",
			"data_competencia": "2025-01-31",
			"tipo_lancamento": "NORMAL",
			"historico": "x",
			"valor": "150.00",
			"partidas": [
				{"conta_id": "c1", "tipo": "DEBITO", "valor": "150.00"},
				{"conta_id": "c2", "tipo": "CREDITO", "valor": "150.00"}
			]
		}`},
		{"missing entry number", `{
			"data_lancamento": "2025-01-15",
			"data_competencia": "2025-01-31",
			"tipo_lancamento": "NORMAL",
			"historico": "x",
			"valor": "150.00",
			"partidas": [
				{"conta_id": "c1", "tipo": "DEBITO", "valor": "150.00"},
				{"conta_id": "c2", "tipo": "CREDITO", "valor": "150.00"}
			]
		}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bindLancamento(t, tt.body)
			assert.Error(t, err)
		})
	}
}
