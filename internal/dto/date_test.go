package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sgcontabil/sgc_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	d, err := dto.ParseDateOnly("2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), d.Time)

	_, err = dto.ParseDateOnly("31/03/2025")
	assert.Error(t, err)

	_, err = dto.ParseDateOnly("2025-02-30")
	assert.Error(t, err)
}

func TestDateOnlyUnmarshalJSON(t *testing.T) {
	var payload struct {
		Data dto.DateOnly `json:"data"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"data":"2025-01-15"}`), &payload))
	assert.Equal(t, "2025-01-15", payload.Data.String())

	require.NoError(t, json.Unmarshal([]byte(`{"data":null}`), &payload))
	assert.True(t, payload.Data.IsZero())

	err := json.Unmarshal([]byte(`{"data":"15-01-2025"}`), &payload)
	assert.Error(t, err)
}

func TestDateOnlyMarshalJSON(t *testing.T) {
	d, err := dto.ParseDateOnly("2024-12-01")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-01"`, string(b))

	b, err = json.Marshal(dto.DateOnly{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
