package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	t.Run("success envelope carries only the set payload key", func(t *testing.T) {
		body, err := json.Marshal(NewSuccess("Installment added successfully").WithInstallment(map[string]any{"amount": 100}))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(body, &decoded))

		assert.Equal(t, false, decoded["error"])
		assert.Equal(t, "Installment added successfully", decoded["message"])
		assert.Contains(t, decoded, "installment")
		assert.NotContains(t, decoded, "customer")
		assert.NotContains(t, decoded, "glass")
	})

	t.Run("empty collection still serializes", func(t *testing.T) {
		body, err := json.Marshal(NewSuccess("Customers fetched successfully").WithCustomer([]string{}))
		require.NoError(t, err)
		assert.Contains(t, string(body), `"customer":[]`)
	})

	t.Run("error envelope", func(t *testing.T) {
		body, err := json.Marshal(NewError("Internal server error"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":true,"message":"Internal server error"}`, string(body))
	})
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(shared.CodeValidation))
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(shared.CodeNotFound))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(shared.CodeInternal))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}
