package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	appconfig "taller_xpto/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	_, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{}, zap.NewNop())
	assert.True(t, errors.Is(err, ErrMissingMercadoPagoAccessToken))

	g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{Mock: true}, nil)
	require.NoError(t, err)
	assert.True(t, g.mockMode)
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("mock echoes the request and approves", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{Mock: true}, zap.NewNop())
		require.NoError(t, err)

		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"external_reference":"os-1","transaction_amount":10}`))
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, "approved", status)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "os-1", body["external_reference"])
		assert.Equal(t, "accredited", body["status_detail"])
		assert.Equal(t, id, body["id"])
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		assert.True(t, errors.Is(err, ErrMercadoPagoGatewayNotConfigured))
	})
}
