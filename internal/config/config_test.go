package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "acompanhamento_os", cfg.Tables.StageProgress)
	assert.Equal(t, "ordens_servico", cfg.Tables.ServiceOrders)
	assert.Equal(t, "*/15 * * * *", cfg.ReconcileCron)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVICE_ORDERS_TABLE", "os_test")
	t.Setenv("STORAGE_PUBLIC_BASE_URL", "http://localhost:4566/")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "os_test", cfg.Tables.ServiceOrders)
	assert.Equal(t, "http://localhost:4566", cfg.StoragePublicBaseURL)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("PORT", "0")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PORT", "8080")
	t.Setenv("CACHE_SIZE", "-1")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_Payments(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", " test-123 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.PaymentGatewayMock)
	assert.True(t, cfg.SandboxPayments())

	cfg.MercadoPagoAccessToken = "APP_USR-123"
	assert.False(t, cfg.SandboxPayments())
}
