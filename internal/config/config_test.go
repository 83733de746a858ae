package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nova-fund/internal/core/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "badger", cfg.Store.Driver)
	assert.Equal(t, "nova-fund", cfg.Auth.Audience)
	assert.Equal(t, time.Hour, cfg.Auth.MaxTTL)
	assert.Equal(t, "escrow", cfg.Ledger.Escrow)
	assert.Empty(t, cfg.Ledger.Issuer)
}

func TestLoadDotenv(t *testing.T) {
	issuer := domain.ContractAddress("issuer")
	path := filepath.Join(t.TempDir(), ".env")
	content := "STORE_DRIVER=leveldb\nLEDGER_ISSUER=" + issuer.String() + "\nHTTP_PORT=9000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HTTP_PORT", "9100")
	// godotenv does not override the environment
	t.Cleanup(func() {
		_ = os.Unsetenv("STORE_DRIVER")
		_ = os.Unsetenv("LEDGER_ISSUER")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, issuer, cfg.Ledger.Issuer)
	assert.Equal(t, uint16(9100), cfg.HTTP.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadRejectsBadIssuer(t *testing.T) {
	t.Setenv("LEDGER_ISSUER", "not an address")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, domain.ErrInvalidAddress.Error())
}
