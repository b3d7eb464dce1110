package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := writeConfig(t, `
store_url: https://example.supabase.co
store_api_key: secret-key
api_port: 9090
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://example.supabase.co", cfg.StoreURL)
	assert.Equal(t, "secret-key", cfg.StoreAPIKey)
	assert.Equal(t, 9090, cfg.APIPort)
	assert.Equal(t, DefaultAPIHost, cfg.APIHost)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingStoreSettingsIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing store url",
			content: "store_api_key: secret-key\n",
			wantErr: "store_url",
		},
		{
			name:    "missing api key",
			content: "store_url: https://example.supabase.co\n",
			wantErr: "store_api_key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)

			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSSLPair(t *testing.T) {
	cfg := &Config{
		StoreURL:    "https://example.supabase.co",
		StoreAPIKey: "secret-key",
		SSLCert:     "/tmp/cert.pem",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ssl")
}
