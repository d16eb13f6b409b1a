package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "json_issuer",
			"token_duration": "2h",
			"bcrypt_cost": 11,
			"page_size": 3,
			"version": "0.9.0"
		},
		"storage": {
			"db": {"dsn": "postgres://json/db"}
		},
		"server": {
			"http_address": "0.0.0.0:9000",
			"request_timeout": "45s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "json_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, 3, cfg.App.PageSize)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "duration string", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "raw nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "invalid string", input: `"soon"`, wantErr: true},
		{name: "invalid type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
