package config

import (
	"reflect"
	"strings"
	"testing"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.HTTP.Port = 4567
	cfg.JWT.Secret = strings.Repeat("s", MinJWTSecretLength)
	cfg.AI.APIKey = "key"
	cfg.Postgres = &postgres.DBConn{}

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "jwt.secret is not set"},
		{name: "short secret", mutate: func(c *Config) { c.JWT.Secret = strings.Repeat("s", 31) }, wantErr: "at least 32 bytes, got 31"},
		{name: "missing api key", mutate: func(c *Config) { c.AI.APIKey = "" }, wantErr: "ai.apiKey is not set"},
		{name: "missing postgres", mutate: func(c *Config) { c.Postgres = nil }, wantErr: "postgres is not set"},
		{
			name:    "metrics port collision",
			mutate:  func(c *Config) { c.Metrics = &MetricsConfig{Enabled: true, Port: 4567} },
			wantErr: "collides with http.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true, Port: 9090}}
	cfg.applyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORS.AllowOrigins)
	assert.Equal(t, defaultAIBaseURL, cfg.AI.BaseURL)
	assert.Equal(t, defaultAIModel, cfg.AI.Model)
	assert.Equal(t, defaultAITimeout, cfg.AI.Timeout)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestExpandEnvRefsHookFunc(t *testing.T) {
	env := map[string]string{"JWT_SECRET": "from-env", "EMPTY": ""}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]

		return v, ok
	}
	hook := expandEnvRefsHookFunc(lookup)
	strType := reflect.TypeOf("")

	tests := []struct {
		in   any
		want any
	}{
		{in: "${JWT_SECRET}", want: "from-env"},
		{in: "prefix-${JWT_SECRET}-suffix", want: "prefix-from-env-suffix"},
		{in: "${EMPTY}", want: ""},
		{in: "${UNSET_VAR}", want: "${UNSET_VAR}"},
		{in: "pa$$word", want: "pa$$word"},
		{in: 42, want: 42},
	}

	for _, tt := range tests {
		got, err := hook(reflect.TypeOf(tt.in), strType, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
