package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"secret": "",
		},
		"ai": map[string]any{
			"apiKey":  "",
			"baseUrl": "",
		},
		"http": map[string]any{
			"maxRequestBodySize": "30M",
			"staticDir":          "public",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "AI_API_KEY", want: "ai.apiKey"},
		{envKey: "AI_APIKEY", want: "ai.apiKey"},
		{envKey: "AI_BASE_URL", want: "ai.baseUrl"},
		{envKey: "HTTP_MAX_REQUEST_BODY_SIZE", want: "http.maxRequestBodySize"},
		{envKey: "HTTP_STATIC_DIR", want: "http.staticDir"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
