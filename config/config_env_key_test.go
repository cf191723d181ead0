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
		"auth": map[string]any{
			"bypass":           false,
			"bypassExecutorId": 0,
			"telegramBotToken": "",
		},
		"mqtt": map[string]any{
			"clientId": "",
		},
		"search": map[string]any{
			"suggestionLimit": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_BYPASS", want: "auth.bypass"},
		{envKey: "AUTH_BYPASSEXECUTORID", want: "auth.bypassExecutorId"},
		{envKey: "AUTH_TELEGRAMBOTTOKEN", want: "auth.telegramBotToken"},
		{envKey: "MQTT_CLIENTID", want: "mqtt.clientId"},
		{envKey: "SEARCH_SUGGESTIONLIMIT", want: "search.suggestionLimit"},
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
