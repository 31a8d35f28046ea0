package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-g", ":50051", "-d", "memory", "-s", "secret",
				"-t", "2h", "-e", "boss@example.com", "-b", "8", "-l", "debug",
				"-o", "http://a.example,http://b.example",
			},
			expected: &Config{
				HTTPAddr:      "127.0.0.1:9090",
				GRPCAddr:      ":50051",
				DatabaseURL:   "memory",
				JWTSecret:     "secret",
				TokenTTL:      2 * time.Hour,
				AdminEmail:    "boss@example.com",
				AdminPassword: "Admin@123",
				BcryptCost:    8,
				LogLevel:      "debug",
				CORSOrigins:   []string{"http://a.example", "http://b.example"},
			},
		},
		{
			name:     "unrelated flags are filtered out",
			args:     []string{"-c", "cfg.json", "-x", "-d=memory"},
			expected: func() *Config { c := defaults(); c.DatabaseURL = "memory"; return c }(),
		},
		{
			name:        "bad duration",
			args:        []string{"-t", "soon"},
			expectPanic: true,
		},
		{
			name:        "bad cost",
			args:        []string{"-b", "high"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, nil, tt.args...)

			config := defaults()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
