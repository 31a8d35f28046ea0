package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected func(c *Config)
	}{
		{
			name:     "empty environment keeps defaults",
			env:      nil,
			expected: func(*Config) {},
		},
		{
			name: "all variables",
			env: map[string]string{
				"GRPC_ADDR":      ":50051",
				"DATABASE_URL":   "memory",
				"JWT_SECRET":     "s3cret",
				"TOKEN_TTL":      "1h30m",
				"ADMIN_EMAIL":    "root@example.com",
				"ADMIN_PASSWORD": "Root@123",
				"BCRYPT_COST":    "12",
				"LOG_LEVEL":      "debug",
				"CORS_ORIGINS":   "http://localhost:3000, https://todo.example.com ,",
			},
			expected: func(c *Config) {
				c.GRPCAddr = ":50051"
				c.DatabaseURL = "memory"
				c.JWTSecret = "s3cret"
				c.TokenTTL = 90 * time.Minute
				c.AdminEmail = "root@example.com"
				c.AdminPassword = "Root@123"
				c.BcryptCost = 12
				c.LogLevel = "debug"
				c.CORSOrigins = []string{"http://localhost:3000", "https://todo.example.com"}
			},
		},
		{
			name:     "PORT becomes a bind address",
			env:      map[string]string{"PORT": "3000"},
			expected: func(c *Config) { c.HTTPAddr = ":3000" },
		},
		{
			name:     "HTTP_ADDR overrides PORT",
			env:      map[string]string{"PORT": "3000", "HTTP_ADDR": "127.0.0.1:9000"},
			expected: func(c *Config) { c.HTTPAddr = "127.0.0.1:9000" },
		},
		{
			name:     "empty values are ignored",
			env:      map[string]string{"JWT_SECRET": "", "DATABASE_URL": ""},
			expected: func(*Config) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t, tt.env)

			got := defaults()
			parseEnv(got)

			want := defaults()
			tt.expected(want)
			assert.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestParseEnv_MalformedValuesPanic(t *testing.T) {
	for _, env := range []map[string]string{
		{"TOKEN_TTL": "7 days"},
		{"BCRYPT_COST": "ten"},
	} {
		isolate(t, env)
		require.Panics(t, func() { parseEnv(defaults()) }, "%v", env)
	}
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local settings\nJWT_SECRET=from-file\nDATABASE_URL=memory\nPORT=7000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	isolate(t, map[string]string{"JWT_SECRET": "from-process"})
	envFiles = []string{filepath.Join(dir, "missing.env"), path}

	c := defaults()
	parseEnv(c)

	assert.Equal(t, "from-process", c.JWTSecret, "process environment wins over the file")
	assert.Equal(t, "memory", c.DatabaseURL)
	assert.Equal(t, ":7000", c.HTTPAddr)
}

func TestParseEnv_BrokenDotEnvPanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET='unterminated\n"), 0o600))

	isolate(t, nil)
	envFiles = []string{path}

	require.Panics(t, func() { parseEnv(defaults()) })
}
