package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envFiles are the dotenv files consulted by parseEnv. Missing files are skipped.
var envFiles = []string{".env"}

// lookupEnv is the process environment lookup, swapped in tests.
var lookupEnv = os.LookupEnv

// parseEnv overlays Config with environment variables. Values already set in
// the process environment win over the ones read from envFiles.
//
// Recognised variables:
//
//	PORT            HTTP port; becomes ":<PORT>"
//	HTTP_ADDR       full HTTP bind address, overrides PORT
//	GRPC_ADDR       gRPC health bind address
//	DATABASE_URL    PostgreSQL DSN or "memory"
//	JWT_SECRET      token signing secret
//	TOKEN_TTL       token lifetime, Go duration ("168h")
//	ADMIN_EMAIL     bootstrap administrator email
//	ADMIN_PASSWORD  bootstrap administrator initial password
//	BCRYPT_COST     bcrypt work factor
//	LOG_LEVEL       debug, info, warn or error
//	CORS_ORIGINS    comma-separated list of allowed origins
//
// Malformed numeric or duration values panic, like the other loaders.
func parseEnv(config *Config) {
	file := readEnvFiles()

	get := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := file[key]
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		config.HTTPAddr = ":" + strings.TrimPrefix(v, ":")
	}
	if v, ok := get("HTTP_ADDR"); ok {
		config.HTTPAddr = v
	}
	if v, ok := get("GRPC_ADDR"); ok {
		config.GRPCAddr = v
	}
	if v, ok := get("DATABASE_URL"); ok {
		config.DatabaseURL = v
	}
	if v, ok := get("JWT_SECRET"); ok {
		config.JWTSecret = v
	}
	if v, ok := get("TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.TokenTTL = d
	}
	if v, ok := get("ADMIN_EMAIL"); ok {
		config.AdminEmail = v
	}
	if v, ok := get("ADMIN_PASSWORD"); ok {
		config.AdminPassword = v
	}
	if v, ok := get("BCRYPT_COST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = n
	}
	if v, ok := get("LOG_LEVEL"); ok {
		config.LogLevel = v
	}
	if v, ok := get("CORS_ORIGINS"); ok {
		config.CORSOrigins = splitList(v)
	}
}

func readEnvFiles() map[string]string {
	merged := map[string]string{}
	for _, name := range envFiles {
		values, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			panic(err)
		}
		// earlier files win, matching godotenv.Load
		for k, v := range values {
			if _, seen := merged[k]; !seen {
				merged[k] = v
			}
		}
	}
	return merged
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
