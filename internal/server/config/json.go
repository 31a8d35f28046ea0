package config

import (
	"encoding/json"
	"os"

	"github.com/ishwarya-18/todo-app/internal/flagx"
	"github.com/ishwarya-18/todo-app/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration file.
// Durations go through timex.Duration so both "168h" and integer
// nanoseconds are accepted.
type JsonConfig struct {
	HTTPAddr      string         `json:"http_addr"`
	GRPCAddr      string         `json:"grpc_addr"`
	DatabaseURL   string         `json:"database_url"`
	JWTSecret     string         `json:"jwt_secret"`
	TokenTTL      timex.Duration `json:"token_ttl"`
	AdminEmail    string         `json:"admin_email"`
	AdminPassword string         `json:"admin_password"`
	BcryptCost    int            `json:"bcrypt_cost"`
	LogLevel      string         `json:"log_level"`
	CORSOrigins   []string       `json:"cors_origins"`
}

// parseJson loads the file named by -c / -config, if any, and copies every
// field that is present into config. Fields left out of the file keep their
// current value. Unreadable files and invalid JSON panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.GRPCAddr, c.GRPCAddr)
	setString(&config.DatabaseURL, c.DatabaseURL)
	setString(&config.JWTSecret, c.JWTSecret)
	setString(&config.AdminEmail, c.AdminEmail)
	setString(&config.AdminPassword, c.AdminPassword)
	setString(&config.LogLevel, c.LogLevel)

	if c.TokenTTL.Duration > 0 {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.CORSOrigins != nil {
		config.CORSOrigins = c.CORSOrigins
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
