package config

import (
	"flag"
	"os"
	"strings"

	"github.com/ishwarya-18/todo-app/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g. ":5000")
//	-g string     gRPC health bind address, empty disables it
//	-d string     database URL (PostgreSQL DSN or "memory")
//	-s string     JWT HMAC secret
//	-t duration   token lifetime (e.g. "168h")
//	-e string     bootstrap admin email
//	-b int        bcrypt cost
//	-l string     log level
//	-o string     comma-separated CORS origins
//
// os.Args is filtered through flagx.FilterArgs first so that -c/-config and
// any unrelated flags do not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-s", "-t", "-e", "-b", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to serve HTTP on")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "address and port for the gRPC health service")
	fs.StringVar(&config.DatabaseURL, "d", config.DatabaseURL, "database URL")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "token signing secret")
	fs.DurationVar(&config.TokenTTL, "t", config.TokenTTL, "token validity duration")
	fs.StringVar(&config.AdminEmail, "e", config.AdminEmail, "bootstrap admin email")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	origins := fs.String("o", strings.Join(config.CORSOrigins, ","), "allowed CORS origins, comma-separated")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CORSOrigins = splitList(*origins)
}
