// Package config handles loading runtime configuration for the database check API.
// Connection parameters are read from environment variables rather than being hardcoded,
// so the same binary runs against a local Postgres, a docker-compose service, or a
// Kubernetes-managed database just by changing the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// Handy in development; in production the real environment variables are used instead.
	"github.com/joho/godotenv"
)

// ListenAddr is where the HTTP server binds: every interface, port 8080.
const ListenAddr = "0.0.0.0:8080"

// Defaults applied when a variable is absent.
const (
	DefaultHost     = "postgres"
	DefaultUser     = "postgres"
	DefaultPassword = "password"
	DefaultDBName   = "appdb"
)

// Config holds the Postgres connection parameters.
// It is built once at startup and never mutated afterwards.
type Config struct {
	Host     string  // PG_HOST
	User     string  // PG_USER
	Password string  // PG_PASSWORD
	DBName   string  // PG_DBNAME
	Port     *uint16 // PG_PORT; nil means "use the pool's own default"
}

// Load reads configuration from environment variables and returns a populated Config.
// Load never fails: missing values fall back to defaults, and a PG_PORT that isn't a
// valid 16-bit unsigned integer is ignored rather than aborting startup.
func Load() *Config {
	// Attempt to load a .env file from the current working directory.
	// A missing .env is fine — real environment variables may already be set.
	_ = godotenv.Load()

	return &Config{
		Host:     getenv("PG_HOST", DefaultHost),
		User:     getenv("PG_USER", DefaultUser),
		Password: getenv("PG_PASSWORD", DefaultPassword),
		DBName:   getenv("PG_DBNAME", DefaultDBName),
		Port:     parsePort(os.Getenv("PG_PORT")),
	}
}

// getenv returns the value of key, or fallback if it is unset.
// A variable set to the empty string is passed through as-is.
func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// parsePort converts s to a port number. Anything that doesn't fit in a uint16
// (empty, negative, non-numeric, > 65535) yields nil.
func parsePort(s string) *uint16 {
	if s == "" {
		return nil
	}
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil
	}
	port := uint16(p)
	return &port
}

// ConnString renders the config as a libpq keyword/value connection string
// (e.g. "host='postgres' user='postgres' ... sslmode=disable").
// Port is never part of the string: the parser rejects port=0, and a bad port must
// fail the request that dials it, not startup. database.Connect applies it instead.
// TLS is never negotiated.
func (c *Config) ConnString() string {
	parts := []string{
		"host=" + quote(c.Host),
		"user=" + quote(c.User),
		"password=" + quote(c.Password),
		"dbname=" + quote(c.DBName),
		"sslmode=disable",
	}
	return strings.Join(parts, " ")
}

// quote wraps v in single quotes, escaping backslashes and quotes so values
// containing spaces or punctuation survive the keyword/value parser.
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
