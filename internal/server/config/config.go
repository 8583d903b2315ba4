// Package config handles configuration for the server, layering defaults,
// an optional JSON file, environment variables and command-line flags.
package config

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

// Config holds runtime settings for the labmaint server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP API.
//   - DBHost / DBPort / DBUser / DBPassword / DBName: PostgreSQL coordinates.
//   - DatabaseDSN: full pgx DSN; when set it wins over the DB* fields.
//   - SecretKey: HMAC secret signing session cookies (HS256).
//   - SessionValidityDuration: lifetime of a login session.
//   - SecureCookie: mark the session cookie Secure (HTTPS deployments).
//   - RunMigrations: apply embedded schema migrations at startup.
//   - LoginRateLimit: login attempts allowed per IP per minute (0 disables).
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP        string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	SecureCookie            bool
	RunMigrations           bool
	LoginRateLimit          int
	LogLevel                string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key and database password are insecure for production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.DBHost = "127.0.0.1"
	c.DBPort = "5432"
	c.DBUser = "postgres"
	c.DBPassword = "pass"
	c.DBName = "sis_control"
	c.DatabaseDSN = ""
	c.SecretKey = "llave_ultra_secreta"
	c.SessionValidityDuration = 12 * time.Hour
	c.SecureCookie = false
	c.RunMigrations = true
	c.LoginRateLimit = 10
	c.LogLevel = "info"
}

// DSN returns DatabaseDSN when set, otherwise a pgx URL built from the
// individual DB* settings.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// String describes the config without secrets, for the startup log line.
func (c *Config) String() string {
	return fmt.Sprintf("http=%s db=%s:%s/%s migrations=%t session=%s",
		c.EndpointAddrHTTP, c.DBHost, c.DBPort, c.DBName, c.RunMigrations, c.SessionValidityDuration)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
