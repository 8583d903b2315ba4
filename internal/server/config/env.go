package config

import (
	"os"
	"strconv"
)

// parseEnv overlays Config with environment variables. Unset variables leave
// the current value alone; malformed numbers and booleans are ignored.
//
//	DB_HOST, DB_PORT, DB_USER, DB_PASS, DB_NAME   database coordinates
//	DATABASE_DSN                                  full DSN override
//	HTTP_ADDR                                     bind address
//	SECRET_KEY                                    session signing key
//	LOG_LEVEL                                     log level
//	RUN_MIGRATIONS                                true/false
//	LOGIN_RATE_LIMIT                              attempts per minute
func parseEnv(config *Config) {
	lookupString("DB_HOST", &config.DBHost)
	lookupString("DB_PORT", &config.DBPort)
	lookupString("DB_USER", &config.DBUser)
	lookupString("DB_PASS", &config.DBPassword)
	lookupString("DB_NAME", &config.DBName)
	lookupString("DATABASE_DSN", &config.DatabaseDSN)
	lookupString("HTTP_ADDR", &config.EndpointAddrHTTP)
	lookupString("SECRET_KEY", &config.SecretKey)
	lookupString("LOG_LEVEL", &config.LogLevel)

	if v, ok := os.LookupEnv("RUN_MIGRATIONS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.RunMigrations = b
		}
	}
	if v, ok := os.LookupEnv("LOGIN_RATE_LIMIT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.LoginRateLimit = n
		}
	}
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
