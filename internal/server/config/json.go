package config

import (
	"os"

	"github.com/goccy/go-json"

	"github.com/dmitrijs2005/labmaint/internal/flagx"
	"github.com/dmitrijs2005/labmaint/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Pointer
// fields distinguish "absent" from zero values so that a partial file only
// overrides what it mentions.
type JsonConfig struct {
	EndpointAddrHTTP        *string         `json:"endpoint_addr_http"`
	DBHost                  *string         `json:"db_host"`
	DBPort                  *string         `json:"db_port"`
	DBUser                  *string         `json:"db_user"`
	DBPassword              *string         `json:"db_password"`
	DBName                  *string         `json:"db_name"`
	DatabaseDSN             *string         `json:"database_dsn"`
	SecretKey               *string         `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	SecureCookie            *bool           `json:"secure_cookie"`
	RunMigrations           *bool           `json:"run_migrations"`
	LoginRateLimit          *int            `json:"login_rate_limit"`
	LogLevel                *string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config (see flagx.ConfigFileFlag)
// and copies every present field into config. Without the flag nothing
// happens. An unreadable file or invalid JSON panics, as a broken config
// must stop startup.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
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

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DBHost, c.DBHost)
	setString(&config.DBPort, c.DBPort)
	setString(&config.DBUser, c.DBUser)
	setString(&config.DBPassword, c.DBPassword)
	setString(&config.DBName, c.DBName)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)

	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.SecureCookie != nil {
		config.SecureCookie = *c.SecureCookie
	}
	if c.RunMigrations != nil {
		config.RunMigrations = *c.RunMigrations
	}
	if c.LoginRateLimit != nil {
		config.LoginRateLimit = *c.LoginRateLimit
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
