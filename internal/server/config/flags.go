package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/labmaint/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-s string   session signing key
//	-t int      session validity, minutes
//	-l string   log level
//	-r int      login attempts per IP per minute
//	-m bool     apply embedded migrations at startup
//
// Only these flags are parsed out of os.Args (see flagx.FilterArgsWithBools),
// so -c/-config handled by parseJson does not collide with them.
func parseFlags(config *Config) {
	args := flagx.FilterArgsWithBools(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-r"}, []string{"-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.IntVar(&config.LoginRateLimit, "r", config.LoginRateLimit, "login attempts per IP per minute")
	fs.BoolVar(&config.RunMigrations, "m", config.RunMigrations, "run migrations at startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
}
