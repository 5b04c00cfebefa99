package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadDotenv is a seam so tests do not pick up a developer's .env file.
var loadDotenv = func() {
	// a missing .env is fine; real environment variables still apply
	_ = godotenv.Load()
}

// parseEnv overlays values from the process environment, after loading
// a .env file from the working directory if one exists.
//
//	DATABASE_URL        DatabaseDSN
//	ADDRESS             EndpointAddrHTTP
//	SUBMIT_DELAY        SubmitDelay (Go duration, e.g. "1s")
//	STRICT_ENTRY_TYPES  StrictEntryTypes (strconv.ParseBool)
//	LOG_LEVEL           LogLevel
//	LOG_FORMAT          LogFormat
//	SHUTDOWN_TIMEOUT    ShutdownTimeout
func parseEnv(config *Config) {
	loadDotenv()

	if v, ok := os.LookupEnv("DATABASE_URL"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("ADDRESS"); ok && v != "" {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("SUBMIT_DELAY"); ok && v != "" {
		config.SubmitDelay = mustDuration("SUBMIT_DELAY", v)
	}
	if v, ok := os.LookupEnv("STRICT_ENTRY_TYPES"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("STRICT_ENTRY_TYPES: %w", err))
		}
		config.StrictEntryTypes = b
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok && v != "" {
		config.LogFormat = v
	}
	if v, ok := os.LookupEnv("SHUTDOWN_TIMEOUT"); ok && v != "" {
		config.ShutdownTimeout = mustDuration("SHUTDOWN_TIMEOUT", v)
	}
}

func mustDuration(name, v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", name, err))
	}
	return d
}
