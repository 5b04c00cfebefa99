package config

import (
	"encoding/json"
	"os"

	"github.com/lgastler/work-journal/internal/flagx"
	"github.com/lgastler/work-journal/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file.
// Durations accept "1s" style strings or integer nanoseconds. Pointer
// fields distinguish "absent" from the zero value.
type JsonConfig struct {
	EndpointAddrHTTP string          `json:"endpoint_addr_http"`
	DatabaseDSN      string          `json:"database_dsn"`
	SubmitDelay      *timex.Duration `json:"submit_delay"`
	StrictEntryTypes *bool           `json:"strict_entry_types"`
	LogLevel         string          `json:"log_level"`
	LogFormat        string          `json:"log_format"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c/-config, if any, and copies every
// field it sets into config. An unreadable or invalid file panics.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SubmitDelay != nil {
		config.SubmitDelay = c.SubmitDelay.Duration
	}
	if c.StrictEntryTypes != nil {
		config.StrictEntryTypes = *c.StrictEntryTypes
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
