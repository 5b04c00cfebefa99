package config

import (
	"flag"

	"github.com/lgastler/work-journal/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string    HTTP bind address (e.g. ":8080")
//	-d string    database DSN
//	-w duration  submission delay (e.g. "1s", "0s")
//	-s           reject unknown entry types
//	-l string    log level
//	-f string    log format (json|text)
//	-t duration  shutdown timeout
//
// Only these flags are considered; anything else on the command line (such
// as -c for the JSON file) is filtered out first.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-w", "-s", "-l", "-f", "-t"}, "-s")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.DurationVar(&config.SubmitDelay, "w", config.SubmitDelay, "delay before each entry write")
	fs.BoolVar(&config.StrictEntryTypes, "s", config.StrictEntryTypes, "reject unknown entry types")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text)")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
