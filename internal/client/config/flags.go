package config

import (
	"flag"
	"io"
)

// parseFlags reads the global flags at the head of args and returns what
// follows them.
//
// Supported flags:
//
//	-c string     JSON config file (consumed by parseJson)
//	-a string     address and port of the credential service
//	-r int        attempts per call
//	-b duration   pause between attempts (e.g. "2s")
//	-d string     PostgreSQL DSN for admin commands
//	-l string     log level
//
// Parsing stops at the first non-flag argument, the command name.
// Panics on malformed values.
func parseFlags(cfg *Config, args []string) []string {
	fs := flag.NewFlagSet("groupctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var jsonFile string
	fs.StringVar(&jsonFile, "c", "", "JSON config file")
	fs.StringVar(&jsonFile, "config", "", "JSON config file")
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the credential service")
	fs.IntVar(&cfg.RetryAttempts, "r", cfg.RetryAttempts, "attempts per call")
	fs.DurationVar(&cfg.RetryBackoff, "b", cfg.RetryBackoff, "pause between attempts")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN for admin commands")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	return fs.Args()
}
