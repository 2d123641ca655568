package config

import (
	"flag"
	"io"

	"github.com/furball-art/furball/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-a string     node address
//	-d string     SQLite database path
//	-t duration   per-request timeout
//	-l string     log level
//	-recreate-stale-profile   republish a profile whose cached id is stale
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l", "-recreate-stale-profile"})

	fs := flag.NewFlagSet("furball", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.NodeAddr, "a", cfg.NodeAddr, "address and port of the document node")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local SQLite database")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout (0 = none)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.RecreateStaleProfile, "recreate-stale-profile", cfg.RecreateStaleProfile, "republish a profile whose cached id no longer resolves")

	return fs.Parse(args)
}
