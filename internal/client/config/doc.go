// Package config loads runtime configuration for the furball client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. FURBALL_* environment variables.
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations accept "3s" style strings or integer nanoseconds:
//
//	{
//	  "node_addr": "127.0.0.1:50051",
//	  "db_path": "furball.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "recreate_stale_profile": false
//	}
package config
