package config

import (
	"time"
)

// Config holds runtime settings for the furball client.
//
// Fields:
//   - NodeAddr: host:port of the document node's gRPC endpoint.
//   - DBPath: SQLite file holding the identity cache.
//   - RequestTimeout: per-call bound on document RPCs; zero means none.
//   - LogLevel: debug, info, warn or error.
//   - RecreateStaleProfile: publish a new profile when the cached one no
//     longer resolves, instead of failing.
//   - OTelEndpoint: OTLP/HTTP endpoint for traces; empty disables tracing.
//   - MaxMessageBytes: gRPC message size limit, sized for image uploads.
type Config struct {
	NodeAddr             string        `env:"NODE_ADDR"`
	DBPath               string        `env:"DB_PATH"`
	RequestTimeout       time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel             string        `env:"LOG_LEVEL"`
	RecreateStaleProfile bool          `env:"RECREATE_STALE_PROFILE"`
	OTelEndpoint         string        `env:"OTEL_ENDPOINT"`
	MaxMessageBytes      int           `env:"MAX_MESSAGE_BYTES"`
}

const EnvPrefix = "FURBALL_"

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.NodeAddr = "127.0.0.1:50051"
	c.DBPath = "furball.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.RecreateStaleProfile = false
	c.OTelEndpoint = ""
	c.MaxMessageBytes = 16 << 20
}

// LoadConfig builds a Config from defaults, then the JSON file named by -c,
// then FURBALL_* environment variables, then flags. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
