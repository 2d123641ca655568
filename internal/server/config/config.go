// Package config handles configuration for the document node, including
// defaults, a JSON overlay, DOCNODE_* environment variables and flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the document node.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps documents in memory.
//   - SecretKey: HMAC secret for signing session JWTs (HS256).
//   - AccessTokenValidityDuration: session token lifetime.
//   - AuthClockSkew: how far an authentication timestamp may drift from now.
//   - CASBackend: where content bytes live: memory, localfs or s3.
//   - LocalCASDir: root directory of the localfs backend.
//   - S3*: object storage settings for the s3 backend.
//   - MaxMessageBytes: gRPC message size limit.
//   - LogLevel, OTelEndpoint: observability.
type Config struct {
	EndpointAddrGRPC            string        `env:"ENDPOINT_ADDR_GRPC"`
	DatabaseDSN                 string        `env:"DATABASE_DSN"`
	SecretKey                   string        `env:"SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"ACCESS_TOKEN_VALIDITY_DURATION"`
	AuthClockSkew               time.Duration `env:"AUTH_CLOCK_SKEW"`
	CASBackend                  string        `env:"CAS_BACKEND"`
	LocalCASDir                 string        `env:"LOCAL_CAS_DIR"`
	S3AccessKey                 string        `env:"S3_ACCESS_KEY"`
	S3SecretKey                 string        `env:"S3_SECRET_KEY"`
	S3Bucket                    string        `env:"S3_BUCKET"`
	S3Region                    string        `env:"S3_REGION"`
	S3BaseEndpoint              string        `env:"S3_BASE_ENDPOINT"`
	S3Prefix                    string        `env:"S3_PREFIX"`
	MaxMessageBytes             int           `env:"MAX_MESSAGE_BYTES"`
	LogLevel                    string        `env:"LOG_LEVEL"`
	OTelEndpoint                string        `env:"OTEL_ENDPOINT"`
}

const EnvPrefix = "DOCNODE_"

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.AuthClockSkew = 2 * time.Minute
	c.CASBackend = "localfs"
	c.LocalCASDir = "docnode-cas"
	c.S3AccessKey = "minioadmin"
	c.S3SecretKey = "minioadmin"
	c.S3Bucket = "furball"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"
	c.S3Prefix = "cas/"
	c.MaxMessageBytes = 16 << 20
	c.LogLevel = "info"
	c.OTelEndpoint = ""
}

func (c *Config) Validate() error {
	switch {
	case c.EndpointAddrGRPC == "":
		return errors.New("endpoint address is required")
	case c.SecretKey == "":
		return errors.New("secret key is required")
	case c.AccessTokenValidityDuration <= 0:
		return errors.New("access token validity must be positive")
	case c.AuthClockSkew <= 0:
		return errors.New("auth clock skew must be positive")
	case c.MaxMessageBytes <= 0:
		return errors.New("max message bytes must be positive")
	}
	return nil
}

// LoadConfig applies defaults, then the JSON file named by -c, then
// DOCNODE_* variables, then flags. Later sources win.
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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
