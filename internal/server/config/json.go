package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/furball-art/furball/internal/flagx"
	"github.com/furball-art/furball/internal/timex"
)

// JsonConfig is the JSON file layout. Durations accept "15m" style strings
// or integer nanoseconds. Absent keys keep the current value.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	AuthClockSkew               *timex.Duration `json:"auth_clock_skew"`
	CASBackend                  *string         `json:"cas_backend"`
	LocalCASDir                 *string         `json:"local_cas_dir"`
	S3AccessKey                 *string         `json:"s3_access_key"`
	S3SecretKey                 *string         `json:"s3_secret_key"`
	S3Bucket                    *string         `json:"s3_bucket"`
	S3Region                    *string         `json:"s3_region"`
	S3BaseEndpoint              *string         `json:"s3_base_endpoint"`
	S3Prefix                    *string         `json:"s3_prefix"`
	MaxMessageBytes             *int            `json:"max_message_bytes"`
	LogLevel                    *string         `json:"log_level"`
	OTelEndpoint                *string         `json:"otel_endpoint"`
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.EndpointAddrGRPC, jc.EndpointAddrGRPC)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.SecretKey, jc.SecretKey)
	if jc.AccessTokenValidityDuration != nil {
		cfg.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	}
	if jc.AuthClockSkew != nil {
		cfg.AuthClockSkew = jc.AuthClockSkew.Duration
	}
	setString(&cfg.CASBackend, jc.CASBackend)
	setString(&cfg.LocalCASDir, jc.LocalCASDir)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	if jc.MaxMessageBytes != nil {
		cfg.MaxMessageBytes = *jc.MaxMessageBytes
	}
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.OTelEndpoint, jc.OTelEndpoint)
	return nil
}
