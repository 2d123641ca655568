package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/furball-art/furball/internal/flagx"
	"github.com/furball-art/furball/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. Pointer fields tell
// an absent key apart from a zero value.
type JsonConfig struct {
	NodeAddr             *string         `json:"node_addr"`
	DBPath               *string         `json:"db_path"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	LogLevel             *string         `json:"log_level"`
	RecreateStaleProfile *bool           `json:"recreate_stale_profile"`
	OTelEndpoint         *string         `json:"otel_endpoint"`
	MaxMessageBytes      *int            `json:"max_message_bytes"`
}

// parseJSON overlays cfg with the file given by -c or -config, if any.
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

	if jc.NodeAddr != nil {
		cfg.NodeAddr = *jc.NodeAddr
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.RecreateStaleProfile != nil {
		cfg.RecreateStaleProfile = *jc.RecreateStaleProfile
	}
	if jc.OTelEndpoint != nil {
		cfg.OTelEndpoint = *jc.OTelEndpoint
	}
	if jc.MaxMessageBytes != nil {
		cfg.MaxMessageBytes = *jc.MaxMessageBytes
	}
	return nil
}
