package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/adboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the Config untouched.
type JsonConfig struct {
	ServerAddr *string         `json:"server_addr"`
	Timeout    *timex.Duration `json:"timeout"`
}

// LoadJSON overlays cfg with values from the JSON file at path.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerAddr != nil {
		cfg.ServerAddr = *jc.ServerAddr
	}
	if jc.Timeout != nil {
		cfg.Timeout = jc.Timeout.Duration
	}
	return nil
}
