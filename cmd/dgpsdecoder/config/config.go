// Package config reads the optional JSON config file for the dgpsdecoder
// command: operational knobs that sit outside the two positional arguments
// (multicast group and port) fixed by the protocol.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Config holds the dgpsdecoder command's optional operational settings.
// Any field absent from the JSON file keeps its Go zero value; the caller
// substitutes its own default in that case.
type Config struct {
	Debug        bool   `json:"debug"`
	RemoveOld    uint64 `json:"removeold"`
	LogDirectory string `json:"log_directory"`
}

// GetConfig reads and parses the named JSON config file. An empty file name
// is not an error: it yields a zero-value Config, so the caller falls back to
// built-in defaults. A named file that cannot be opened or parsed is
// reported as an error.
func GetConfig(configFile string) (*Config, error) {
	if configFile == "" {
		return &Config{}, nil
	}

	file, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open config file: %w", err)
	}
	defer file.Close()

	return getConfigFromReader(file)
}

func getConfigFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("not a valid config file: %w", err)
	}

	return &config, nil
}
