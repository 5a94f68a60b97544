package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileDefaults mirrors the flag set; loaded from --config before flags are
// applied, so flags always win over the file.
type fileDefaults struct {
	Level      string `yaml:"level"`
	Version    int    `yaml:"version"`
	Mode       string `yaml:"mode"`
	Mask       *int   `yaml:"mask"`
	Encoding   string `yaml:"encoding"`
	ECI        int    `yaml:"eci"`
	Micro      bool   `yaml:"micro"`
	BoostError bool   `yaml:"boost_error"`
}

func loadFileDefaults(path string) (fileDefaults, error) {
	var d fileDefaults
	data, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, err
	}
	return d, nil
}
