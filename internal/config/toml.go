package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(tomlFilePath, &fc); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fc.toStructured(), nil
}
