// Package shed parses Galaxy ToolShed .shed.yml suite descriptors.
package shed

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// FileName is the descriptor file marking a suite root in a repository.
const FileName = ".shed.yml"

// Config is the parsed content of a .shed.yml file.
type Config struct {
	Name                string   `yaml:"name"`
	Owner               string   `yaml:"owner"`
	Description         string   `yaml:"description"`
	LongDescription     string   `yaml:"long_description"`
	HomepageURL         string   `yaml:"homepage_url"`
	RemoteRepositoryURL string   `yaml:"remote_repository_url"`
	Categories          []string `yaml:"categories"`
	Type                string   `yaml:"type"`
}

// Parse decodes .shed.yml bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("shed: parse: %w", err)
	}
	return &cfg, nil
}

// IsSuite reports whether the descriptor declares an installable tool
// suite rather than a datatype or repository-suite definition.
func (c *Config) IsSuite() bool {
	switch c.Type {
	case "", "unrestricted":
		return true
	}
	return false
}
