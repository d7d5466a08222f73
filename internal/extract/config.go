package extract

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Conf is the optional extractor configuration file: repositories to
// scan on top of the planemo-monitor lists, and Galaxy servers to check
// on top of the defaults.
type Conf struct {
	ExtraRepositories []string          `yaml:"extra_repositories"`
	GalaxyServers     map[string]string `yaml:"galaxy_servers"`
}

// LoadConf reads a YAML conf file. An empty path or a missing file
// yields an empty Conf (the file is optional).
func LoadConf(path string) (*Conf, error) {
	if path == "" {
		return &Conf{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Conf{}, nil
		}
		return nil, fmt.Errorf("extract: read conf %q: %w", path, err)
	}
	var c Conf
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("extract: parse conf %q: %w", path, err)
	}
	return &c, nil
}
