package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
)

// ManifestEntry names one program file a manifest wants loaded, along with
// an optional display name used in "Loaded program" status lines.
type ManifestEntry struct {
	Path string `yaml:"path"`
	As   string `yaml:"as"`
}

// Manifest is a declarative roster of program files, letting a host load a
// whole course's category files from one YAML document instead of only
// positional CLI arguments.
type Manifest struct {
	Programs []ManifestEntry `yaml:"programs"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
