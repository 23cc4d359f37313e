// Package manifest defines the fixed set of payloads the installer places.
// The canonical manifest is embedded at build time; a different file can be
// loaded for testing. Manifest order is install order.
package manifest

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/merkabah-engine/merkabah-install/pkg/errors"
	"github.com/merkabah-engine/merkabah-install/pkg/types"
)

//go:embed payloads.yaml
var embeddedManifest []byte

// PayloadSpec describes one payload: where its bytes come from and the
// command name it is installed under
type PayloadSpec struct {
	Source  string `yaml:"source"`
	Command string `yaml:"command"`
	Summary string `yaml:"summary"`
	Usage   string `yaml:"usage"`
}

// Manifest is the ordered set of payloads to install
type Manifest struct {
	Payloads []PayloadSpec `yaml:"payloads"`
}

// Default parses the embedded manifest
func Default() (*Manifest, error) {
	return parse(embeddedManifest)
}

// Load parses a manifest from a file, for test and development overrides
func Load(fs types.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read manifest %s", path)
	}
	return parse(data)
}

func parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid manifest")
	}
	if len(m.Payloads) == 0 {
		return nil, errors.New(errors.ErrManifestEmpty, "manifest lists no payloads")
	}
	for _, spec := range m.Payloads {
		if spec.Source == "" || spec.Command == "" {
			return nil, errors.Newf(errors.ErrManifestParse,
				"payload entry missing source or command: %+v", spec)
		}
	}
	return &m, nil
}

// Commands returns the installed command names in manifest order
func (m *Manifest) Commands() []string {
	names := make([]string, 0, len(m.Payloads))
	for _, spec := range m.Payloads {
		names = append(names, spec.Command)
	}
	return names
}
