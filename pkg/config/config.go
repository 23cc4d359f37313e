// Package config loads the installer configuration by layering embedded
// defaults, the user's config file, and MERKABAH_INSTALL_* environment
// variables, in increasing precedence.
package config

import (
	_ "embed"
	"errors"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	installerrors "github.com/merkabah-engine/merkabah-install/pkg/errors"
)

//go:embed defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "MERKABAH_INSTALL_"

// envKeys maps environment variable suffixes to config keys. Unknown
// variables under the prefix are ignored.
var envKeys = map[string]string{
	"BIN_DIR":      "install.bin_dir",
	"STARTUP_FILE": "install.startup_file",
	"SOURCE_DIR":   "install.source_dir",
	"COLOR":        "output.color",
}

// Install holds the install target settings
type Install struct {
	// BinDir overrides the payload destination directory
	BinDir string `koanf:"bin_dir" toml:"bin_dir"`
	// StartupFile overrides the shell startup file receiving the PATH entry
	StartupFile string `koanf:"startup_file" toml:"startup_file"`
	// SourceDir overrides where payload sources are read from
	SourceDir string `koanf:"source_dir" toml:"source_dir"`
}

// Output holds terminal output settings
type Output struct {
	// Color is one of auto, always, never
	Color string `koanf:"color" toml:"color"`
}

// Config is the main configuration structure
type Config struct {
	Install Install `koanf:"install" toml:"install"`
	Output  Output  `koanf:"output" toml:"output"`
}

// rawBytesProvider implements a koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load layers defaults, the config file at configFile (skipped when absent),
// and environment variables, then unmarshals the result
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, installerrors.Wrap(err, installerrors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config file, if present
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, installerrors.Wrapf(err, installerrors.ErrConfigLoad,
					"failed to load config from %s", configFile)
			}
		}
	}

	// 3. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[trimPrefix(s)]
	}), nil)
	if err != nil {
		return nil, installerrors.Wrap(err, installerrors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, installerrors.Wrap(err, installerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// Default returns the built-in configuration without file or env layering
func Default() (*Config, error) {
	var cfg Config
	if err := gotoml.Unmarshal(defaultConfig, &cfg); err != nil {
		return nil, installerrors.Wrap(err, installerrors.ErrConfigParse, "invalid embedded defaults")
	}
	return &cfg, nil
}

// GenerateTOML renders cfg as a TOML document, used by gen-config
func GenerateTOML(cfg *Config) (string, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", installerrors.Wrap(err, installerrors.ErrInternal, "cannot marshal configuration")
	}
	return string(data), nil
}

func trimPrefix(s string) string {
	return s[len(EnvPrefix):]
}
