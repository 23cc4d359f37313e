// Package paths provides centralized path handling for merkabah-install.
// All destination paths derive from the invoking user's home directory;
// tool-internal paths (config, log file) follow the XDG Base Directory spec.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/merkabah-engine/merkabah-install/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// BinDirName is the destination directory name under the home directory
	BinDirName = "bin"

	// StartupFileName is the shell startup file that receives the PATH entry
	StartupFileName = ".bashrc"

	// AppDirName is the directory name for tool-internal files
	AppDirName = "merkabah-install"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"
)

// Options override the derived defaults. Empty fields keep the default.
type Options struct {
	BinDir      string
	StartupFile string
	SourceDir   string
}

// Paths resolves every location the installer touches
type Paths struct {
	home        string
	binDir      string
	startupFile string
	sourceDir   string
}

// New resolves the user's home directory and derives all install paths.
// $HOME takes precedence so tests can relocate the whole environment.
func New(opts Options) (*Paths, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		var err error
		home, err = homedir.Dir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrHomeResolve, "cannot determine home directory")
		}
	}

	p := &Paths{
		home:        home,
		binDir:      opts.BinDir,
		startupFile: opts.StartupFile,
		sourceDir:   opts.SourceDir,
	}

	if p.binDir == "" {
		p.binDir = filepath.Join(home, BinDirName)
	}
	if p.startupFile == "" {
		p.startupFile = filepath.Join(home, StartupFileName)
	}
	if p.sourceDir == "" {
		p.sourceDir = defaultSourceDir()
	}

	return p, nil
}

// Home returns the invoking user's home directory
func (p *Paths) Home() string {
	return p.home
}

// BinDir returns the payload destination directory
func (p *Paths) BinDir() string {
	return p.binDir
}

// StartupFile returns the shell startup file that receives the PATH entry
func (p *Paths) StartupFile() string {
	return p.startupFile
}

// SourceDir returns the directory payload sources are read from
func (p *Paths) SourceDir() string {
	return p.sourceDir
}

// DefaultConfigFile returns the user configuration file location
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// defaultSourceDir prefers the directory containing the running executable,
// matching the distribution layout where payloads sit next to the installer.
// Falls back to the current working directory.
func defaultSourceDir() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
