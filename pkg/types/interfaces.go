package types

import "io/fs"

// FS abstracts filesystem operations for testing
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
}

// Pather provides the paths the installer operates on
type Pather interface {
	// Home returns the invoking user's home directory
	Home() string

	// BinDir returns the payload destination directory
	BinDir() string

	// StartupFile returns the shell startup file that receives the PATH entry
	StartupFile() string

	// SourceDir returns the directory payload sources are read from
	SourceDir() string
}
