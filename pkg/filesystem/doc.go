// Package filesystem provides implementations of the types.FS interface.
// The OS implementation is used in production; the afero implementation
// backs tests with an in-memory filesystem.
package filesystem
