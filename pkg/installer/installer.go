// Package installer implements the install sequence: ensure the bin
// directory, place each payload in manifest order, ensure the PATH entry.
// Every step is idempotent and the sequence is fail-fast: the first error
// aborts the run and earlier effects stay on disk. Re-running after fixing
// the cause is the recovery path.
package installer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/merkabah-engine/merkabah-install/pkg/errors"
	"github.com/merkabah-engine/merkabah-install/pkg/logging"
	"github.com/merkabah-engine/merkabah-install/pkg/manifest"
	"github.com/merkabah-engine/merkabah-install/pkg/shell"
	"github.com/merkabah-engine/merkabah-install/pkg/types"
)

// File modes for installed artifacts
const (
	dirMode     = fs.FileMode(0755)
	payloadMode = fs.FileMode(0755)
)

// Installer performs the fixed install sequence
type Installer struct {
	fs       types.FS
	paths    types.Pather
	manifest *manifest.Manifest
}

// New creates an Installer operating on the given filesystem and paths
func New(filesystem types.FS, paths types.Pather, m *manifest.Manifest) *Installer {
	return &Installer{
		fs:       filesystem,
		paths:    paths,
		manifest: m,
	}
}

// EnsureDirectory creates path and any missing parents. Succeeds silently
// when the directory already exists; fails when the path is occupied by a
// non-directory.
func (i *Installer) EnsureDirectory(path string) error {
	if info, err := i.fs.Stat(path); err == nil {
		if !info.IsDir() {
			return errors.Newf(errors.ErrDirCreate,
				"%s exists and is not a directory", path)
		}
		return nil
	}
	if err := i.fs.MkdirAll(path, dirMode); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create directory %s", path)
	}
	return nil
}

// InstallPayload copies the payload's bytes from the source directory to the
// bin directory under its command name, overwriting any existing file, then
// sets the executable bit
func (i *Installer) InstallPayload(spec manifest.PayloadSpec) error {
	logger := logging.GetLogger("installer")

	src := filepath.Join(i.paths.SourceDir(), spec.Source)
	dest := filepath.Join(i.paths.BinDir(), spec.Command)

	data, err := i.fs.ReadFile(src)
	if err != nil {
		code := errors.ErrFileRead
		if os.IsNotExist(err) {
			code = errors.ErrFileNotFound
		}
		return errors.Wrapf(err, code, "cannot read payload source %s", src).
			WithDetail("payload", spec.Command)
	}

	if err := i.fs.WriteFile(dest, data, payloadMode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dest).
			WithDetail("payload", spec.Command)
	}

	if err := i.fs.Chmod(dest, payloadMode); err != nil {
		return errors.Wrapf(err, errors.ErrPermission,
			"cannot set executable bit on %s", dest).
			WithDetail("payload", spec.Command)
	}

	logger.Info().
		Str("source", src).
		Str("dest", dest).
		Msg("Installed payload")
	return nil
}

// Run executes the full sequence and reports each completed operation.
// With dryRun set, nothing is written; operations describe what would happen.
func (i *Installer) Run(dryRun bool) (*types.RunResult, error) {
	logger := logging.GetLogger("installer")
	result := &types.RunResult{DryRun: dryRun}

	binDir := i.paths.BinDir()
	logger.Debug().
		Str("binDir", binDir).
		Str("sourceDir", i.paths.SourceDir()).
		Bool("dryRun", dryRun).
		Msg("Starting install run")

	// Step 1: destination directory
	op, err := i.runDirectoryStep(binDir, dryRun)
	if err != nil {
		return result, err
	}
	result.Operations = append(result.Operations, op)

	// Step 2: payloads, in manifest order, aborting on the first failure
	for _, spec := range i.manifest.Payloads {
		op, err := i.runPayloadStep(spec, dryRun)
		if err != nil {
			return result, err
		}
		result.Operations = append(result.Operations, op)
	}

	// Step 3: PATH entry
	op, err = i.runPathEntryStep(dryRun)
	if err != nil {
		return result, err
	}
	result.Operations = append(result.Operations, op)

	return result, nil
}

func (i *Installer) runDirectoryStep(binDir string, dryRun bool) (types.Operation, error) {
	op := types.Operation{
		Kind:   types.OperationDirCreate,
		Target: binDir,
	}

	exists := false
	if info, err := i.fs.Stat(binDir); err == nil && info.IsDir() {
		exists = true
	}

	if dryRun {
		if exists {
			op.Description = fmt.Sprintf("Directory %s already exists", binDir)
		} else {
			op.Description = fmt.Sprintf("Would create directory %s", binDir)
			op.Changed = true
		}
		return op, nil
	}

	if err := i.EnsureDirectory(binDir); err != nil {
		return op, err
	}
	if exists {
		op.Description = fmt.Sprintf("Directory %s already exists", binDir)
	} else {
		op.Description = fmt.Sprintf("Created directory %s", binDir)
		op.Changed = true
	}
	return op, nil
}

func (i *Installer) runPayloadStep(spec manifest.PayloadSpec, dryRun bool) (types.Operation, error) {
	dest := filepath.Join(i.paths.BinDir(), spec.Command)
	op := types.Operation{
		Kind:    types.OperationPayload,
		Target:  dest,
		Changed: true,
	}

	if dryRun {
		op.Description = fmt.Sprintf("Would install %s", spec.Command)
		return op, nil
	}

	if err := i.InstallPayload(spec); err != nil {
		return op, err
	}
	op.Description = fmt.Sprintf("Installed %s", spec.Command)
	return op, nil
}

func (i *Installer) runPathEntryStep(dryRun bool) (types.Operation, error) {
	startupFile := i.paths.StartupFile()
	op := types.Operation{
		Kind:   types.OperationPathEntry,
		Target: startupFile,
	}

	if dryRun {
		content := ""
		if data, err := i.fs.ReadFile(startupFile); err == nil {
			content = string(data)
		}
		if shell.ContainsEntry(content, shell.PathEntryLine) {
			op.Description = fmt.Sprintf("PATH entry already present in %s", startupFile)
		} else {
			op.Description = fmt.Sprintf("Would append PATH entry to %s", startupFile)
			op.Changed = true
		}
		return op, nil
	}

	changed, err := shell.EnsurePathEntry(i.fs, startupFile, shell.PathEntryLine)
	if err != nil {
		return op, err
	}
	op.Changed = changed
	if changed {
		op.Description = fmt.Sprintf("Appended PATH entry to %s", startupFile)
	} else {
		op.Description = fmt.Sprintf("PATH entry already present in %s", startupFile)
	}
	return op, nil
}
