// Package shell owns the PATH entry written into the user's shell startup
// file and the idempotent append that places it there.
package shell

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/merkabah-engine/merkabah-install/pkg/errors"
	"github.com/merkabah-engine/merkabah-install/pkg/logging"
	"github.com/merkabah-engine/merkabah-install/pkg/types"
)

// PathEntryLine is the literal line appended to the startup file. Matching
// is byte-exact: a line differing in quoting or whitespace is treated as a
// different entry and will not suppress the append.
const PathEntryLine = "export PATH=$HOME/bin:$PATH"

// ContainsEntry reports whether content holds entryLine as an exact line.
// This is a textual membership test, not a semantic PATH parse.
func ContainsEntry(content, entryLine string) bool {
	for _, line := range strings.Split(content, "\n") {
		if line == entryLine {
			return true
		}
	}
	return false
}

// EnsurePathEntry appends entryLine to configFile unless the exact line is
// already present. A missing file reads as empty content and is created.
// Returns true when the file was modified.
func EnsurePathEntry(filesystem types.FS, configFile, entryLine string) (bool, error) {
	logger := logging.GetLogger("shell")

	content := ""
	if _, err := filesystem.Stat(configFile); err == nil {
		data, err := filesystem.ReadFile(configFile)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrFileRead,
				"cannot read startup file %s", configFile)
		}
		content = string(data)
	}

	if ContainsEntry(content, entryLine) {
		logger.Debug().
			Str("file", configFile).
			Str("entry", entryLine).
			Msg("PATH entry already present, skipping")
		return false, nil
	}

	updated := content
	if updated != "" && !strings.HasSuffix(updated, "\n") {
		updated += "\n"
	}
	updated += entryLine + "\n"

	if err := filesystem.WriteFile(configFile, []byte(updated), fs.FileMode(0644)); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileWrite,
			"cannot write startup file %s", configFile)
	}

	logger.Info().
		Str("file", configFile).
		Str("entry", entryLine).
		Msg("Appended PATH entry")
	return true, nil
}

// ActivationHint tells the user how to pick up the new PATH without
// restarting their shell
func ActivationHint(startupFile string) string {
	return fmt.Sprintf("Restart your shell or run: source %s", startupFile)
}
