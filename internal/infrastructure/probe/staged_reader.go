package probe

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bnema/upgradewatch/internal/logging"
)

// execBit is the owner execute permission.
const execBit = 0o100

// StagedReader reports the version of a binary staged for install on next
// start. A staged binary means the installed version is already newer than
// what runs, even though the binary in place has not been swapped yet.
type StagedReader struct {
	dir    string
	binary string
	flag   string
}

// NewStagedReader creates a reader for <stagingDir>/<binaryName>.
func NewStagedReader(stagingDir, binaryName, flag string) *StagedReader {
	return &StagedReader{
		dir:    stagingDir,
		binary: binaryName,
		flag:   flag,
	}
}

// Name implements port.InstalledVersionReader.
func (*StagedReader) Name() string { return "staged" }

// StagedPath returns the staged binary's path.
func (r *StagedReader) StagedPath() string {
	return filepath.Join(r.dir, r.binary)
}

// HasStagedUpdate checks for a regular, executable staged binary.
func (r *StagedReader) HasStagedUpdate() bool {
	info, err := os.Stat(r.StagedPath())
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&execBit != 0
}

// ReadInstalled implements port.InstalledVersionReader. Without a staged
// binary it returns ErrNotApplicable.
func (r *StagedReader) ReadInstalled(ctx context.Context) (string, error) {
	path := r.StagedPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotApplicable
	}
	if !r.HasStagedUpdate() {
		return "", fmt.Errorf("staged file %s is not an executable", path)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Msg("found staged update")
	return NewExecReader(path, r.flag).ReadInstalled(ctx)
}
