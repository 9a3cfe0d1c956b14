package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/logging"
)

// DefaultVersionFlag makes the installed binary print its version and exit.
const DefaultVersionFlag = "--product-version"

// ExecReader re-runs the installed binary with a version flag and parses
// its output. Because the path is resolved at each call, a binary replaced
// on disk reports the new version while this process keeps running the old
// one.
type ExecReader struct {
	binary string
	args   []string
}

// NewExecReader creates a reader for binary. An empty flag uses
// DefaultVersionFlag.
func NewExecReader(binary, flag string) *ExecReader {
	if flag == "" {
		flag = DefaultVersionFlag
	}
	return &ExecReader{binary: binary, args: []string{flag}}
}

// Name implements port.InstalledVersionReader.
func (*ExecReader) Name() string { return "exec" }

// Binary returns the path the reader executes.
func (r *ExecReader) Binary() string { return r.binary }

// ReadInstalled implements port.InstalledVersionReader.
func (r *ExecReader) ReadInstalled(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, r.args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Debug().
				Int("exit_code", exitErr.ExitCode()).
				Str("stderr", strings.TrimSpace(stderr.String())).
				Msg("version command failed")
		}
		return "", fmt.Errorf("run %s %s: %w", r.binary, strings.Join(r.args, " "), err)
	}

	version := ExtractVersion(string(out))
	if version == "" {
		return "", fmt.Errorf("%w: %s printed no version", port.ErrInstalledVersionUnknown, r.binary)
	}
	return version, nil
}

// Eligible reports whether the binary exists and is executable.
func (r *ExecReader) Eligible(ctx context.Context) bool {
	if err := unix.Access(r.binary, unix.X_OK); err != nil {
		logging.FromContext(ctx).Debug().
			Str("path", r.binary).
			Err(err).
			Msg("installed binary not executable")
		return false
	}
	return true
}

// ExtractVersion takes the first non-empty line of a version command's
// output and returns its last word, so both "1.2.3" and "upgradewatch 1.2.3"
// yield "1.2.3".
func ExtractVersion(output string) string {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		return fields[len(fields)-1]
	}
	return ""
}
