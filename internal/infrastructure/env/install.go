// Package env inspects how the application was installed.
package env

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/logging"
)

// EnvChannel overrides the release channel for a single process.
const EnvChannel = "UPGRADEWATCH_CHANNEL"

// InstallKind describes who manages the installed binary.
type InstallKind string

const (
	InstallManual  InstallKind = "manual"
	InstallFlatpak InstallKind = "flatpak"
	InstallPacman  InstallKind = "pacman"
)

// Install describes the installed application.
type Install struct {
	Kind InstallKind
	// Executable is the resolved path of the running binary.
	Executable string
	// Package is the owning package name when a package manager owns the binary.
	Package string
}

// flatpakInfoPath is a var so tests can point it elsewhere.
var flatpakInfoPath = "/.flatpak-info"

// IsFlatpak returns true if the application is running inside a Flatpak sandbox.
// A Flatpak deploys upgrades into a new directory, so the sandbox keeps
// seeing the old files until restart.
func IsFlatpak() bool {
	_, err := os.Stat(flatpakInfoPath)
	return err == nil
}

// Executable returns the running binary with symlinks resolved.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks: %w", err)
	}
	return resolved, nil
}

// PacmanOwner returns the pacman package owning path, if any.
// `pacman -Qoq` prints only the package name and exits non-zero for
// unowned files.
func PacmanOwner(ctx context.Context, path string) (string, bool) {
	pacman, err := exec.LookPath("pacman")
	if err != nil {
		return "", false
	}
	out, err := exec.CommandContext(ctx, pacman, "-Qoq", path).Output()
	if err != nil {
		return "", false
	}
	pkg := strings.TrimSpace(string(out))
	return pkg, pkg != ""
}

// Detect inspects the running binary.
func Detect(ctx context.Context) Install {
	log := logging.FromContext(ctx)

	install := Install{Kind: InstallManual}
	if IsFlatpak() {
		install.Kind = InstallFlatpak
	}

	exe, err := Executable()
	if err != nil {
		log.Debug().Err(err).Msg("could not resolve executable")
		return install
	}
	install.Executable = exe

	if install.Kind == InstallManual {
		if pkg, ok := PacmanOwner(ctx, exe); ok {
			install.Kind = InstallPacman
			install.Package = pkg
		}
	}

	log.Debug().
		Str("kind", string(install.Kind)).
		Str("executable", install.Executable).
		Str("package", install.Package).
		Msg("detected install")
	return install
}

// ResolveChannel picks the release channel: an explicit configured value
// first, then the UPGRADEWATCH_CHANNEL environment variable, then the
// channel the binary was built for. A VCS package (name ending in -git)
// with no other hint is treated as dev.
func ResolveChannel(configured, built string, install Install) entity.Channel {
	if configured != "" {
		return entity.ParseChannel(configured)
	}
	if v := os.Getenv(EnvChannel); v != "" {
		return entity.ParseChannel(v)
	}
	if built != "" {
		return entity.ParseChannel(built)
	}
	if install.Kind == InstallPacman && strings.HasSuffix(install.Package, "-git") {
		return entity.ChannelDev
	}
	return entity.ChannelStable
}
