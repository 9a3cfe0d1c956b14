package main

import (
	"runtime"

	"github.com/bnema/upgradewatch/internal/cli/cmd"
	"github.com/bnema/upgradewatch/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
	// channel is empty for local builds so the channel is resolved at runtime.
	channel = ""
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Channel:   channel,
	})
	cmd.Execute()
}
