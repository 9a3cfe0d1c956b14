package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/cli/styles"
	"github.com/bnema/upgradewatch/internal/infrastructure/probe"
	"github.com/bnema/upgradewatch/internal/logging"
)

func TestCheckPlain(t *testing.T) {
	ctx := logging.WithContext(context.Background(), zerolog.Nop())

	tests := []struct {
		name      string
		installed string
		want      string
	}{
		{name: "up to date", installed: `{"version":"2.0.0"}`, want: "Running the installed version"},
		{name: "newer installed", installed: "2.1.0", want: "Upgrade installed: 2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifest := filepath.Join(t.TempDir(), "version")
			require.NoError(t, os.WriteFile(manifest, []byte(tt.installed), 0o600))
			p := probe.New("2.0.0", []port.InstalledVersionReader{probe.NewFileReader(manifest)})

			var out bytes.Buffer
			require.NoError(t, checkPlain(ctx, &out, styles.NewTheme(), p))

			assert.Contains(t, out.String(), tt.want)
			assert.Contains(t, out.String(), "2.0.0")
		})
	}
}

func TestIsInteractive_RedirectedStdin(t *testing.T) {
	devnull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer devnull.Close()

	stdin := os.Stdin
	os.Stdin = devnull
	defer func() { os.Stdin = stdin }()

	assert.False(t, isInteractive())
}
