package probe_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/upgradewatch/internal/application/port"
	"github.com/bnema/upgradewatch/internal/infrastructure/probe"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestExtractVersion(t *testing.T) {
	tests := map[string]string{
		"1.2.3\n":                    "1.2.3",
		"upgradewatch 12.0.742.91\n": "12.0.742.91",
		"\n\n  v2.0  \nextra\n":      "v2.0",
		"":                           "",
		"   \n\t\n":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, probe.ExtractVersion(in), "input %q", in)
	}
}

func TestExecReader_ReadsVersionFlagOutput(t *testing.T) {
	bin := writeScript(t, t.TempDir(), "app", `[ "$1" = "--product-version" ] || exit 3
echo "app 4.5.6"`)

	r := probe.NewExecReader(bin, "")
	got, err := r.ReadInstalled(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "4.5.6", got)
	assert.Equal(t, "exec", r.Name())
	assert.True(t, r.Eligible(context.Background()))
}

func TestExecReader_CustomFlag(t *testing.T) {
	bin := writeScript(t, t.TempDir(), "app", `[ "$1" = "--version" ] && echo 9.9`)

	got, err := probe.NewExecReader(bin, "--version").ReadInstalled(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "9.9", got)
}

func TestExecReader_Failures(t *testing.T) {
	dir := t.TempDir()

	t.Run("non-zero exit", func(t *testing.T) {
		bin := writeScript(t, dir, "fails", "echo boom >&2; exit 1")
		_, err := probe.NewExecReader(bin, "").ReadInstalled(context.Background())
		assert.Error(t, err)
	})

	t.Run("empty output", func(t *testing.T) {
		bin := writeScript(t, dir, "silent", "exit 0")
		_, err := probe.NewExecReader(bin, "").ReadInstalled(context.Background())
		assert.ErrorIs(t, err, port.ErrInstalledVersionUnknown)
	})

	t.Run("missing binary", func(t *testing.T) {
		r := probe.NewExecReader(filepath.Join(dir, "nope"), "")
		_, err := r.ReadInstalled(context.Background())
		assert.Error(t, err)
		assert.False(t, r.Eligible(context.Background()))
	})

	t.Run("not executable", func(t *testing.T) {
		path := filepath.Join(dir, "plain")
		require.NoError(t, os.WriteFile(path, []byte("1.0"), 0o644))
		assert.False(t, probe.NewExecReader(path, "").Eligible(context.Background()))
	})
}

func TestExecReader_HonorsContextDeadline(t *testing.T) {
	bin := writeScript(t, t.TempDir(), "slow", "exec sleep 10")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := probe.NewExecReader(bin, "").ReadInstalled(ctx)
	assert.Error(t, err)
}

func TestFileReader(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{name: "plain", content: "3.1.4\n", want: "3.1.4"},
		{name: "json", content: `{"version": " 3.2.0 ", "channel": "beta"}`, want: "3.2.0"},
		{name: "json without version", content: `{"channel": "beta"}`, wantErr: port.ErrInstalledVersionUnknown},
		{name: "empty", content: "  \n", wantErr: port.ErrInstalledVersionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := probe.NewFileReader(path).ReadInstalled(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileReader_MissingAndMalformed(t *testing.T) {
	dir := t.TempDir()

	r := probe.NewFileReader(filepath.Join(dir, "version"))
	_, err := r.ReadInstalled(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.True(t, r.Eligible(context.Background()), "directory exists, file may come later")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version":`), 0o644))
	_, err = probe.NewFileReader(bad).ReadInstalled(context.Background())
	assert.Error(t, err)

	assert.False(t, probe.NewFileReader(filepath.Join(dir, "missing", "version")).Eligible(context.Background()))
}

func TestStagedReader(t *testing.T) {
	staging := filepath.Join(t.TempDir(), "pending-update")
	r := probe.NewStagedReader(staging, "app", "")
	assert.Equal(t, filepath.Join(staging, "app"), r.StagedPath())

	_, err := r.ReadInstalled(context.Background())
	assert.True(t, errors.Is(err, probe.ErrNotApplicable))
	assert.False(t, r.HasStagedUpdate())

	require.NoError(t, os.MkdirAll(staging, 0o755))
	writeScript(t, staging, "app", "echo 7.0.1")

	assert.True(t, r.HasStagedUpdate())
	got, err := r.ReadInstalled(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7.0.1", got)
}

func TestStagedReader_NonExecutableStagedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pending-update")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app"), []byte("partial download"), 0o644))

	_, err := probe.NewStagedReader(dir, "app", "").ReadInstalled(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, probe.ErrNotApplicable))
}
