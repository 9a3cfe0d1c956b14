package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"[database]", "[logging]", "[metrics]", "[notify]", "[probe]", "[update]"},
		sectionHeaders(string(content)))

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, "20m", decoded.Update.EscalationInterval)
	assert.Equal(t, ProbeKindExec, decoded.Probe.Kind)
	assert.Equal(t, "--product-version", decoded.Probe.VersionFlag)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[update]
channel = 'dev'

[probe]
kind = 'exec'

[logging]
level = 'debug'
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"[logging]", "[probe]", "[update]"}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n"))
	assert.Contains(t, result, "[update]\nchannel = 'dev'\n")
	assert.True(t, strings.HasSuffix(result, "channel = 'dev'\n"))
}
