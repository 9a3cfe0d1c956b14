package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/upgradewatch/internal/application/port"
)

// manifest is the JSON form of a version file.
type manifest struct {
	Version string `json:"version"`
}

// FileReader reads the installed version from a manifest written by the
// installer. The file holds either a bare version string or a JSON object
// with a "version" key.
type FileReader struct {
	path string
}

// NewFileReader creates a reader for path.
func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

// Name implements port.InstalledVersionReader.
func (*FileReader) Name() string { return "file" }

// ReadInstalled implements port.InstalledVersionReader.
func (r *FileReader) ReadInstalled(_ context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}

	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte("{")) {
		var m manifest
		if err := json.Unmarshal(data, &m); err != nil {
			return "", fmt.Errorf("decode manifest %s: %w", r.path, err)
		}
		if v := strings.TrimSpace(m.Version); v != "" {
			return v, nil
		}
		return "", fmt.Errorf("%w: %s has no version key", port.ErrInstalledVersionUnknown, r.path)
	}

	if v := ExtractVersion(string(data)); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s is empty", port.ErrInstalledVersionUnknown, r.path)
}

// Eligible reports whether the manifest's directory exists. A missing file
// is tolerated since installers may write it later.
func (r *FileReader) Eligible(context.Context) bool {
	info, err := os.Stat(filepath.Dir(r.path))
	return err == nil && info.IsDir()
}
