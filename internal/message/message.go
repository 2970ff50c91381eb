// Package message builds the commit messages gtl uses when the user does not
// type one.
package message

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// TimestampLayout formats the fallback commit message timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrNoVersion is returned when a manifest parses but carries no version.
var ErrNoVersion = fmt.Errorf("manifest has no version field")

// cargoManifest Cargo.toml 中只关心 package.version
type cargoManifest struct {
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
}

// flatManifest package.json / pubspec.yaml 顶层 version 字段
type flatManifest struct {
	Version string `json:"version" yaml:"version"`
}

// ManifestVersion reads the version field from the manifest at path. The
// format follows the extension: .toml reads package.version, .json and
// .yaml/.yml read a top-level version.
func ManifestVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var version string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var m cargoManifest
		if err := toml.Unmarshal(data, &m); err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		version = m.Package.Version
	case ".json":
		var m flatManifest
		if err := json.Unmarshal(data, &m); err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		version = m.Version
	case ".yaml", ".yml":
		var m flatManifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		version = m.Version
	default:
		return "", fmt.Errorf("unsupported manifest %s", path)
	}

	version = strings.TrimSpace(version)
	if version == "" {
		return "", ErrNoVersion
	}
	return version, nil
}

// Auto returns "feat: v<version>" when the manifest at path yields a version
// and "feat: <local timestamp>" otherwise. Manifest problems are never errors.
func Auto(manifestPath string, now func() time.Time) string {
	if version, err := ManifestVersion(manifestPath); err == nil {
		return "feat: v" + version
	}
	if now == nil {
		now = time.Now
	}
	return "feat: " + now().Local().Format(TimestampLayout)
}

// Resolve trims input and falls back to auto when nothing is left.
func Resolve(input string, auto func() string) string {
	if msg := strings.TrimSpace(input); msg != "" {
		return msg
	}
	return auto()
}
