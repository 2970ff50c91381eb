// Package settings holds the immutable runtime parameters of gtl. A Settings
// value is built once at startup and shared by pointer; nothing mutates it
// afterwards.
package settings

import (
	"strings"
	"time"
)

const (
	// DefaultConfigPath is where the path to remotes mapping lives.
	DefaultConfigPath = "/home/.git_helper/config.json"

	defaultMaxRetries = 6
	defaultRetryDelay = 2 * time.Second

	envConfig = "GTL_CONFIG"
	envDebug  = "GTL_DEBUG"
)

// Settings 运行时参数
type Settings struct {
	Name          string
	Version       string
	ConfigPath    string
	VCSBinary     string
	PublishBinary string
	PublishArgs   []string
	ManifestFile  string
	MaxRetries    int
	RetryDelay    time.Duration
	Debug         bool
}

// Default returns the built-in settings for the given program name and version.
func Default(name, version string) *Settings {
	return &Settings{
		Name:          name,
		Version:       version,
		ConfigPath:    DefaultConfigPath,
		VCSBinary:     "git",
		PublishBinary: "cargo",
		PublishArgs:   []string{"publish", "--allow-dirty"},
		ManifestFile:  "Cargo.toml",
		MaxRetries:    defaultMaxRetries,
		RetryDelay:    defaultRetryDelay,
	}
}

// FromEnv returns a copy of base with environment overrides applied.
func FromEnv(base *Settings, getenv func(string) string) *Settings {
	s := *base
	s.PublishArgs = append([]string(nil), base.PublishArgs...)

	if p := strings.TrimSpace(getenv(envConfig)); p != "" {
		s.ConfigPath = p
	}
	switch strings.ToLower(strings.TrimSpace(getenv(envDebug))) {
	case "1", "true", "yes":
		s.Debug = true
	}
	return &s
}
