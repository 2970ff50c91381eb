package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/penwyp/gtl/internal/errors"
	"gopkg.in/yaml.v3"
)

// configManager 配置文件管理器实现
type configManager struct {
	configPath string
	format     Format
	mu         sync.Mutex
}

// NewConfigManager 创建新的配置管理器，格式由扩展名决定
func NewConfigManager(configPath string) (Manager, error) {
	if configPath == "" {
		return nil, errors.New(errors.ErrTypeConfig, "config path cannot be empty")
	}

	return &configManager{
		configPath: configPath,
		format:     formatFor(configPath),
	}, nil
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Path 返回配置文件路径
func (m *configManager) Path() string {
	return m.configPath
}

// Load 加载配置文件
func (m *configManager) Load() (Config, error) {
	if _, err := os.Stat(m.configPath); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrTypeConfig, "unable to stat config file", err)
		}
		if err := m.Save(Config{}); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrTypeConfig, "unable to read config file", err)
	}

	cfg, err := m.decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrTypeConfig, "unable to parse config file", err).
			WithSuggestion("check " + m.configPath + " maps directory paths to [{\"name\": ..., \"url\": ...}]")
	}
	if cfg == nil {
		cfg = Config{}
	}
	return cfg, nil
}

// decode 按扩展名对应的格式严格解析；.json 只接受 JSON
func (m *configManager) decode(data []byte) (Config, error) {
	var cfg Config
	if m.format == FormatYAML {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (m *configManager) encode(cfg Config) ([]byte, error) {
	if m.format == FormatYAML {
		return yaml.Marshal(cfg)
	}
	return json.Marshal(cfg)
}

// Save 保存配置文件（原子操作）
func (m *configManager) Save(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		cfg = Config{}
	}
	data, err := m.encode(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "unable to serialize config", err)
	}

	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "unable to create config directory", err)
	}

	// 原子写入：先写入临时文件，然后重命名
	tmpFile := m.configPath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return errors.Wrap(errors.ErrTypeConfig, "unable to write config file", err)
	}
	if err := os.Rename(tmpFile, m.configPath); err != nil {
		_ = os.Remove(tmpFile)
		return errors.Wrap(errors.ErrTypeConfig, "unable to write config file", err)
	}

	return nil
}
