package config

// Remote 远程仓库配置
type Remote struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Config maps an absolute directory path to the remotes configured for it,
// in push order.
type Config map[string][]Remote

// Remotes returns the remotes configured for dir, or nil when dir has no
// entry. A missing entry is not an error.
func (c Config) Remotes(dir string) []Remote {
	return c[dir]
}

// Format 配置文件格式
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Manager 配置管理器接口
type Manager interface {
	// Load 加载配置文件，文件不存在时先写入空配置
	Load() (Config, error)

	// Save 保存配置文件（原子操作）
	Save(cfg Config) error

	// Path 返回配置文件路径
	Path() string
}
