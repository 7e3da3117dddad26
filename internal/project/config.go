// Package project 实现 Lumen 项目配置相关功能
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/lumenlang/lumen/internal/scanner"
)

// 常量定义
const (
	ConfigFileName = "lumen.toml" // 配置文件名
)

// Config 项目配置
type Config struct {
	Project  ProjectInfo  `toml:"project"`
	Language LanguageInfo `toml:"language"`
}

// ProjectInfo 项目信息
type ProjectInfo struct {
	// Name 项目名（建议使用小写连字符格式，如 my-app）
	Name string `toml:"name"`

	// Version 版本号（遵循语义化版本，如 1.0.0）
	Version string `toml:"version"`

	// Entry 入口文件（相对项目根目录）
	Entry string `toml:"entry"`
}

// LanguageInfo 语言开关
type LanguageInfo struct {
	// ExponentiationOperator 启用 ** 与 **= 运算符
	ExponentiationOperator bool `toml:"exponentiation_operator"`

	// StrictOctal 拒绝遗留八进制写法（0777 和 \101 转义）
	StrictOctal bool `toml:"strict_octal"`

	// WarnHtmlComments 对 <!-- / --> 风格注释给出告警
	WarnHtmlComments bool `toml:"warn_html_comments"`
}

// ScannerOptions 把语言开关转换为扫描器选项
func (c *Config) ScannerOptions() scanner.Options {
	return scanner.Options{
		AllowExponentiationOperator: c.Language.ExponentiationOperator,
	}
}

// LoadConfig 从文件加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := GenerateDefault(filepath.Dir(path))
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save 保存配置到文件
func (c *Config) Save(path string) error {
	content := generateConfigWithComments(c)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateConfigWithComments 生成带注释的配置文件内容
func generateConfigWithComments(c *Config) string {
	var sb strings.Builder

	sb.WriteString("[project]\n")
	sb.WriteString("# 项目名\n")
	sb.WriteString(fmt.Sprintf("name = %q\n\n", c.Project.Name))
	sb.WriteString("# 版本号（遵循语义化版本）\n")
	sb.WriteString(fmt.Sprintf("version = %q\n\n", c.Project.Version))
	sb.WriteString("# 入口文件\n")
	sb.WriteString(fmt.Sprintf("entry = %q\n\n", c.Project.Entry))

	sb.WriteString("[language]\n")
	sb.WriteString("# 启用 ** 幂运算符\n")
	sb.WriteString(fmt.Sprintf("exponentiation_operator = %v\n\n", c.Language.ExponentiationOperator))
	sb.WriteString("# 拒绝遗留八进制写法\n")
	sb.WriteString(fmt.Sprintf("strict_octal = %v\n\n", c.Language.StrictOctal))
	sb.WriteString("# 对 HTML 风格注释告警\n")
	sb.WriteString(fmt.Sprintf("warn_html_comments = %v\n", c.Language.WarnHtmlComments))

	return sb.String()
}

// GenerateDefault 生成默认配置
// dir 是项目目录路径，用于生成默认的项目名
func GenerateDefault(dir string) *Config {
	baseName := filepath.Base(dir)
	if baseName == "" || baseName == "." || baseName == "/" {
		baseName = "my-app"
	}

	return &Config{
		Project: ProjectInfo{
			Name:    sanitizeName(baseName),
			Version: "0.1.0",
			Entry:   "main.lum",
		},
		Language: LanguageInfo{
			ExponentiationOperator: true,
			StrictOctal:            false,
			WarnHtmlComments:       false,
		},
	}
}

// sanitizeName 清理项目名
func sanitizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")

	var result strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '.' {
			result.WriteRune(r)
		}
	}

	s := result.String()
	if s == "" {
		return "my-app"
	}
	return s
}

// FindConfigFile 从指定路径向上查找配置文件
// 返回配置文件的完整路径，如果找不到则返回空字符串
func FindConfigFile(startPath string) string {
	info, err := os.Stat(startPath)
	if err != nil {
		return ""
	}

	var dir string
	if info.IsDir() {
		dir = startPath
	} else {
		dir = filepath.Dir(startPath)
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// GetProjectRoot 获取项目根目录（配置文件所在目录）
func GetProjectRoot(startPath string) string {
	configPath := FindConfigFile(startPath)
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}
