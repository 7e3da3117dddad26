package main

import (
	"os"
	"path/filepath"

	"github.com/lumenlang/lumen/internal/project"
	"github.com/lumenlang/lumen/internal/scanner"
)

// scannerOptionsFor 从源文件所在目录向上找 lumen.toml 取语言开关
func scannerOptionsFor(path string) (scanner.Options, *project.Config) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	configPath := project.FindConfigFile(filepath.Dir(abs))
	if configPath == "" {
		cfg := project.GenerateDefault(filepath.Dir(abs))
		return cfg.ScannerOptions(), cfg
	}
	cfg, err := project.LoadConfig(configPath)
	if err != nil {
		cfg = project.GenerateDefault(filepath.Dir(abs))
	}
	return cfg.ScannerOptions(), cfg
}

// readSource 读取源文件
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
