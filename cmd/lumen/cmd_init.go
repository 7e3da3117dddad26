package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumenlang/lumen/internal/i18n"
	"github.com/lumenlang/lumen/internal/project"
)

// cmdInit 在当前目录初始化项目配置
func cmdInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	name := fs.String("name", "", "project name")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// 已有配置文件时拒绝覆盖
	configPath := filepath.Join(dir, project.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintln(os.Stderr, i18n.T(i18n.CliErrConfigDup, project.ConfigFileName))
		os.Exit(1)
	}

	config := project.GenerateDefault(dir)
	if *name != "" {
		config.Project.Name = *name
	}

	fmt.Println(i18n.T(i18n.CliInitCreating, project.ConfigFileName))
	if err := config.Save(configPath); err != nil {
		fmt.Fprintln(os.Stderr, i18n.T(i18n.CliErrConfig, err))
		os.Exit(1)
	}

	// 入口文件不存在时写一个最小模板
	entryPath := filepath.Join(dir, config.Project.Entry)
	if _, err := os.Stat(entryPath); os.IsNotExist(err) {
		fmt.Println(i18n.T(i18n.CliInitCreating, config.Project.Entry))
		content := fmt.Sprintf("// %s\nvar greeting = \"Hello, Lumen!\";\n", config.Project.Name)
		if err := os.WriteFile(entryPath, []byte(content), 0644); err != nil {
			fmt.Fprintln(os.Stderr, i18n.T(i18n.CliErrConfig, err))
			os.Exit(1)
		}
	}

	fmt.Println()
	fmt.Println(i18n.T(i18n.CliInitSuccess, config.Project.Name))
}
