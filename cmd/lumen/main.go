package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lumenlang/lumen/internal/i18n"
)

const (
	Version = "0.1.0"

	// SourceFileExtension Lumen 源文件扩展名
	SourceFileExtension = ".lum"
)

// 全局语言参数
var globalLang string

func main() {
	// 预扫描全局参数 --lang 或 -lang
	args := preprocessArgs(os.Args[1:])

	// 初始化语言
	initLanguage(globalLang)

	if len(args) < 1 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]

	switch command {
	case "tokens":
		cmdTokens(args[1:])
	case "check":
		cmdCheck(args[1:])
	case "init":
		cmdInit(args[1:])
	case "version", "-v", "--version":
		cmdVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		// 兼容旧用法：直接检查文件
		if len(args) >= 1 && !isFlag(args[0]) && strings.HasSuffix(args[0], SourceFileExtension) {
			cmdCheck(args)
		} else {
			fmt.Fprint(os.Stderr, i18n.T(i18n.CliErrUnknownCmd, command)+"\n\n")
			printUsage()
			os.Exit(1)
		}
	}
}

// preprocessArgs 预处理参数，提取全局 --lang 参数
func preprocessArgs(args []string) []string {
	var result []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--lang" || arg == "-lang" {
			if i+1 < len(args) {
				globalLang = args[i+1]
				i++ // 跳过下一个参数
				continue
			}
		} else if strings.HasPrefix(arg, "--lang=") {
			globalLang = strings.TrimPrefix(arg, "--lang=")
			continue
		} else if strings.HasPrefix(arg, "-lang=") {
			globalLang = strings.TrimPrefix(arg, "-lang=")
			continue
		}
		result = append(result, arg)
	}
	return result
}

func isFlag(s string) bool {
	return len(s) > 0 && s[0] == '-'
}

func cmdVersion() {
	fmt.Println(i18n.T(i18n.CliVersionTitle, Version))
}

func printUsage() {
	fmt.Println(i18n.T(i18n.CliVersionTitle, Version))
	fmt.Println()
	fmt.Println(i18n.T(i18n.CliHelpUsage))
	fmt.Println("  lumen [--lang en|zh] <command> [arguments]")
	fmt.Println()
	fmt.Println(i18n.T(i18n.CliHelpCommands))
	fmt.Printf("  tokens <file>   %s\n", i18n.T(i18n.CliCmdTokens))
	fmt.Printf("  check <file>    %s\n", i18n.T(i18n.CliCmdCheck))
	fmt.Printf("  init            %s\n", i18n.T(i18n.CliCmdInit))
	fmt.Printf("  version         %s\n", i18n.T(i18n.CliCmdVersion))
	fmt.Printf("  help            %s\n", i18n.T(i18n.CliCmdHelp))
	fmt.Println()
	fmt.Println(i18n.T(i18n.CliHelpOptions))
	fmt.Printf("  --lang <en|zh>  %s\n", i18n.T(i18n.CliOptLang))
	fmt.Println()
	fmt.Println(i18n.T(i18n.CliHelpExamples))
	fmt.Printf("  lumen tokens main%s\n", SourceFileExtension)
	fmt.Printf("  lumen check main%s\n", SourceFileExtension)
	fmt.Printf("  lumen --lang zh help\n")
}
