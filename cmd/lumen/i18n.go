package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/lumenlang/lumen/internal/i18n"
)

// initLanguage 初始化语言设置
// 优先级: 命令行参数 > 环境变量 LUMEN_LANG > 操作系统语言 > 默认英文
func initLanguage(langOverride string) {
	// 1. 命令行参数优先
	if langOverride != "" {
		i18n.SetLanguageFromString(strings.ToLower(strings.TrimSpace(langOverride)))
		return
	}

	// 2. 检查环境变量
	if envLang := os.Getenv("LUMEN_LANG"); envLang != "" {
		i18n.SetLanguageFromString(strings.ToLower(strings.TrimSpace(envLang)))
		return
	}

	// 3. 检测操作系统语言
	if detectChineseOS() {
		i18n.SetLanguage(i18n.LangChinese)
		return
	}

	// 4. 默认英文
	i18n.SetLanguage(i18n.LangEnglish)
}

// detectChineseOS 检测操作系统是否为中文环境
func detectChineseOS() bool {
	// Windows 使用 API 检测
	if runtime.GOOS == "windows" {
		// 优先使用 Windows API
		if detectWindowsChinese() {
			return true
		}
		// 备用：检查 locale 名称
		locale := getWindowsLocale()
		if strings.HasPrefix(strings.ToLower(locale), "zh") {
			return true
		}
	}

	// Unix/Linux/Mac: 检查环境变量
	langVars := []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}
	for _, v := range langVars {
		if val := os.Getenv(v); val != "" {
			lower := strings.ToLower(val)
			if strings.Contains(lower, "zh") ||
				strings.Contains(lower, "chinese") {
				return true
			}
		}
	}

	return false
}
