package errors

import (
	"os"
	"runtime"
)

// Color 终端颜色
type Color int

const (
	ColorReset Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorBoldRed
	ColorBoldWhite
)

// ANSI 颜色代码
var ansiCodes = map[Color]string{
	ColorReset:     "\033[0m",
	ColorRed:       "\033[31m",
	ColorYellow:    "\033[33m",
	ColorCyan:      "\033[36m",
	ColorBoldRed:   "\033[1;31m",
	ColorBoldWhite: "\033[1;37m",
}

// colorsEnabled 是否启用颜色
var colorsEnabled = detectColorSupport()

// detectColorSupport 检测终端是否支持颜色
func detectColorSupport() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if runtime.GOOS == "windows" {
		// Windows 10 1511+ 支持 ANSI，以 TERM 变量为准
		term := os.Getenv("TERM")
		return term != "" && term != "dumb"
	}
	return os.Getenv("TERM") != "dumb"
}

// colorize 给文本着色（颜色关闭时原样返回）
func colorize(text string, c Color) string {
	if !colorsEnabled {
		return text
	}
	return ansiCodes[c] + text + ansiCodes[ColorReset]
}
