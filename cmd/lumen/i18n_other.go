//go:build !windows

package main

// 非 Windows 平台的占位实现，语言检测走环境变量

func detectWindowsChinese() bool {
	return false
}

func getWindowsLocale() string {
	return ""
}
