package i18n

var messagesZH = map[string]string{
	// ========== 词法分析器 ==========
	ErrUnterminatedString:   "未闭合的字符串字面量",
	ErrUnterminatedTemplate: "未闭合的模板字面量",
	ErrUnterminatedComment:  "未闭合的多行注释",
	ErrUnterminatedRegExp:   "未闭合的正则表达式字面量",
	ErrInvalidEscape:        "非法转义序列",
	ErrInvalidHexEscape:     "非法的十六进制转义序列",
	ErrInvalidUnicodeEscape: "非法的 Unicode 转义序列",
	ErrUndefinedCodePoint:   "未定义的 Unicode 码点",
	ErrMalformedNumber:      "畸形的数字字面量",
	ErrLegacyOctal:          "严格模式下不允许八进制字面量",
	ErrMalformedRegExpFlags: "非法的正则表达式标志",
	ErrIllegalCharacter:     "非法字符",
	ErrHtmlComment:          "HTML 风格注释不是标准语法",

	// ========== 命令行 ==========
	CliVersionTitle:  "Lumen 扫描器 v%s",
	CliHelpUsage:     "用法:",
	CliHelpCommands:  "命令:",
	CliHelpOptions:   "选项:",
	CliHelpExamples:  "示例:",
	CliCmdTokens:     "打印源文件的 Token 流",
	CliCmdCheck:      "扫描源文件并报告词法错误",
	CliCmdVersion:    "显示版本信息",
	CliCmdHelp:       "显示帮助信息",
	CliOptLang:       "设置消息语言（en 或 zh）",
	CliErrNoInput:    "错误: 没有输入文件",
	CliErrReadFile:   "错误: 无法读取 %s: %v",
	CliErrUnknownCmd: "错误: 未知命令 '%s'",
	CliCheckOK:       "%s: 没有词法错误",
	CliCheckFailed:   "%s: 发现词法错误",
	CliCmdInit:       "在当前目录创建 lumen.toml",
	CliInitCreating:  "正在创建 %s",
	CliInitSuccess:   "项目 '%s' 初始化完成",
	CliErrConfig:     "错误: 无法写入配置文件: %v",
	CliErrConfigDup:  "错误: %s 已存在",
}
