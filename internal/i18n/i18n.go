package i18n

import (
	"fmt"
	"sync"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

// ============================================================================
// 消息 ID
// ============================================================================
//
// 所有面向用户的文本都通过消息 ID 间接引用，
// 扫描器等内部模块只产出 ID，不产出文本。
//
// ============================================================================

const (
	// ========== 词法分析器 ==========
	ErrUnterminatedString   = "lex.unterminated_string"
	ErrUnterminatedTemplate = "lex.unterminated_template"
	ErrUnterminatedComment  = "lex.unterminated_comment"
	ErrUnterminatedRegExp   = "lex.unterminated_regexp"
	ErrInvalidEscape        = "lex.invalid_escape"
	ErrInvalidHexEscape     = "lex.invalid_hex_escape"
	ErrInvalidUnicodeEscape = "lex.invalid_unicode_escape"
	ErrUndefinedCodePoint   = "lex.undefined_code_point"
	ErrMalformedNumber      = "lex.malformed_number"
	ErrLegacyOctal          = "lex.legacy_octal"
	ErrMalformedRegExpFlags = "lex.malformed_regexp_flags"
	ErrIllegalCharacter     = "lex.illegal_character"
	ErrHtmlComment          = "lex.html_comment"

	// ========== 命令行 ==========
	CliVersionTitle  = "cli.version_title"
	CliHelpUsage     = "cli.help_usage"
	CliHelpCommands  = "cli.help_commands"
	CliHelpOptions   = "cli.help_options"
	CliHelpExamples  = "cli.help_examples"
	CliCmdTokens     = "cli.cmd_tokens"
	CliCmdCheck      = "cli.cmd_check"
	CliCmdVersion    = "cli.cmd_version"
	CliCmdHelp       = "cli.cmd_help"
	CliOptLang       = "cli.opt_lang"
	CliErrNoInput    = "cli.err_no_input"
	CliErrReadFile   = "cli.err_read_file"
	CliErrUnknownCmd = "cli.err_unknown_cmd"
	CliCheckOK       = "cli.check_ok"
	CliCheckFailed   = "cli.check_failed"
	CliCmdInit       = "cli.cmd_init"
	CliInitCreating  = "cli.init_creating"
	CliInitSuccess   = "cli.init_success"
	CliErrConfig     = "cli.err_config"
	CliErrConfigDup  = "cli.err_config_dup"
)

// 全局语言设置
var (
	currentLang Language = LangEnglish
	mu          sync.RWMutex
)

// SetLanguage 设置当前语言
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	currentLang = lang
}

// SetLanguageFromString 从字符串设置语言
func SetLanguageFromString(lang string) {
	switch lang {
	case "zh", "zh-cn", "zh-tw", "zh-hk", "chinese":
		SetLanguage(LangChinese)
	default:
		SetLanguage(LangEnglish)
	}
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T 翻译消息（支持格式化参数）
func T(msgID string, args ...interface{}) string {
	mu.RLock()
	lang := currentLang
	mu.RUnlock()

	var messages map[string]string
	switch lang {
	case LangChinese:
		messages = messagesZH
	default:
		messages = messagesEN
	}

	if msg, ok := messages[msgID]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...)
		}
		return msg
	}

	// 回退到英文
	if msg, ok := messagesEN[msgID]; ok {
		if len(args) > 0 {
			return fmt.Sprintf(msg, args...)
		}
		return msg
	}

	// 找不到翻译则返回原始 ID
	return msgID
}
