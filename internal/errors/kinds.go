// Package errors 提供 Lumen 语言的错误处理系统
package errors

import "github.com/lumenlang/lumen/internal/i18n"

// ============================================================================
// 错误级别
// ============================================================================

// Level 错误级别
type Level int

const (
	LevelError   Level = iota // 错误
	LevelWarning              // 警告
	LevelNote                 // 提示
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	default:
		return "unknown"
	}
}

// ============================================================================
// 词法错误种类
// ============================================================================
//
// 扫描器只产出 (Kind, Location) 对，自己从不渲染文本。
// 文本渲染由本包的 Reporter 配合 i18n 完成。
//
// ============================================================================

// Kind 词法错误种类
type Kind int

const (
	KindNone                 Kind = iota // 无错误
	KindUnterminatedString               // 未闭合的字符串字面量
	KindUnterminatedTemplate             // 未闭合的模板字面量
	KindUnterminatedComment              // 未闭合的多行注释
	KindUnterminatedRegExp               // 未闭合的正则字面量
	KindInvalidEscape                    // 非法转义序列
	KindInvalidHexEscape                 // 非法十六进制转义 \xGG
	KindInvalidUnicodeEscape             // 非法 Unicode 转义 \uXXXX / \u{...}
	KindUndefinedCodePoint               // Unicode 转义超出 U+10FFFF
	KindMalformedNumber                  // 畸形数字字面量（如 0x 后无数字）
	KindLegacyOctal                      // 严格模式下的八进制字面量/转义
	KindMalformedRegExpFlags             // 非法正则标志
	KindIllegalCharacter                 // 无法归类的非法字符
	KindHtmlComment                      // HTML 风格注释（仅告警）
)

// 词法错误码常量（L 开头）
var kindCodes = map[Kind]string{
	KindUnterminatedString:   "L0001",
	KindUnterminatedTemplate: "L0002",
	KindUnterminatedComment:  "L0003",
	KindUnterminatedRegExp:   "L0004",
	KindInvalidEscape:        "L0005",
	KindInvalidHexEscape:     "L0006",
	KindInvalidUnicodeEscape: "L0007",
	KindUndefinedCodePoint:   "L0008",
	KindMalformedNumber:      "L0009",
	KindLegacyOctal:          "L0010",
	KindMalformedRegExpFlags: "L0011",
	KindIllegalCharacter:     "L0012",
	KindHtmlComment:          "L0013",
}

// 错误种类到 i18n 消息 ID 的映射
var kindMessages = map[Kind]string{
	KindUnterminatedString:   i18n.ErrUnterminatedString,
	KindUnterminatedTemplate: i18n.ErrUnterminatedTemplate,
	KindUnterminatedComment:  i18n.ErrUnterminatedComment,
	KindUnterminatedRegExp:   i18n.ErrUnterminatedRegExp,
	KindInvalidEscape:        i18n.ErrInvalidEscape,
	KindInvalidHexEscape:     i18n.ErrInvalidHexEscape,
	KindInvalidUnicodeEscape: i18n.ErrInvalidUnicodeEscape,
	KindUndefinedCodePoint:   i18n.ErrUndefinedCodePoint,
	KindMalformedNumber:      i18n.ErrMalformedNumber,
	KindLegacyOctal:          i18n.ErrLegacyOctal,
	KindMalformedRegExpFlags: i18n.ErrMalformedRegExpFlags,
	KindIllegalCharacter:     i18n.ErrIllegalCharacter,
	KindHtmlComment:          i18n.ErrHtmlComment,
}

// Code 返回错误码（如 "L0001"）
func (k Kind) Code() string {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return "L0000"
}

// Message 返回当前语言下的错误消息
func (k Kind) Message() string {
	if id, ok := kindMessages[k]; ok {
		return i18n.T(id)
	}
	return i18n.T(i18n.ErrIllegalCharacter)
}
