package scanner

import "unicode"

// ============================================================================
// 字符分类
// ============================================================================

const (
	maxAscii           = 0x7F
	leadSurrogateMin   = 0xD800
	leadSurrogateMax   = 0xDBFF
	trailSurrogateMin  = 0xDC00
	trailSurrogateMax  = 0xDFFF
	maxNonSurrogate    = 0xFFFF
	maxCodePoint       = 0x10FFFF
	zeroWidthNonJoiner = 0x200C
	zeroWidthJoiner    = 0x200D
)

func isDecimalDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctalDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c rune) bool {
	return c == '0' || c == '1'
}

func isAsciiLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isWhiteSpace 行内空白（不含行终止符）
func isWhiteSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\v', '\f', 0x00A0, 0xFEFF:
		return true
	}
	return c > maxAscii && unicode.Is(unicode.Zs, c)
}

// isLineTerminator 行终止符
func isLineTerminator(c rune) bool {
	return c == '\n' || c == '\r' || c == 0x2028 || c == 0x2029
}

func isWhiteSpaceOrLineTerminator(c rune) bool {
	return isWhiteSpace(c) || isLineTerminator(c)
}

// isIdentifierStart 标识符首字符
func isIdentifierStart(c rune) bool {
	if c <= maxAscii {
		return isAsciiLetter(c) || c == '$' || c == '_'
	}
	return unicode.IsLetter(c) || unicode.Is(unicode.Nl, c)
}

// isIdentifierPart 标识符后续字符
func isIdentifierPart(c rune) bool {
	if c <= maxAscii {
		return isAsciiLetter(c) || isDecimalDigit(c) || c == '$' || c == '_'
	}
	if c == zeroWidthNonJoiner || c == zeroWidthJoiner {
		return true
	}
	return unicode.IsLetter(c) ||
		unicode.Is(unicode.Nl, c) ||
		unicode.Is(unicode.Mn, c) ||
		unicode.Is(unicode.Mc, c) ||
		unicode.Is(unicode.Nd, c) ||
		unicode.Is(unicode.Pc, c)
}

func isLeadSurrogate(c rune) bool {
	return c >= leadSurrogateMin && c <= leadSurrogateMax
}

func isTrailSurrogate(c rune) bool {
	return c >= trailSurrogateMin && c <= trailSurrogateMax
}

// combineSurrogatePair 合成代理对为完整码点
func combineSurrogatePair(lead, trail rune) rune {
	return ((lead - leadSurrogateMin) << 10) + (trail - trailSurrogateMin) + 0x10000
}
