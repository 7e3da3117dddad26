// Package numconv 实现数字与字符串之间的规范转换。
//
// 扫描器的 DoubleValue 和重复键检测器的 AddNumber 都依赖这里的语义：
// 字符串按脚本语言的数字文法解析为 float64，float64 再按
// ToString(Number) 的规则渲染为规范文本。两个方向必须配套，
// 否则 "1.0" 和 "1" 这类拼写不同、数值相同的属性键无法碰撞。
package numconv

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// 解析标志
// ============================================================================

// Flags 控制 StringToDouble 接受哪些扩展文法
type Flags int

const (
	NoFlags            Flags = 0
	AllowHex           Flags = 1 << iota // 0x1A
	AllowOctal                           // 0o17
	AllowBinary                          // 0b101
	AllowImplicitOctal                   // 017 （前导零八进制）
)

// ============================================================================
// 字符串 -> 数字
// ============================================================================

// StringToDouble 按数字字面量文法解析字符串
//
// 空串解析为 0，无法解析时返回 NaN。
// 超过 64 位整数范围的进制字面量按 float64 逐位累加，
// 与原生实现保持一致（精度损失是有意的）。
func StringToDouble(s string, flags Flags) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			if flags&AllowHex != 0 {
				return parseRadix(s[2:], 16)
			}
			return math.NaN()
		case 'o', 'O':
			if flags&AllowOctal != 0 {
				return parseRadix(s[2:], 8)
			}
			return math.NaN()
		case 'b', 'B':
			if flags&AllowBinary != 0 {
				return parseRadix(s[2:], 2)
			}
			return math.NaN()
		}

		// 前导零八进制：后续全部是 0-7 才按八进制解释，
		// 出现 8/9 则回退为十进制（带前导零）。
		if flags&AllowImplicitOctal != 0 && isImplicitOctal(s) {
			return parseRadix(s[1:], 8)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// 上溢出按 ±Inf 处理，其余情况是 NaN
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v
		}
		return math.NaN()
	}
	return v
}

// isImplicitOctal 判断是否为前导零八进制拼写（0 后跟至少一个 0-7，且无 8/9/小数/指数）
func isImplicitOctal(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

// parseRadix 逐位累加解析给定进制的数字
func parseRadix(s string, radix int) float64 {
	if s == "" {
		return math.NaN()
	}
	x := 0.0
	for i := 0; i < len(s); i++ {
		d := hexValue(s[i])
		if d < 0 || d >= radix {
			return math.NaN()
		}
		x = x*float64(radix) + float64(d)
	}
	return x
}

// hexValue 返回字符的十六进制数值，非法字符返回 -1
func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// ============================================================================
// 数字 -> 规范字符串
// ============================================================================

// DoubleToString 按 ToString(Number) 规则渲染 float64
//
// 规则要点（ECMA-262 7.1.12.1）：
//   - 最短往返十进制表示
//   - 小数点位置 n 满足 -6 < n <= 21 时用定点记法，否则用指数记法
//   - 指数记法形如 d.ddde+21 / 1e-7，指数恒带符号
func DoubleToString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0" // 包括 -0
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// 提取最短往返表示的有效数字与十进制指数
	mant := strconv.FormatFloat(v, 'e', -1, 64) // 形如 "1.2345e+06" 或 "5e-07"
	ePos := strings.IndexByte(mant, 'e')
	exp, _ := strconv.Atoi(mant[ePos+1:])
	digits := strings.Replace(mant[:ePos], ".", "", 1)
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	}

	k := len(digits)
	n := exp + 1 // 小数点应落在 digits 的第 n 位之后

	var sb strings.Builder
	sb.WriteString(sign)

	switch {
	case k <= n && n <= 21:
		// 整数，补零
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", n-k))

	case 0 < n && n <= 21:
		sb.WriteString(digits[:n])
		sb.WriteByte('.')
		sb.WriteString(digits[n:])

	case -6 < n && n <= 0:
		sb.WriteString("0.")
		sb.WriteString(strings.Repeat("0", -n))
		sb.WriteString(digits)

	default:
		// 指数记法
		sb.WriteString(digits[:1])
		if k > 1 {
			sb.WriteByte('.')
			sb.WriteString(digits[1:])
		}
		sb.WriteByte('e')
		if n-1 >= 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(strconv.Itoa(n - 1))
	}

	return sb.String()
}
