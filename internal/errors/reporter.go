package errors

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/lumenlang/lumen/internal/token"
)

// ============================================================================
// 词法错误报告器
// ============================================================================
//
// 扫描器只产出 (Kind, Location) 对，Location 以 UTF-16 码元偏移计。
// Reporter 负责把偏移换算成行列号并渲染带源码上下文的诊断文本。
//
// ============================================================================

// LexicalError 一条带位置的词法错误
type LexicalError struct {
	Kind Kind           // 错误种类
	Loc  token.Location // 源码区间（码元偏移）
	File string         // 文件路径
}

// Error 实现 error 接口
func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s: [%s] %s", e.File, e.Kind.Code(), e.Kind.Message())
}

// Reporter 错误报告器
type Reporter struct {
	ShowSource bool // 是否显示源代码行
	units      []uint16
	lineStarts []int // 每行起始的码元偏移
	lines      []string
}

// NewReporter 创建针对一份源文本的报告器
func NewReporter(source string) *Reporter {
	r := &Reporter{
		ShowSource: true,
		units:      utf16.Encode([]rune(source)),
	}
	r.indexLines()
	return r
}

// indexLines 按码元偏移建立行索引
func (r *Reporter) indexLines() {
	r.lineStarts = append(r.lineStarts, 0)
	var cur []uint16
	for i, u := range r.units {
		if u == '\n' {
			r.lines = append(r.lines, string(utf16.Decode(cur)))
			r.lineStarts = append(r.lineStarts, i+1)
			cur = cur[:0]
			continue
		}
		cur = append(cur, u)
	}
	r.lines = append(r.lines, string(utf16.Decode(cur)))
}

// LineColumn 把码元偏移换算为 1-based 行列号
func (r *Reporter) LineColumn(offset int) (line, column int) {
	if offset < 0 {
		return 1, 1
	}
	// 二分查找所在行
	lo, hi := 0, len(r.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if r.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - r.lineStarts[lo] + 1
}

// Format 渲染一条词法错误
//
// 输出风格:
//
//	error[L0001]: unterminated string literal
//	 --> main.lum:3:5
//	  3 | var s = "abc
//	    |         ^^^^
func (r *Reporter) Format(err *LexicalError) string {
	var sb strings.Builder

	level := colorize("error", ColorBoldRed)
	code := colorize(fmt.Sprintf("[%s]", err.Kind.Code()), ColorBoldRed)
	sb.WriteString(fmt.Sprintf("%s%s: %s\n", level, code, err.Kind.Message()))

	line, col := r.LineColumn(err.Loc.Beg)
	arrow := colorize("-->", ColorCyan)
	sb.WriteString(fmt.Sprintf(" %s %s\n", arrow, colorize(fmt.Sprintf("%s:%d:%d", err.File, line, col), ColorCyan)))

	if r.ShowSource && line >= 1 && line <= len(r.lines) {
		src := r.lines[line-1]
		prefix := fmt.Sprintf("  %d | ", line)
		sb.WriteString(prefix + src + "\n")

		// 下划线长度不跨行
		width := err.Loc.End - err.Loc.Beg
		if width < 1 {
			width = 1
		}
		remain := len(src) - (col - 1)
		if remain >= 0 && width > remain {
			width = remain
			if width < 1 {
				width = 1
			}
		}
		pad := strings.Repeat(" ", len(fmt.Sprintf("  %d ", line)))
		sb.WriteString(pad + "| " + strings.Repeat(" ", col-1) + colorize(strings.Repeat("^", width), ColorBoldRed) + "\n")
	}

	return sb.String()
}
