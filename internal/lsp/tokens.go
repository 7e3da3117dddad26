package lsp

import (
	"github.com/lumenlang/lumen/internal/errors"
	"github.com/lumenlang/lumen/internal/scanner"
	"github.com/lumenlang/lumen/internal/token"
)

// ============================================================================
// 语义着色
// ============================================================================
//
// 编辑器拿到的是 LSP 语义 token 的增量编码：每个 token 五个整数
// (deltaLine, deltaStart, length, tokenType, tokenModifiers)。
// 行列都是 UTF-16 码元计数，刚好是扫描器的原生单位。
//
// ============================================================================

// SemanticTokenTypes 能力声明里的 token 类型表，编码时用下标引用
var SemanticTokenTypes = []string{
	"keyword",
	"variable",
	"number",
	"string",
	"operator",
}

const (
	semKeyword = iota
	semVariable
	semNumber
	semString
	semOperator
)

// classifyToken 把词法 token 映射到语义类型；不着色的返回 -1
func classifyToken(t token.Type) int {
	switch {
	case t.IsKeyword():
		return semKeyword
	case t == token.IDENT:
		return semVariable
	case t == token.NUMBER || t == token.SMI:
		return semNumber
	case t == token.STRING || t == token.TEMPLATE_SPAN ||
		t == token.TEMPLATE_TAIL || t == token.REGEXP:
		return semString
	case t == token.EOF || t == token.ILLEGAL:
		return -1
	default:
		// 运算符与分隔符
		return semOperator
	}
}

// semanticTokens 扫描整份文档并编码语义 token
func semanticTokens(text string, opts scanner.Options) []uint32 {
	s := scanner.NewWithOptions(scanner.NewStringStream(text), opts)
	rep := errors.NewReporter(text)

	data := []uint32{}
	prevLine, prevCol := 0, 0
	scanner.ForEachToken(s, func(tok token.Type) {
		sem := classifyToken(tok)
		if sem < 0 {
			return
		}

		loc := s.Location()
		line1, col1 := rep.LineColumn(loc.Beg)
		line, col := line1-1, col1-1
		length := loc.End - loc.Beg

		// 跨行 token（含换行的模板串）截断到行尾，协议不支持多行 token
		endLine1, _ := rep.LineColumn(loc.End)
		if endLine1-1 != line {
			lineEnd := loc.Beg
			for lineEnd < loc.End {
				l1, _ := rep.LineColumn(lineEnd)
				if l1-1 != line {
					break
				}
				lineEnd++
			}
			length = lineEnd - loc.Beg
		}
		if length <= 0 {
			return
		}

		deltaLine := line - prevLine
		deltaStart := col
		if deltaLine == 0 {
			deltaStart = col - prevCol
		}
		data = append(data, uint32(deltaLine), uint32(deltaStart), uint32(length), uint32(sem), 0)
		prevLine, prevCol = line, col
	})
	return data
}
