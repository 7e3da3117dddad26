package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/lumenlang/lumen/internal/errors"
	"github.com/lumenlang/lumen/internal/scanner"
	"github.com/lumenlang/lumen/internal/token"
)

// analyzeOptions 诊断扫描的开关（由项目配置决定）
type analyzeOptions struct {
	scanner          scanner.Options
	strictOctal      bool
	warnHtmlComments bool
}

// analyze 对整份文档做词法扫描，产出 LSP 诊断
//
// 首个被记录的词法错误报告一次，其余的 ILLEGAL token 按非法字符报告。
// strictOctal 打开时遗留八进制写法追加一条告警。
func analyze(text string, opts analyzeOptions) []protocol.Diagnostic {
	s := scanner.NewWithOptions(scanner.NewStringStream(text), opts.scanner)
	rep := errors.NewReporter(text)

	diags := []protocol.Diagnostic{}
	errorReported := false
	scanner.ForEachToken(s, func(tok token.Type) {
		if tok != token.ILLEGAL {
			return
		}
		kind := errors.KindIllegalCharacter
		loc := s.Location()
		if s.HasError() && !errorReported {
			kind = s.Error()
			loc = s.ErrorLocation()
			errorReported = true
		}
		diags = append(diags, diagnostic(rep, loc, kind, protocol.DiagnosticSeverityError))
	})

	if opts.strictOctal && s.OctalPosition().IsValid() {
		diags = append(diags, diagnostic(rep, s.OctalPosition(), errors.KindLegacyOctal,
			protocol.DiagnosticSeverityWarning))
	}
	if opts.warnHtmlComments && s.HtmlCommentLocation().IsValid() {
		diags = append(diags, diagnostic(rep, s.HtmlCommentLocation(), errors.KindHtmlComment,
			protocol.DiagnosticSeverityWarning))
	}

	return diags
}

// diagnostic 把词法错误换算为一条 LSP 诊断
func diagnostic(rep *errors.Reporter, loc token.Location, kind errors.Kind,
	severity protocol.DiagnosticSeverity) protocol.Diagnostic {

	return protocol.Diagnostic{
		Range:    toRange(rep, loc),
		Severity: severity,
		Code:     kind.Code(),
		Source:   "lumen",
		Message:  kind.Message(),
	}
}

// toRange 把码元跨度换算为 0-based 的 LSP Range
func toRange(rep *errors.Reporter, loc token.Location) protocol.Range {
	begLine, begCol := rep.LineColumn(loc.Beg)
	endLine, endCol := rep.LineColumn(loc.End)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(begLine - 1), Character: uint32(begCol - 1)},
		End:   protocol.Position{Line: uint32(endLine - 1), Character: uint32(endCol - 1)},
	}
}
