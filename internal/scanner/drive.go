package scanner

import "github.com/lumenlang/lumen/internal/token"

// ============================================================================
// Token 流驱动
// ============================================================================
//
// 模板续段不会自动产出：消费方要在插值洞的花括号配平归零后，
// 把预读到的 } 显式改扫为模板续段。语法无关的消费方（诊断、
// 着色、token 打印）共用这里的驱动循环。
//
// ============================================================================

// ForEachToken 驱动扫描器走完整个输入，对每个产出的 token 调用 fn
//
// TEMPLATE_SPAN/TEMPLATE_TAIL 既可能是模板开头也可能是续段，
// 用 fromContinuation 区分，避免嵌套计数错乱。
func ForEachToken(s *Scanner, fn func(tok token.Type)) {
	var templateStack []int
	braceDepth := 0
	fromContinuation := false

	for {
		tok := s.Next()
		if tok == token.EOF {
			return
		}
		fn(tok)

		switch tok {
		case token.TEMPLATE_SPAN:
			if !fromContinuation {
				// 进入新模板，保存外层的花括号深度
				templateStack = append(templateStack, braceDepth)
				braceDepth = 0
			}
		case token.TEMPLATE_TAIL:
			if fromContinuation {
				if n := len(templateStack); n > 0 {
					braceDepth = templateStack[n-1]
					templateStack = templateStack[:n-1]
				}
			}
			// 无洞模板一个 token 进出，栈不动
		case token.LBRACE:
			braceDepth++
		case token.RBRACE:
			if braceDepth > 0 {
				braceDepth--
			}
		}
		fromContinuation = false

		if len(templateStack) > 0 && braceDepth == 0 && s.Peek() == token.RBRACE {
			s.ScanTemplateContinuation()
			fromContinuation = true
		}
	}
}
