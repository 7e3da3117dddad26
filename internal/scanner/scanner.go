package scanner

import (
	"unicode/utf16"

	"github.com/lumenlang/lumen/internal/errors"
	"github.com/lumenlang/lumen/internal/numconv"
	"github.com/lumenlang/lumen/internal/token"
)

// ============================================================================
// Scanner - 词法扫描器
// ============================================================================
//
// 按需产出 token 的状态机。任意时刻持有已消费的 current、预读好的 next，
// 以及 PeekAhead 填充的 nextNext 三个 token 描述符。c0 是向前看一个
// 码点的游标，代理对在这里合成。
//
// 首个被记录的词法错误保持不变（后续错误不覆盖），消费方在收到
// ILLEGAL token 后查询 Error / ErrorLocation。
//
// ============================================================================

// smiMaxValue 小整数快速路径的上界
const smiMaxValue = 1<<30 - 1

// tokenDesc 一个 token 的完整描述
type tokenDesc struct {
	token           token.Type
	loc             token.Location
	literalChars    *LiteralBuffer // 煮熟文本；无字面量的 token 为 nil
	rawLiteralChars *LiteralBuffer // 原始文本（模板串用）
	smiValue        int
}

// bookmarkState 书签的三个状态
//
// 非法迁移（比如未设置就回退）直接 panic，这类调用顺序错误
// 属于编程错误而不是输入错误。
type bookmarkState int

const (
	bookmarkNotSet bookmarkState = iota
	bookmarkSet
	bookmarkApplied
)

// numberKind 数字字面量的进制类别
type numberKind int

const (
	numberDecimal numberKind = iota
	numberDecimalWithLeadingZero
	numberHex
	numberOctal
	numberImplicitOctal
	numberBinary
)

// oneCharTokens ASCII 单字符 token 快速表
var oneCharTokens = func() [128]token.Type {
	var t [128]token.Type
	t['('] = token.LPAREN
	t[')'] = token.RPAREN
	t['{'] = token.LBRACE
	t['}'] = token.RBRACE
	t['['] = token.LBRACKET
	t[']'] = token.RBRACKET
	t[':'] = token.COLON
	t[';'] = token.SEMICOLON
	t[','] = token.COMMA
	t['~'] = token.BIT_NOT
	t['?'] = token.QUESTION
	return t
}()

// Options 扫描器开关
type Options struct {
	// AllowExponentiationOperator 启用 ** 与 **= 运算符
	AllowExponentiationOperator bool
}

// Scanner 词法扫描器
type Scanner struct {
	source CharacterStream

	c0 rune // 向前看一个码点；输入结束时为 EndOfInput

	current  tokenDesc
	next     tokenDesc
	nextNext tokenDesc

	// 轮换的字面量缓冲：三个描述符各占一个，StartLiteral 挑选
	// 未被 current 引用的那个
	literalBuffers    [3]LiteralBuffer
	rawLiteralBuffers [3]LiteralBuffer

	// 魔法注释 //# sourceURL= 和 //# sourceMappingURL= 的值
	sourceURL        LiteralBuffer
	sourceMappingURL LiteralBuffer

	// 书签快照
	bookmark               bookmarkState
	bookmarkC0             rune
	bookmarkCurrent        tokenDesc
	bookmarkNext           tokenDesc
	bookmarkCurrentLiteral LiteralBuffer
	bookmarkCurrentRaw     LiteralBuffer
	bookmarkNextLiteral    LiteralBuffer
	bookmarkNextRaw        LiteralBuffer
	bookmarkErr            errors.Kind
	bookmarkErrLoc         token.Location

	// 最近一次数字/字符串里出现的八进制写法位置，供严格模式检查
	octalPos token.Location

	err    errors.Kind
	errLoc token.Location

	hasLineTerminatorBeforeNext   bool
	hasMultilineCommentBeforeNext bool
	foundHtmlComment              bool
	htmlCommentPos                token.Location

	allowExponentiation bool
}

// New 创建扫描器并预读第一个 token
func New(source CharacterStream) *Scanner {
	return NewWithOptions(source, Options{AllowExponentiationOperator: true})
}

// NewWithOptions 创建带开关的扫描器
func NewWithOptions(source CharacterStream, opts Options) *Scanner {
	s := &Scanner{
		source:              source,
		octalPos:            token.InvalidLocation(),
		htmlCommentPos:      token.InvalidLocation(),
		allowExponentiation: opts.AllowExponentiationOperator,
	}
	s.current.token = token.UNINITIALIZED
	s.next.token = token.UNINITIALIZED
	s.nextNext.token = token.UNINITIALIZED
	s.advance()
	// 文件开头视同换行之后，这样行首的 --> 也按注释处理
	s.hasLineTerminatorBeforeNext = true
	s.skipWhiteSpace()
	s.scan()
	return s
}

// ============================================================================
// 码点游标
// ============================================================================

func (s *Scanner) advance() {
	s.c0 = s.source.Advance()
	s.handleLeadSurrogate()
}

// advanceRaw 前进并把越过的码点追加进原始缓冲（模板串捕获用）
func (s *Scanner) advanceRaw() {
	s.addRawLiteralChar(s.c0)
	s.c0 = s.source.Advance()
	s.handleLeadSurrogate()
}

// advanceUnit 前进一个码元，不做代理对合成（窄字面量快速路径）
func (s *Scanner) advanceUnit() {
	s.c0 = s.source.Advance()
}

// handleLeadSurrogate 前导代理后紧跟后尾代理时合成完整码点，
// 否则孤立的代理码元原样留在 c0
func (s *Scanner) handleLeadSurrogate() {
	if isLeadSurrogate(s.c0) {
		c1 := s.source.Advance()
		if isTrailSurrogate(c1) {
			s.c0 = combineSurrogatePair(s.c0, c1)
		} else {
			s.source.PushBack(c1)
		}
	}
}

// pushBack 把 c0 退回流中并以 ch 替换之
func (s *Scanner) pushBack(ch rune) {
	if s.c0 > maxNonSurrogate {
		lead, trail := utf16.EncodeRune(s.c0)
		s.source.PushBack(trail)
		s.source.PushBack(lead)
	} else {
		s.source.PushBack(s.c0)
	}
	s.c0 = ch
}

// sourcePos 当前扫描位置（c0 占了一个码元的前瞻）
func (s *Scanner) sourcePos() int {
	return s.source.Pos() - 1
}

func (s *Scanner) selectToken(tok token.Type) token.Type {
	s.advance()
	return tok
}

func (s *Scanner) selectIf(next rune, then, otherwise token.Type) token.Type {
	s.advance()
	if s.c0 == next {
		s.advance()
		return then
	}
	return otherwise
}

// ============================================================================
// 字面量缓冲管理
// ============================================================================

// startLiteral 为 next 挑选一个未被 current 引用的煮熟缓冲
func (s *Scanner) startLiteral() {
	var free *LiteralBuffer
	switch s.current.literalChars {
	case &s.literalBuffers[0]:
		free = &s.literalBuffers[1]
	case &s.literalBuffers[1]:
		free = &s.literalBuffers[2]
	default:
		free = &s.literalBuffers[0]
	}
	free.Reset()
	s.next.literalChars = free
}

// startRawLiteral 原始缓冲组的同样轮换
func (s *Scanner) startRawLiteral() {
	var free *LiteralBuffer
	switch s.current.rawLiteralChars {
	case &s.rawLiteralBuffers[0]:
		free = &s.rawLiteralBuffers[1]
	case &s.rawLiteralBuffers[1]:
		free = &s.rawLiteralBuffers[2]
	default:
		free = &s.rawLiteralBuffers[0]
	}
	free.Reset()
	s.next.rawLiteralChars = free
}

func (s *Scanner) addLiteralChar(c rune) {
	s.next.literalChars.AddChar(c)
}

func (s *Scanner) addRawLiteralChar(c rune) {
	s.next.rawLiteralChars.AddChar(c)
}

func (s *Scanner) addLiteralCharAdvance() {
	s.addLiteralChar(s.c0)
	s.advance()
}

func (s *Scanner) reduceRawLiteralLength(delta int) {
	s.next.rawLiteralChars.ReduceLength(delta)
}

func (s *Scanner) dropLiteral() {
	s.next.literalChars = nil
	s.next.rawLiteralChars = nil
}

// literalScope 字面量累积的提交/丢弃控制
//
// 扫描函数开头建立并 defer Done；正常结束前 Complete，
// 错误路径提前返回时 Done 把半成品缓冲丢掉。
type literalScope struct {
	scanner  *Scanner
	complete bool
}

func (s *Scanner) newLiteralScope() *literalScope {
	s.startLiteral()
	return &literalScope{scanner: s}
}

func (s *Scanner) newRawLiteralScope() *literalScope {
	s.startLiteral()
	s.startRawLiteral()
	return &literalScope{scanner: s}
}

func (ls *literalScope) Complete() {
	ls.complete = true
}

func (ls *literalScope) Done() {
	if !ls.complete {
		ls.scanner.dropLiteral()
	}
}

// ============================================================================
// 错误记录
// ============================================================================

// reportError 记录词法错误；已有错误时保持首个不变
func (s *Scanner) reportError(loc token.Location, kind errors.Kind) {
	if s.err != errors.KindNone {
		return
	}
	s.err = kind
	s.errLoc = loc
}

func (s *Scanner) reportErrorAt(pos int, kind errors.Kind) {
	s.reportError(token.Location{Beg: pos, End: pos + 1}, kind)
}

// HasError 报告是否已有词法错误
func (s *Scanner) HasError() bool {
	return s.err != errors.KindNone
}

// Error 返回首个词法错误；无错误时为 KindNone
func (s *Scanner) Error() errors.Kind {
	return s.err
}

// ErrorLocation 返回首个词法错误的位置
func (s *Scanner) ErrorLocation() token.Location {
	return s.errLoc
}

// ============================================================================
// Token 访问
// ============================================================================

// Next 消费并返回下一个 token
func (s *Scanner) Next() token.Type {
	if s.next.token == token.EOF {
		// 反复在末尾调用时 EOF 的跨度保持稳定
		s.next.loc = s.current.loc
	}
	s.current = s.next
	if s.nextNext.token != token.UNINITIALIZED {
		s.next = s.nextNext
		s.nextNext.token = token.UNINITIALIZED
		return s.current.token
	}
	s.hasLineTerminatorBeforeNext = false
	s.hasMultilineCommentBeforeNext = false
	if s.c0 >= 0 && s.c0 <= maxAscii {
		if t := oneCharTokens[s.c0]; t != token.ILLEGAL {
			pos := s.sourcePos()
			s.next.token = t
			s.next.loc = token.Location{Beg: pos, End: pos + 1}
			s.next.literalChars = nil
			s.next.rawLiteralChars = nil
			s.advance()
			return s.current.token
		}
	}
	s.scan()
	return s.current.token
}

// PeekAhead 返回 next 之后的那个 token，不消费任何东西
func (s *Scanner) PeekAhead() token.Type {
	if s.nextNext.token != token.UNINITIALIZED {
		return s.nextNext.token
	}
	prev := s.current
	s.Next()
	result := s.next.token
	s.nextNext = s.next
	s.next = s.current
	s.current = prev
	return result
}

// CurrentToken 最近一次 Next 返回的 token
func (s *Scanner) CurrentToken() token.Type {
	return s.current.token
}

// Peek 预读好的下一个 token
func (s *Scanner) Peek() token.Type {
	return s.next.token
}

// Location 当前 token 的跨度
func (s *Scanner) Location() token.Location {
	return s.current.loc
}

// PeekLocation 下一个 token 的跨度
func (s *Scanner) PeekLocation() token.Location {
	return s.next.loc
}

// HasAnyLineTerminatorBeforeNext 报告 next 之前是否跨过了行终止符
// （含带换行的块注释），自动分号插入依赖它
func (s *Scanner) HasAnyLineTerminatorBeforeNext() bool {
	return s.hasLineTerminatorBeforeNext || s.hasMultilineCommentBeforeNext
}

// FoundHtmlComment 报告是否遇到过 <!-- 风格注释
func (s *Scanner) FoundHtmlComment() bool {
	return s.foundHtmlComment
}

// HtmlCommentLocation 第一个 HTML 风格注释开始符的位置；
// 没有遇到过时返回无效位置
func (s *Scanner) HtmlCommentLocation() token.Location {
	return s.htmlCommentPos
}

// markHtmlComment 只记录第一次出现的位置
func (s *Scanner) markHtmlComment(loc token.Location) {
	if !s.htmlCommentPos.IsValid() {
		s.htmlCommentPos = loc
	}
}

// ============================================================================
// 主扫描循环
// ============================================================================

func (s *Scanner) scan() {
	s.next.literalChars = nil
	s.next.rawLiteralChars = nil
	var tok token.Type
	for {
		s.next.loc.Beg = s.sourcePos()

		switch s.c0 {
		case ' ', '\t':
			s.advance()
			tok = token.WHITESPACE

		case '\n':
			s.advance()
			s.hasLineTerminatorBeforeNext = true
			tok = token.WHITESPACE

		case '"', '\'':
			tok = s.scanString()

		case '<':
			// < <= << <<= <!--
			s.advance()
			switch s.c0 {
			case '=':
				tok = s.selectToken(token.LE)
			case '<':
				tok = s.selectIf('=', token.LEFT_SHIFT_ASSIGN, token.LEFT_SHIFT)
			case '!':
				tok = s.scanHtmlComment()
			default:
				tok = token.LT
			}

		case '>':
			// > >= >> >>= >>> >>>=
			s.advance()
			switch s.c0 {
			case '=':
				tok = s.selectToken(token.GE)
			case '>':
				s.advance()
				switch s.c0 {
				case '=':
					tok = s.selectToken(token.RIGHT_SHIFT_ASSIGN)
				case '>':
					tok = s.selectIf('=', token.UNSIGNED_RIGHT_SHIFT_ASSIGN, token.UNSIGNED_RIGHT_SHIFT)
				default:
					tok = token.RIGHT_SHIFT
				}
			default:
				tok = token.GT
			}

		case '=':
			// = == === =>
			s.advance()
			switch s.c0 {
			case '=':
				tok = s.selectIf('=', token.STRICT_EQ, token.EQ)
			case '>':
				tok = s.selectToken(token.ARROW)
			default:
				tok = token.ASSIGN
			}

		case '!':
			// ! != !==
			s.advance()
			if s.c0 == '=' {
				tok = s.selectIf('=', token.STRICT_NE, token.NE)
			} else {
				tok = token.NOT
			}

		case '+':
			// + ++ +=
			s.advance()
			switch s.c0 {
			case '+':
				tok = s.selectToken(token.INCREMENT)
			case '=':
				tok = s.selectToken(token.PLUS_ASSIGN)
			default:
				tok = token.PLUS
			}

		case '-':
			// - -- --> -=
			s.advance()
			switch s.c0 {
			case '-':
				s.advance()
				if s.c0 == '>' && s.hasLineTerminatorBeforeNext {
					// 换行后行首的 --> 按 HTML 注释结尾处理，整行跳过
					s.markHtmlComment(token.Location{Beg: s.next.loc.Beg, End: s.sourcePos() + 1})
					tok = s.skipSingleLineComment()
				} else {
					tok = token.DECREMENT
				}
			case '=':
				tok = s.selectToken(token.MINUS_ASSIGN)
			default:
				tok = token.MINUS
			}

		case '*':
			// * *= ** **=
			s.advance()
			if s.c0 == '*' && s.allowExponentiation {
				tok = s.selectIf('=', token.EXPONENT_ASSIGN, token.EXPONENT)
			} else if s.c0 == '=' {
				tok = s.selectToken(token.STAR_ASSIGN)
			} else {
				tok = token.STAR
			}

		case '%':
			// % %=
			tok = s.selectIf('=', token.PERCENT_ASSIGN, token.PERCENT)

		case '/':
			// / // /* /= //# sourceURL=
			s.advance()
			switch s.c0 {
			case '/':
				s.advance()
				if s.c0 == '#' || s.c0 == '@' {
					s.advance()
					tok = s.skipSourceURLComment()
				} else {
					tok = s.skipSingleLineComment()
				}
			case '*':
				tok = s.skipMultiLineComment()
			case '=':
				tok = s.selectToken(token.SLASH_ASSIGN)
			default:
				tok = token.SLASH
			}

		case '&':
			// & && &=
			s.advance()
			switch s.c0 {
			case '&':
				tok = s.selectToken(token.AND)
			case '=':
				tok = s.selectToken(token.AND_ASSIGN)
			default:
				tok = token.BIT_AND
			}

		case '|':
			// | || |=
			s.advance()
			switch s.c0 {
			case '|':
				tok = s.selectToken(token.OR)
			case '=':
				tok = s.selectToken(token.OR_ASSIGN)
			default:
				tok = token.BIT_OR
			}

		case '^':
			// ^ ^=
			tok = s.selectIf('=', token.XOR_ASSIGN, token.BIT_XOR)

		case '.':
			// . ... 数字
			s.advance()
			if isDecimalDigit(s.c0) {
				tok = s.scanNumber(true)
			} else if s.c0 == '.' {
				s.advance()
				if s.c0 == '.' {
					s.advance()
					tok = token.ELLIPSIS
				} else {
					s.pushBack('.')
					tok = token.DOT
				}
			} else {
				tok = token.DOT
			}

		case '`':
			s.advance()
			tok = s.scanTemplateSpan()

		case '(':
			tok = s.selectToken(token.LPAREN)
		case ')':
			tok = s.selectToken(token.RPAREN)
		case '{':
			tok = s.selectToken(token.LBRACE)
		case '}':
			tok = s.selectToken(token.RBRACE)
		case '[':
			tok = s.selectToken(token.LBRACKET)
		case ']':
			tok = s.selectToken(token.RBRACKET)
		case ':':
			tok = s.selectToken(token.COLON)
		case ';':
			tok = s.selectToken(token.SEMICOLON)
		case ',':
			tok = s.selectToken(token.COMMA)
		case '~':
			tok = s.selectToken(token.BIT_NOT)
		case '?':
			tok = s.selectToken(token.QUESTION)

		case EndOfInput:
			tok = token.EOF

		default:
			if isIdentifierStart(s.c0) || s.c0 == '\\' {
				tok = s.scanIdentifierOrKeyword()
			} else if isDecimalDigit(s.c0) {
				tok = s.scanNumber(false)
			} else if s.skipWhiteSpace() {
				tok = token.WHITESPACE
			} else {
				tok = s.selectToken(token.ILLEGAL)
			}
		}

		// 空白和注释不产出 token，继续扫描
		if tok != token.WHITESPACE {
			break
		}
	}
	s.next.loc.End = s.sourcePos()
	s.next.token = tok
}

// ============================================================================
// 空白与注释
// ============================================================================

// skipWhiteSpace 跳过空白与行终止符，返回是否有任何进展
func (s *Scanner) skipWhiteSpace() bool {
	startPosition := s.sourcePos()
	for {
		for {
			if s.c0 == EndOfInput {
				break
			}
			if isLineTerminator(s.c0) {
				s.hasLineTerminatorBeforeNext = true
			} else if !isWhiteSpace(s.c0) {
				break
			}
			s.advance()
		}
		// 换行后行首的 --> 当作单行注释跳过
		if s.c0 != '-' || !s.hasLineTerminatorBeforeNext {
			break
		}
		s.advance()
		if s.c0 != '-' {
			s.pushBack('-')
			break
		}
		s.advance()
		if s.c0 != '>' {
			s.pushBack('-')
			s.pushBack('-')
			break
		}
		s.markHtmlComment(token.Location{Beg: s.sourcePos() - 2, End: s.sourcePos() + 1})
		s.skipSingleLineComment()
	}
	return s.sourcePos() != startPosition
}

// skipSingleLineComment 跳到行尾；行终止符留给空白处理以维护换行标记
func (s *Scanner) skipSingleLineComment() token.Type {
	for s.c0 != EndOfInput && !isLineTerminator(s.c0) {
		s.advance()
	}
	return token.WHITESPACE
}

func (s *Scanner) skipSourceURLComment() token.Type {
	s.tryToParseSourceURLComment()
	for s.c0 != EndOfInput && !isLineTerminator(s.c0) {
		s.advance()
	}
	return token.WHITESPACE
}

// tryToParseSourceURLComment 解析 //# sourceURL=<值> 魔法注释；
// 格式不符时整条按普通注释忽略
func (s *Scanner) tryToParseSourceURLComment() {
	if s.c0 == EndOfInput || !isWhiteSpace(s.c0) {
		return
	}
	s.advance()
	var name LiteralBuffer
	for s.c0 != EndOfInput && !isWhiteSpaceOrLineTerminator(s.c0) && s.c0 != '=' {
		name.AddChar(s.c0)
		s.advance()
	}
	if !name.IsNarrow() {
		return
	}
	var value *LiteralBuffer
	switch {
	case name.EqualsKeyword("sourceURL"):
		value = &s.sourceURL
	case name.EqualsKeyword("sourceMappingURL"):
		value = &s.sourceMappingURL
	default:
		return
	}
	if s.c0 != '=' {
		return
	}
	s.advance()
	value.Reset()
	for s.c0 != EndOfInput && isWhiteSpace(s.c0) {
		s.advance()
	}
	for s.c0 != EndOfInput && !isLineTerminator(s.c0) {
		if isWhiteSpace(s.c0) {
			break
		}
		value.AddChar(s.c0)
		s.advance()
	}
	// 值之后到行尾只允许空白，否则整个值作废
	for s.c0 != EndOfInput && !isLineTerminator(s.c0) {
		if !isWhiteSpace(s.c0) {
			value.Reset()
			break
		}
		s.advance()
	}
}

func (s *Scanner) skipMultiLineComment() token.Type {
	// 进入时 c0 是 '/*' 之后的 '*'
	commentStart := s.next.loc.Beg
	s.advance()
	for s.c0 != EndOfInput {
		ch := s.c0
		s.advance()
		if s.c0 != EndOfInput && isLineTerminator(ch) {
			// 含换行的块注释在自动分号插入上等价于换行
			s.hasMultilineCommentBeforeNext = true
		}
		if ch == '*' && s.c0 == '/' {
			s.c0 = ' '
			return token.WHITESPACE
		}
	}
	s.reportError(token.Location{Beg: commentStart, End: s.sourcePos()}, errors.KindUnterminatedComment)
	return token.ILLEGAL
}

// scanHtmlComment 识别 <!--，失败时退回为 LT
func (s *Scanner) scanHtmlComment() token.Type {
	// 进入时 c0 == '!'
	s.advance()
	if s.c0 == '-' {
		s.advance()
		if s.c0 == '-' {
			s.foundHtmlComment = true
			s.markHtmlComment(token.Location{Beg: s.next.loc.Beg, End: s.sourcePos() + 1})
			return s.skipSingleLineComment()
		}
		s.pushBack('-')
	}
	s.pushBack('!')
	return token.LT
}

// ============================================================================
// 字符串
// ============================================================================

func (s *Scanner) scanString() token.Type {
	quote := s.c0
	beg := s.next.loc.Beg
	s.advanceUnit() // 越过引号

	literal := s.newLiteralScope()
	defer literal.Done()

	// 窄 ASCII 快速路径：无转义、无引号、无换行时逐码元拷贝
	for {
		if s.c0 > maxAscii {
			s.handleLeadSurrogate()
			break
		}
		if s.c0 == EndOfInput || s.c0 == '\n' || s.c0 == '\r' {
			s.reportError(token.Location{Beg: beg, End: s.sourcePos()}, errors.KindUnterminatedString)
			return token.ILLEGAL
		}
		if s.c0 == quote {
			literal.Complete()
			s.advanceUnit()
			return token.STRING
		}
		c := s.c0
		if c == '\\' {
			break
		}
		s.advanceUnit()
		s.addLiteralChar(c)
	}

	for s.c0 != quote && s.c0 != EndOfInput && !isLineTerminator(s.c0) {
		c := s.c0
		s.advance()
		if c == '\\' {
			if s.c0 == EndOfInput || !s.scanEscape(false, false) {
				if !s.HasError() {
					s.reportError(token.Location{Beg: beg, End: s.sourcePos()}, errors.KindInvalidEscape)
				}
				return token.ILLEGAL
			}
		} else {
			s.addLiteralChar(c)
		}
	}
	if s.c0 != quote {
		s.reportError(token.Location{Beg: beg, End: s.sourcePos()}, errors.KindUnterminatedString)
		return token.ILLEGAL
	}
	literal.Complete()
	s.advance()
	return token.STRING
}

// ============================================================================
// 转义序列
// ============================================================================

// scanEscape 求值反斜杠之后的转义序列并追加进煮熟缓冲
//
// captureRaw 为真时（模板串）越过的码点同时进入原始缓冲。
// 失败返回 false，具体错误已由子例程记录。
func (s *Scanner) scanEscape(captureRaw, inTemplate bool) bool {
	c := s.c0
	s.advanceWith(captureRaw)

	// 反斜杠加行终止符是续行，煮熟产物为空序列
	if !inTemplate && s.c0 != EndOfInput && isLineTerminator(c) {
		// \r\n 和 \n\r 各算一次续行
		if c == '\r' && s.c0 == '\n' {
			s.advanceWith(captureRaw)
		}
		if c == '\n' && s.c0 == '\r' {
			s.advanceWith(captureRaw)
		}
		return true
	}

	switch c {
	case '\'', '"', '\\', '`', '$':
		// 原样
	case 'b':
		c = '\b'
	case 'f':
		c = '\f'
	case 'n':
		c = '\n'
	case 'r':
		c = '\r'
	case 't':
		c = '\t'
	case 'v':
		c = '\v'
	case 'u':
		c = s.scanUnicodeEscape(captureRaw)
		if c < 0 {
			return false
		}
	case 'x':
		c = s.scanHexNumber(captureRaw, 2, false)
		if c < 0 {
			return false
		}
	case '0', '1', '2', '3', '4', '5', '6', '7':
		c = s.scanOctalEscape(captureRaw, c)
	}

	s.addLiteralChar(c)
	return true
}

func (s *Scanner) advanceWith(captureRaw bool) {
	if captureRaw {
		s.advanceRaw()
	} else {
		s.advance()
	}
}

// scanOctalEscape 遗留八进制转义 \0..\377，记录出现位置供严格模式拒绝
func (s *Scanner) scanOctalEscape(captureRaw bool, c rune) rune {
	value := c - '0'
	for i := 0; i < 2; i++ {
		d := s.c0 - '0'
		if d < 0 || d > 7 {
			break
		}
		next := value*8 + d
		if next > 255 {
			break
		}
		value = next
		s.advanceWith(captureRaw)
	}
	// "\0" 后面不跟数字时不算八进制写法
	if value != 0 || (s.c0 >= '0' && s.c0 <= '9') {
		pos := s.sourcePos()
		s.octalPos = token.Location{Beg: pos - 2, End: pos}
	}
	return value
}

// scanHexNumber 定长十六进制转义（\xNN 或 \uNNNN 的主体）
func (s *Scanner) scanHexNumber(captureRaw bool, expectedLength int, unicode bool) rune {
	begin := s.sourcePos() - 2
	var x rune
	for i := 0; i < expectedLength; i++ {
		d := hexDigitValue(s.c0)
		if d < 0 {
			kind := errors.KindInvalidHexEscape
			if unicode {
				kind = errors.KindInvalidUnicodeEscape
			}
			s.reportError(token.Location{Beg: begin, End: s.sourcePos()}, kind)
			return -1
		}
		x = x*16 + d
		s.advanceWith(captureRaw)
	}
	return x
}

// scanUnicodeEscape 已消费 \u，处理 \uNNNN 与 \u{N...} 两种形态
func (s *Scanner) scanUnicodeEscape(captureRaw bool) rune {
	if s.c0 == '{' {
		begin := s.sourcePos() - 2
		s.advanceWith(captureRaw)
		cp := s.scanUnlimitedLengthHexNumber(captureRaw, maxCodePoint, begin)
		if cp < 0 || s.c0 != '}' {
			s.reportError(token.Location{Beg: begin, End: s.sourcePos()}, errors.KindInvalidUnicodeEscape)
			return -1
		}
		s.advanceWith(captureRaw)
		return cp
	}
	return s.scanHexNumber(captureRaw, 4, true)
}

// scanUnlimitedLengthHexNumber 变长十六进制数，越界即失败
func (s *Scanner) scanUnlimitedLengthHexNumber(captureRaw bool, maxValue rune, begin int) rune {
	var x rune
	d := hexDigitValue(s.c0)
	if d < 0 {
		return -1
	}
	for d >= 0 {
		x = x*16 + d
		if x > maxValue {
			s.reportError(token.Location{Beg: begin, End: s.sourcePos() + 1}, errors.KindUndefinedCodePoint)
			return -1
		}
		s.advanceWith(captureRaw)
		d = hexDigitValue(s.c0)
	}
	return x
}

func hexDigitValue(c rune) rune {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return -1
}

// ============================================================================
// 模板串
// ============================================================================

// scanTemplateSpan 扫描模板串片段，直到 ` 或 ${
//
// 进入时起始的 ` 或 } 已被消费。煮熟缓冲求值转义，原始缓冲
// 保留源文本（仅 \r / \r\n 归一化为 \n）。
func (s *Scanner) scanTemplateSpan() token.Type {
	result := token.TEMPLATE_SPAN
	literal := s.newRawLiteralScope()
	defer literal.Done()

	for {
		c := s.c0
		if c == EndOfInput {
			s.reportError(token.Location{Beg: s.next.loc.Beg, End: s.sourcePos()}, errors.KindUnterminatedTemplate)
			result = token.ILLEGAL
			break
		}
		s.advanceRaw()
		if c == '`' {
			result = token.TEMPLATE_TAIL
			s.reduceRawLiteralLength(1)
			break
		}
		if c == '$' && s.c0 == '{' {
			s.advanceRaw()
			s.reduceRawLiteralLength(2)
			break
		}
		if c == '\\' {
			if s.c0 != EndOfInput && isLineTerminator(s.c0) {
				// 续行：原始文本保留归一化的换行，煮熟产物为空
				lastChar := s.c0
				s.advanceRaw()
				if lastChar == '\r' {
					s.reduceRawLiteralLength(1)
					if s.c0 == '\n' {
						s.advanceRaw()
						s.reduceRawLiteralLength(1)
					}
					s.addRawLiteralChar('\n')
				}
			} else if !s.scanEscape(true, true) {
				result = token.ILLEGAL
				break
			}
		} else if c == '\r' {
			// \r 和 \r\n 都归一化为 \n
			if s.c0 == '\n' {
				s.advanceRaw()
				s.reduceRawLiteralLength(1)
			}
			s.reduceRawLiteralLength(1)
			s.addRawLiteralChar('\n')
			s.addLiteralChar('\n')
		} else {
			s.addLiteralChar(c)
		}
	}

	literal.Complete()
	s.next.loc.End = s.sourcePos()
	s.next.token = result
	return result
}

// ScanTemplateContinuation 在替换洞的 } 之后续扫模板
//
// 语法分析器读到 RBRACE 且处于模板上下文时调用；next 被重写成
// 接下来的 TEMPLATE_SPAN / TEMPLATE_TAIL。
func (s *Scanner) ScanTemplateContinuation() token.Type {
	if s.next.token != token.RBRACE {
		panic("scanner: ScanTemplateContinuation without '}'")
	}
	// } 已被消费
	s.next.loc.Beg = s.sourcePos() - 1
	return s.scanTemplateSpan()
}

// ============================================================================
// 数字
// ============================================================================

func (s *Scanner) scanDecimalDigits() {
	for isDecimalDigit(s.c0) {
		s.addLiteralCharAdvance()
	}
}

func (s *Scanner) scanNumber(seenPeriod bool) token.Type {
	kind := numberDecimal
	start := s.next.loc.Beg

	literal := s.newLiteralScope()
	defer literal.Done()

	atStart := !seenPeriod
	if seenPeriod {
		// 进入时小数点已被消费
		s.addLiteralChar('.')
		s.scanDecimalDigits()
	} else {
		if s.c0 == '0' {
			s.addLiteralCharAdvance()
			switch {
			case s.c0 == 'x' || s.c0 == 'X':
				kind = numberHex
				s.addLiteralCharAdvance()
				if !isHexDigit(s.c0) {
					s.reportError(token.Location{Beg: start, End: s.sourcePos()}, errors.KindMalformedNumber)
					return token.ILLEGAL
				}
				for isHexDigit(s.c0) {
					s.addLiteralCharAdvance()
				}
			case s.c0 == 'o' || s.c0 == 'O':
				kind = numberOctal
				s.addLiteralCharAdvance()
				if !isOctalDigit(s.c0) {
					s.reportError(token.Location{Beg: start, End: s.sourcePos()}, errors.KindMalformedNumber)
					return token.ILLEGAL
				}
				for isOctalDigit(s.c0) {
					s.addLiteralCharAdvance()
				}
			case s.c0 == 'b' || s.c0 == 'B':
				kind = numberBinary
				s.addLiteralCharAdvance()
				if !isBinaryDigit(s.c0) {
					s.reportError(token.Location{Beg: start, End: s.sourcePos()}, errors.KindMalformedNumber)
					return token.ILLEGAL
				}
				for isBinaryDigit(s.c0) {
					s.addLiteralCharAdvance()
				}
			case isOctalDigit(s.c0):
				// 无前缀的遗留八进制 0777
				kind = numberImplicitOctal
				for {
					if s.c0 == '8' || s.c0 == '9' {
						atStart = false
						kind = numberDecimalWithLeadingZero
						break
					}
					if !isOctalDigit(s.c0) {
						s.octalPos = token.Location{Beg: start, End: s.sourcePos()}
						break
					}
					s.addLiteralCharAdvance()
				}
			case s.c0 == '8' || s.c0 == '9':
				kind = numberDecimalWithLeadingZero
			}
		}

		if kind == numberDecimal || kind == numberDecimalWithLeadingZero {
			if atStart {
				// 小整数快速路径：十位以内、无小数、无指数时
				// 扫描同时直接累加数值
				var value uint64
				digits := 0
				for isDecimalDigit(s.c0) {
					value = value*10 + uint64(s.c0-'0')
					digits++
					s.addLiteralChar(s.c0)
					s.advanceUnit()
				}
				s.handleLeadSurrogate()
				if digits <= 10 && value <= smiMaxValue &&
					s.c0 != '.' && !isIdentifierStart(s.c0) {
					s.next.smiValue = int(value)
					literal.Complete()
					if kind == numberDecimalWithLeadingZero {
						s.octalPos = token.Location{Beg: start, End: s.sourcePos()}
					}
					return token.SMI
				}
			}
			s.scanDecimalDigits()
			if s.c0 == '.' {
				s.addLiteralCharAdvance()
				s.scanDecimalDigits()
			}
		}
	}

	// 指数部分只属于十进制形态
	if s.c0 == 'e' || s.c0 == 'E' {
		if kind != numberDecimal && kind != numberDecimalWithLeadingZero {
			s.reportError(token.Location{Beg: start, End: s.sourcePos()}, errors.KindMalformedNumber)
			return token.ILLEGAL
		}
		s.addLiteralCharAdvance()
		if s.c0 == '+' || s.c0 == '-' {
			s.addLiteralCharAdvance()
		}
		if !isDecimalDigit(s.c0) {
			s.reportError(token.Location{Beg: start, End: s.sourcePos()}, errors.KindMalformedNumber)
			return token.ILLEGAL
		}
		s.scanDecimalDigits()
	}

	// 数字后直接跟标识符字符是词法错误（"3in" 不是两个 token）
	if isDecimalDigit(s.c0) || isIdentifierStart(s.c0) {
		s.reportError(token.Location{Beg: start, End: s.sourcePos()}, errors.KindMalformedNumber)
		return token.ILLEGAL
	}

	literal.Complete()
	if kind == numberDecimalWithLeadingZero {
		s.octalPos = token.Location{Beg: start, End: s.sourcePos()}
	}
	return token.NUMBER
}

// OctalPosition 最近一次遗留八进制写法的位置；未出现过时无效
func (s *Scanner) OctalPosition() token.Location {
	return s.octalPos
}

// ClearOctalPosition 清除八进制写法记录
func (s *Scanner) ClearOctalPosition() {
	s.octalPos = token.InvalidLocation()
}

// ============================================================================
// 标识符与关键字
// ============================================================================

// scanIdentifierUnicodeEscape 标识符内的 \uNNNN 转义
func (s *Scanner) scanIdentifierUnicodeEscape() rune {
	s.advance() // 越过反斜杠
	if s.c0 != 'u' {
		return -1
	}
	s.advance()
	return s.scanUnicodeEscape(false)
}

func (s *Scanner) scanIdentifierOrKeyword() token.Type {
	literal := s.newLiteralScope()
	defer literal.Done()

	escaped := false
	if s.c0 == '\\' {
		escaped = true
		begin := s.sourcePos()
		c := s.scanIdentifierUnicodeEscape()
		if c < 0 || !isIdentifierStart(c) {
			if !s.HasError() {
				s.reportError(token.Location{Beg: begin, End: s.sourcePos()}, errors.KindInvalidUnicodeEscape)
			}
			return token.ILLEGAL
		}
		s.addLiteralChar(c)
	} else {
		s.addLiteralChar(s.c0)
		s.advance()
	}

	for isIdentifierPart(s.c0) || s.c0 == '\\' {
		if s.c0 == '\\' {
			escaped = true
			begin := s.sourcePos()
			c := s.scanIdentifierUnicodeEscape()
			if c < 0 || !isIdentifierPart(c) {
				if !s.HasError() {
					s.reportError(token.Location{Beg: begin, End: s.sourcePos()}, errors.KindInvalidUnicodeEscape)
				}
				return token.ILLEGAL
			}
			s.addLiteralChar(c)
		} else {
			s.addLiteralChar(s.c0)
			s.advance()
		}
	}
	literal.Complete()

	// 含转义的标识符即使拼出关键字也只算普通标识符
	buf := s.next.literalChars
	if !escaped && buf.IsNarrow() {
		return token.LookupIdent(string(buf.NarrowChars()))
	}
	return token.IDENT
}

// ============================================================================
// 正则表达式（由语法分析器按上下文触发）
// ============================================================================

// RegExpFlags 正则标志位集合
type RegExpFlags int

const (
	RegExpGlobal RegExpFlags = 1 << iota
	RegExpIgnoreCase
	RegExpMultiline
	RegExpSticky
	RegExpUnicode
)

// ScanRegExpPattern 把已读出的 SLASH / SLASH_ASSIGN 重新解释为正则模式
//
// 语法分析器判定处于表达式位置时调用，seenEqual 区分两种起始 token。
// 模式文本进入 next 的字面量缓冲，成功时 next 变为 REGEXP。
func (s *Scanner) ScanRegExpPattern(seenEqual bool) bool {
	if s.next.token != token.SLASH && s.next.token != token.SLASH_ASSIGN {
		panic("scanner: ScanRegExpPattern without '/'")
	}
	beg := s.next.loc.Beg

	literal := s.newLiteralScope()
	defer literal.Done()
	if seenEqual {
		s.addLiteralChar('=')
	}

	inCharacterClass := false
	for s.c0 != '/' || inCharacterClass {
		if s.c0 == EndOfInput || isLineTerminator(s.c0) {
			s.reportError(token.Location{Beg: beg, End: s.sourcePos()}, errors.KindUnterminatedRegExp)
			return false
		}
		if s.c0 == '\\' {
			s.addLiteralCharAdvance()
			if s.c0 == EndOfInput || isLineTerminator(s.c0) {
				s.reportError(token.Location{Beg: beg, End: s.sourcePos()}, errors.KindUnterminatedRegExp)
				return false
			}
			s.addLiteralCharAdvance()
			continue
		}
		if s.c0 == '[' {
			inCharacterClass = true
		} else if s.c0 == ']' {
			inCharacterClass = false
		}
		s.addLiteralCharAdvance()
	}
	s.advance() // 越过结尾的 /
	literal.Complete()

	s.next.token = token.REGEXP
	s.next.loc.End = s.sourcePos()
	return true
}

// ScanRegExpFlags 紧随模式之后扫描标志字符
//
// 未知或重复的标志算错误。扩展 next 的跨度以覆盖标志。
func (s *Scanner) ScanRegExpFlags() (RegExpFlags, bool) {
	var flags RegExpFlags
	for isIdentifierPart(s.c0) {
		var flag RegExpFlags
		switch s.c0 {
		case 'g':
			flag = RegExpGlobal
		case 'i':
			flag = RegExpIgnoreCase
		case 'm':
			flag = RegExpMultiline
		case 'y':
			flag = RegExpSticky
		case 'u':
			flag = RegExpUnicode
		default:
			s.reportErrorAt(s.sourcePos(), errors.KindMalformedRegExpFlags)
			return 0, false
		}
		if flags&flag != 0 {
			s.reportErrorAt(s.sourcePos(), errors.KindMalformedRegExpFlags)
			return 0, false
		}
		flags |= flag
		s.advance()
	}
	s.next.loc.End = s.sourcePos()
	return flags, true
}

// ============================================================================
// 快进
// ============================================================================

// SeekForward 跳到给定位置并在那里重新预读
//
// pos 不得落在已预读 token 的内部。跳过区间内的换行不计入
// 自动分号插入状态。
func (s *Scanner) SeekForward(pos int) {
	if pos == s.next.loc.Beg {
		return
	}
	currentPos := s.sourcePos()
	if pos < currentPos {
		panic("scanner: SeekForward into already-scanned input")
	}
	if pos != currentPos {
		s.source.SeekForward(pos - s.source.Pos())
		s.advance()
		s.hasLineTerminatorBeforeNext = false
		s.hasMultilineCommentBeforeNext = false
	}
	s.scan()
}

// ============================================================================
// 书签
// ============================================================================

// SetBookmark 记录完整扫描状态，供之后一次 ResetToBookmark 回退
//
// 已有书签、存在 PeekAhead 预读、或底层流不支持回退时失败。
func (s *Scanner) SetBookmark() bool {
	if s.bookmark != bookmarkNotSet || s.nextNext.token != token.UNINITIALIZED {
		return false
	}
	if !s.source.SetBookmark() {
		return false
	}
	s.bookmarkC0 = s.c0
	copyTokenDesc(&s.bookmarkCurrent, &s.bookmarkCurrentLiteral, &s.bookmarkCurrentRaw, &s.current)
	copyTokenDesc(&s.bookmarkNext, &s.bookmarkNextLiteral, &s.bookmarkNextRaw, &s.next)
	s.bookmarkErr = s.err
	s.bookmarkErrLoc = s.errLoc
	s.bookmark = bookmarkSet
	return true
}

// ResetToBookmark 回退到书签状态
//
// 回退同时恢复当时的错误状态：投机扫描期间记录的错误随之丢弃。
func (s *Scanner) ResetToBookmark() {
	if s.bookmark != bookmarkSet {
		panic("scanner: ResetToBookmark without a set bookmark")
	}
	s.source.ResetToBookmark()
	s.c0 = s.bookmarkC0

	s.startLiteral()
	s.startRawLiteral()
	restoreTokenDesc(&s.next, &s.bookmarkCurrent)
	s.current = s.next
	s.startLiteral()
	s.startRawLiteral()
	restoreTokenDesc(&s.next, &s.bookmarkNext)
	s.nextNext.token = token.UNINITIALIZED

	s.err = s.bookmarkErr
	s.errLoc = s.bookmarkErrLoc
	s.bookmark = bookmarkApplied
}

// DropBookmark 释放书签；之后才能再次 SetBookmark
func (s *Scanner) DropBookmark() {
	s.bookmark = bookmarkNotSet
}

// BookmarkHasBeenSet 书签当前处于已设置状态
func (s *Scanner) BookmarkHasBeenSet() bool {
	return s.bookmark == bookmarkSet
}

// BookmarkHasBeenApplied 书签已被回退使用
func (s *Scanner) BookmarkHasBeenApplied() bool {
	return s.bookmark == bookmarkApplied
}

// copyTokenDesc 把描述符深拷贝进书签槽位（字面量内容进专用缓冲）
func copyTokenDesc(to *tokenDesc, lit, raw *LiteralBuffer, from *tokenDesc) {
	to.token = from.token
	to.loc = from.loc
	to.smiValue = from.smiValue
	if from.literalChars != nil {
		lit.CopyFrom(from.literalChars)
		to.literalChars = lit
	} else {
		to.literalChars = nil
	}
	if from.rawLiteralChars != nil {
		raw.CopyFrom(from.rawLiteralChars)
		to.rawLiteralChars = raw
	} else {
		to.rawLiteralChars = nil
	}
}

// restoreTokenDesc 把书签槽位的内容拷回轮换缓冲
func restoreTokenDesc(to *tokenDesc, from *tokenDesc) {
	to.token = from.token
	to.loc = from.loc
	to.smiValue = from.smiValue
	to.literalChars.CopyFrom(from.literalChars)
	to.rawLiteralChars.CopyFrom(from.rawLiteralChars)
}

// ============================================================================
// 字面量访问
// ============================================================================

// CurrentSymbol 当前 token 的煮熟文本
func (s *Scanner) CurrentSymbol() string {
	if s.current.literalChars == nil {
		return ""
	}
	return s.current.literalChars.String()
}

// NextSymbol 预读 token 的煮熟文本
func (s *Scanner) NextSymbol() string {
	if s.next.literalChars == nil {
		return ""
	}
	return s.next.literalChars.String()
}

// CurrentRawSymbol 当前 token 的原始文本（模板串）
func (s *Scanner) CurrentRawSymbol() string {
	if s.current.rawLiteralChars == nil {
		return ""
	}
	return s.current.rawLiteralChars.String()
}

// IsLiteralNarrow 当前字面量是否仍为窄编码
func (s *Scanner) IsLiteralNarrow() bool {
	return s.current.literalChars != nil && s.current.literalChars.IsNarrow()
}

// LiteralContainsEscapes 当前字面量的源跨度与煮熟长度不一致
// 即含有转义（或续行）
func (s *Scanner) LiteralContainsEscapes() bool {
	d := &s.current
	sourceLength := d.loc.End - d.loc.Beg
	if d.token == token.STRING {
		sourceLength -= 2
	}
	return d.literalChars.Length() != sourceLength
}

// LiteralMatches 当前字面量与给定 ASCII 串比较
//
// allowEscapes 为假时，含转义的字面量即使拼写相同也不匹配，
// 用于上下文关键字（转义写法不享受关键字语义）。
func (s *Scanner) LiteralMatches(data string, allowEscapes bool) bool {
	if s.current.literalChars == nil {
		return false
	}
	if !allowEscapes && s.LiteralContainsEscapes() {
		return false
	}
	return s.current.literalChars.EqualsKeyword(data)
}

// UnescapedLiteralMatches 不允许转义的便捷形态
func (s *Scanner) UnescapedLiteralMatches(data string) bool {
	return s.LiteralMatches(data, false)
}

// IsLiteralContextualKeyword 当前字面量是否为给定的上下文关键字
// （of、as、from 这类只在特定语法位置是关键字的标识符）
func (s *Scanner) IsLiteralContextualKeyword(keyword string) bool {
	return s.LiteralMatches(keyword, false)
}

// IsGetOrSet 对象字面量访问器语法的专用检查
func (s *Scanner) IsGetOrSet() (isGet, isSet bool) {
	isGet = s.UnescapedLiteralMatches("get")
	isSet = s.UnescapedLiteralMatches("set")
	return
}

// SmiValue 当前 SMI token 的整数值
func (s *Scanner) SmiValue() int {
	return s.current.smiValue
}

// DoubleValue 当前数字字面量的数值
func (s *Scanner) DoubleValue() float64 {
	return numconv.StringToDouble(s.CurrentSymbol(),
		numconv.AllowHex|numconv.AllowOctal|numconv.AllowBinary|numconv.AllowImplicitOctal)
}

// ContainsDot 当前数字字面量是否带小数点
func (s *Scanner) ContainsDot() bool {
	if s.current.literalChars == nil || !s.current.literalChars.IsNarrow() {
		return false
	}
	for _, b := range s.current.literalChars.NarrowChars() {
		if b == '.' {
			return true
		}
	}
	return false
}

// FindSymbol 把当前字面量作为符号键插入检测器
func (s *Scanner) FindSymbol(finder *DuplicateFinder, value int) int {
	buf := s.current.literalChars
	if buf.IsNarrow() {
		return finder.AddNarrowSymbol(buf.NarrowChars(), value)
	}
	return finder.AddWideSymbol(buf.WideChars(), value)
}

// FindNumber 把当前数字字面量作为规范化数字键插入检测器
func (s *Scanner) FindNumber(finder *DuplicateFinder, value int) int {
	return finder.AddNumber(s.current.literalChars.NarrowChars(), value)
}

// SourceURL 魔法注释 //# sourceURL= 的值；未出现时为空串
func (s *Scanner) SourceURL() string {
	return s.sourceURL.String()
}

// SourceMappingURL 魔法注释 //# sourceMappingURL= 的值
func (s *Scanner) SourceMappingURL() string {
	return s.sourceMappingURL.String()
}
