package token

import "fmt"

// ============================================================================
// Token 类型定义
// ============================================================================
//
// Type 使用 iota 自动编号，按类别分组：
// 1. 特殊标记（ILLEGAL, UNINITIALIZED, EOF）
// 2. 字面量（标识符、数字、字符串、模板、正则）
// 3. 运算符（算术、赋值、比较、逻辑、位运算）
// 4. 分隔符（括号、逗号、分号等）
// 5. 关键字
//
// ============================================================================

// Type 表示 Token 的类型
type Type int

const (
	// ----------------------------------------------------------
	// 特殊标记
	// ----------------------------------------------------------
	ILLEGAL       Type = iota // 非法字符 / 词法错误
	UNINITIALIZED             // 未初始化（仅用于 next-next 槽位）
	EOF                       // 输入结束
	WHITESPACE                // 空白（扫描内部使用，不会产出给消费者）

	// ----------------------------------------------------------
	// 字面量
	// ----------------------------------------------------------
	IDENT         // 标识符
	NUMBER        // 数字字面量（通用路径）
	SMI           // 数字字面量（小整数快速路径）
	STRING        // 字符串字面量
	TEMPLATE_SPAN // 模板片段 `...${ 或 }...${
	TEMPLATE_TAIL // 模板结尾 `...` 或 }...`
	REGEXP        // 正则字面量（由消费者显式触发扫描）

	// ----------------------------------------------------------
	// 算术运算符
	// ----------------------------------------------------------
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	EXPONENT // ** （由语言开关控制）

	// ----------------------------------------------------------
	// 赋值运算符
	// ----------------------------------------------------------
	ASSIGN                      // =
	PLUS_ASSIGN                 // +=
	MINUS_ASSIGN                // -=
	STAR_ASSIGN                 // *=
	SLASH_ASSIGN                // /=
	PERCENT_ASSIGN              // %=
	EXPONENT_ASSIGN             // **=
	AND_ASSIGN                  // &=
	OR_ASSIGN                   // |=
	XOR_ASSIGN                  // ^=
	LEFT_SHIFT_ASSIGN           // <<=
	RIGHT_SHIFT_ASSIGN          // >>=
	UNSIGNED_RIGHT_SHIFT_ASSIGN // >>>=
	INCREMENT                   // ++
	DECREMENT                   // --

	// ----------------------------------------------------------
	// 比较运算符
	// ----------------------------------------------------------
	EQ        // ==
	STRICT_EQ // ===
	NE        // !=
	STRICT_NE // !==
	LT        // <
	LE        // <=
	GT        // >
	GE        // >=

	// ----------------------------------------------------------
	// 逻辑运算符
	// ----------------------------------------------------------
	AND // &&
	OR  // ||
	NOT // !

	// ----------------------------------------------------------
	// 位运算符
	// ----------------------------------------------------------
	BIT_AND              // &
	BIT_OR               // |
	BIT_XOR              // ^
	BIT_NOT              // ~
	LEFT_SHIFT           // <<
	RIGHT_SHIFT          // >>
	UNSIGNED_RIGHT_SHIFT // >>>

	// ----------------------------------------------------------
	// 分隔符
	// ----------------------------------------------------------
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	COLON     // :
	QUESTION  // ?
	ARROW     // =>
	ELLIPSIS  // ...

	// ----------------------------------------------------------
	// 关键字
	// ----------------------------------------------------------
	keyword_beg // 关键字起始标记（不是实际 token）
	VAR         // var
	LET         // let
	CONST       // const
	FUNCTION    // function
	RETURN      // return
	IF          // if
	ELSE        // else
	FOR         // for
	WHILE       // while
	DO          // do
	BREAK       // break
	CONTINUE    // continue
	SWITCH      // switch
	CASE        // case
	DEFAULT     // default
	NEW         // new
	DELETE      // delete
	TYPEOF      // typeof
	INSTANCEOF  // instanceof
	IN          // in
	THIS        // this
	NULL        // null
	TRUE        // true
	FALSE       // false
	VOID        // void
	CLASS       // class
	EXTENDS     // extends
	SUPER       // super
	TRY         // try
	CATCH       // catch
	FINALLY     // finally
	THROW       // throw
	WITH        // with
	DEBUGGER    // debugger
	YIELD       // yield
	IMPORT      // import
	EXPORT      // export
	keyword_end // 关键字结束标记（不是实际 token）
)

// ============================================================================
// Token 类型名称映射
// ============================================================================

var tokenNames = map[Type]string{
	// 特殊标记
	ILLEGAL:       "ILLEGAL",
	UNINITIALIZED: "UNINITIALIZED",
	EOF:           "EOF",
	WHITESPACE:    "WHITESPACE",

	// 字面量
	IDENT:         "IDENT",
	NUMBER:        "NUMBER",
	SMI:           "SMI",
	STRING:        "STRING",
	TEMPLATE_SPAN: "TEMPLATE_SPAN",
	TEMPLATE_TAIL: "TEMPLATE_TAIL",
	REGEXP:        "REGEXP",

	// 算术运算符
	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	EXPONENT: "**",

	// 赋值运算符
	ASSIGN:                      "=",
	PLUS_ASSIGN:                 "+=",
	MINUS_ASSIGN:                "-=",
	STAR_ASSIGN:                 "*=",
	SLASH_ASSIGN:                "/=",
	PERCENT_ASSIGN:              "%=",
	EXPONENT_ASSIGN:             "**=",
	AND_ASSIGN:                  "&=",
	OR_ASSIGN:                   "|=",
	XOR_ASSIGN:                  "^=",
	LEFT_SHIFT_ASSIGN:           "<<=",
	RIGHT_SHIFT_ASSIGN:          ">>=",
	UNSIGNED_RIGHT_SHIFT_ASSIGN: ">>>=",
	INCREMENT:                   "++",
	DECREMENT:                   "--",

	// 比较运算符
	EQ:        "==",
	STRICT_EQ: "===",
	NE:        "!=",
	STRICT_NE: "!==",
	LT:        "<",
	LE:        "<=",
	GT:        ">",
	GE:        ">=",

	// 逻辑运算符
	AND: "&&",
	OR:  "||",
	NOT: "!",

	// 位运算符
	BIT_AND:              "&",
	BIT_OR:               "|",
	BIT_XOR:              "^",
	BIT_NOT:              "~",
	LEFT_SHIFT:           "<<",
	RIGHT_SHIFT:          ">>",
	UNSIGNED_RIGHT_SHIFT: ">>>",

	// 分隔符
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	DOT:       ".",
	SEMICOLON: ";",
	COLON:     ":",
	QUESTION:  "?",
	ARROW:     "=>",
	ELLIPSIS:  "...",

	// 关键字
	VAR:        "var",
	LET:        "let",
	CONST:      "const",
	FUNCTION:   "function",
	RETURN:     "return",
	IF:         "if",
	ELSE:       "else",
	FOR:        "for",
	WHILE:      "while",
	DO:         "do",
	BREAK:      "break",
	CONTINUE:   "continue",
	SWITCH:     "switch",
	CASE:       "case",
	DEFAULT:    "default",
	NEW:        "new",
	DELETE:     "delete",
	TYPEOF:     "typeof",
	INSTANCEOF: "instanceof",
	IN:         "in",
	THIS:       "this",
	NULL:       "null",
	TRUE:       "true",
	FALSE:      "false",
	VOID:       "void",
	CLASS:      "class",
	EXTENDS:    "extends",
	SUPER:      "super",
	TRY:        "try",
	CATCH:      "catch",
	FINALLY:    "finally",
	THROW:      "throw",
	WITH:       "with",
	DEBUGGER:   "debugger",
	YIELD:      "yield",
	IMPORT:     "import",
	EXPORT:     "export",
}

// String 返回 Token 类型的可读名称
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsKeyword 判断是否为关键字
func (t Type) IsKeyword() bool {
	return t > keyword_beg && t < keyword_end
}

// IsAssignmentOp 判断是否为赋值运算符
func (t Type) IsAssignmentOp() bool {
	return t >= ASSIGN && t <= UNSIGNED_RIGHT_SHIFT_ASSIGN
}

// ============================================================================
// 关键字查找表
// ============================================================================
//
// keywords 将关键字字符串映射到对应的 Type。
// 用于在词法分析时区分标识符和关键字。
//
// ============================================================================

var keywords = map[string]Type{
	"var":        VAR,
	"let":        LET,
	"const":      CONST,
	"function":   FUNCTION,
	"return":     RETURN,
	"if":         IF,
	"else":       ELSE,
	"for":        FOR,
	"while":      WHILE,
	"do":         DO,
	"break":      BREAK,
	"continue":   CONTINUE,
	"switch":     SWITCH,
	"case":       CASE,
	"default":    DEFAULT,
	"new":        NEW,
	"delete":     DELETE,
	"typeof":     TYPEOF,
	"instanceof": INSTANCEOF,
	"in":         IN,
	"this":       THIS,
	"null":       NULL,
	"true":       TRUE,
	"false":      FALSE,
	"void":       VOID,
	"class":      CLASS,
	"extends":    EXTENDS,
	"super":      SUPER,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
	"throw":      THROW,
	"with":       WITH,
	"debugger":   DEBUGGER,
	"yield":      YIELD,
	"import":     IMPORT,
	"export":     EXPORT,
}

// ============================================================================
// 关键字查找函数
// ============================================================================

// LookupIdent 查找标识符是否为关键字
//
// 优化说明:
//   - 对于短关键字（2-3字符），使用 switch 语句直接匹配
//   - 短字符串的 switch 比 map 查找更快，因为避免了哈希计算
//   - 较长的关键字仍使用 map 查找
//
// 参数:
//   - ident: 标识符字符串
//
// 返回:
//   - Type: 如果是关键字返回对应类型，否则返回 IDENT
func LookupIdent(ident string) Type {
	switch len(ident) {
	case 2:
		// 两字符关键字：if, do, in
		switch ident {
		case "if":
			return IF
		case "do":
			return DO
		case "in":
			return IN
		}

	case 3:
		// 三字符关键字：var, let, for, new, try
		switch ident {
		case "var":
			return VAR
		case "let":
			return LET
		case "for":
			return FOR
		case "new":
			return NEW
		case "try":
			return TRY
		}

	default:
		if t, ok := keywords[ident]; ok {
			return t
		}
	}

	return IDENT
}
