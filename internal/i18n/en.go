package i18n

var messagesEN = map[string]string{
	// ========== Lexer ==========
	ErrUnterminatedString:   "unterminated string literal",
	ErrUnterminatedTemplate: "unterminated template literal",
	ErrUnterminatedComment:  "unterminated multi-line comment",
	ErrUnterminatedRegExp:   "unterminated regular expression literal",
	ErrInvalidEscape:        "invalid escape sequence",
	ErrInvalidHexEscape:     "invalid hexadecimal escape sequence",
	ErrInvalidUnicodeEscape: "invalid Unicode escape sequence",
	ErrUndefinedCodePoint:   "undefined Unicode code-point",
	ErrMalformedNumber:      "malformed numeric literal",
	ErrLegacyOctal:          "octal literals are not allowed in strict mode",
	ErrMalformedRegExpFlags: "invalid regular expression flags",
	ErrIllegalCharacter:     "illegal character",
	ErrHtmlComment:          "HTML-style comments are non-standard",

	// ========== CLI ==========
	CliVersionTitle:  "Lumen scanner v%s",
	CliHelpUsage:     "Usage:",
	CliHelpCommands:  "Commands:",
	CliHelpOptions:   "Options:",
	CliHelpExamples:  "Examples:",
	CliCmdTokens:     "print the token stream of a source file",
	CliCmdCheck:      "scan a source file and report lexical errors",
	CliCmdVersion:    "show version information",
	CliCmdHelp:       "show this help message",
	CliOptLang:       "set message language (en or zh)",
	CliErrNoInput:    "error: no input file",
	CliErrReadFile:   "error: cannot read %s: %v",
	CliErrUnknownCmd: "error: unknown command '%s'",
	CliCheckOK:       "%s: no lexical errors",
	CliCheckFailed:   "%s: lexical error found",
	CliCmdInit:       "create a lumen.toml in the current directory",
	CliInitCreating:  "creating %s",
	CliInitSuccess:   "project '%s' initialized",
	CliErrConfig:     "error: cannot write config: %v",
	CliErrConfigDup:  "error: %s already exists",
}
