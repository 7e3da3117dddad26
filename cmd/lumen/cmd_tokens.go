package main

import (
	"fmt"
	"os"

	"github.com/lumenlang/lumen/internal/errors"
	"github.com/lumenlang/lumen/internal/i18n"
	"github.com/lumenlang/lumen/internal/scanner"
	"github.com/lumenlang/lumen/internal/token"
)

// cmdTokens 打印源文件的 token 流
func cmdTokens(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, i18n.T(i18n.CliErrNoInput))
		os.Exit(1)
	}
	path := args[0]

	source, err := readSource(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, i18n.T(i18n.CliErrReadFile, path, err))
		os.Exit(1)
	}

	opts, _ := scannerOptionsFor(path)
	s := scanner.NewWithOptions(scanner.NewStringStream(source), opts)
	rep := errors.NewReporter(source)

	scanner.ForEachToken(s, func(tok token.Type) {
		loc := s.Location()
		line, col := rep.LineColumn(loc.Beg)

		switch tok {
		case token.IDENT, token.STRING, token.TEMPLATE_SPAN, token.TEMPLATE_TAIL, token.REGEXP:
			fmt.Printf("%4d:%-3d %-14s %q\n", line, col, tok, s.CurrentSymbol())
		case token.SMI:
			fmt.Printf("%4d:%-3d %-14s %d\n", line, col, tok, s.SmiValue())
		case token.NUMBER:
			fmt.Printf("%4d:%-3d %-14s %v\n", line, col, tok, s.DoubleValue())
		default:
			fmt.Printf("%4d:%-3d %s\n", line, col, tok)
		}
	})

	if s.HasError() {
		fmt.Println()
		fmt.Print(rep.Format(&errors.LexicalError{Kind: s.Error(), Loc: s.ErrorLocation(), File: path}))
		os.Exit(1)
	}

	// 魔法注释随 token 流一并展示
	if url := s.SourceURL(); url != "" {
		fmt.Printf("\nsourceURL: %s\n", url)
	}
	if url := s.SourceMappingURL(); url != "" {
		fmt.Printf("sourceMappingURL: %s\n", url)
	}
}
