package main

import (
	"fmt"
	"os"

	"github.com/lumenlang/lumen/internal/errors"
	"github.com/lumenlang/lumen/internal/i18n"
	"github.com/lumenlang/lumen/internal/scanner"
	"github.com/lumenlang/lumen/internal/token"
)

// cmdCheck 扫描源文件并报告词法错误
func cmdCheck(args []string) {
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

	opts, cfg := scannerOptionsFor(path)
	s := scanner.NewWithOptions(scanner.NewStringStream(source), opts)
	rep := errors.NewReporter(source)

	scanner.ForEachToken(s, func(tok token.Type) {})

	failed := false
	if s.HasError() {
		fmt.Print(rep.Format(&errors.LexicalError{Kind: s.Error(), Loc: s.ErrorLocation(), File: path}))
		failed = true
	}
	if cfg.Language.StrictOctal && s.OctalPosition().IsValid() {
		fmt.Print(rep.Format(&errors.LexicalError{Kind: errors.KindLegacyOctal, Loc: s.OctalPosition(), File: path}))
		failed = true
	}

	if failed {
		fmt.Println(i18n.T(i18n.CliCheckFailed, path))
		os.Exit(1)
	}
	fmt.Println(i18n.T(i18n.CliCheckOK, path))
}
