package errors

import (
	"strings"
	"testing"

	"github.com/lumenlang/lumen/internal/token"
)

func TestLineColumn(t *testing.T) {
	rep := NewReporter("var a;\nvar b = 1;\n")

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{6, 1, 7},  // 行尾的换行符仍属第一行
		{7, 2, 1},  // 第二行行首
		{15, 2, 9}, // '1'
		{-1, 1, 1}, // 无效偏移兜底
	}
	for _, tt := range tests {
		line, col := rep.LineColumn(tt.offset)
		if line != tt.line || col != tt.column {
			t.Errorf("LineColumn(%d) = (%d,%d), want (%d,%d)", tt.offset, line, col, tt.line, tt.column)
		}
	}
}

func TestLineColumnWideSource(t *testing.T) {
	// 汉字每个占一个 UTF-16 码元，列号按码元计
	rep := NewReporter("var 变量 = 1;")
	line, col := rep.LineColumn(7) // '='
	if line != 1 || col != 8 {
		t.Errorf("LineColumn(7) = (%d,%d), want (1,8)", line, col)
	}
}

func TestFormat(t *testing.T) {
	colorsEnabled = false
	defer func() { colorsEnabled = detectColorSupport() }()

	rep := NewReporter("var s = \"abc\nvar t = 1;\n")
	out := rep.Format(&LexicalError{
		Kind: KindUnterminatedString,
		Loc:  token.Location{Beg: 8, End: 12},
		File: "main.lum",
	})

	if !strings.Contains(out, "error[L0001]") {
		t.Errorf("missing error code header:\n%s", out)
	}
	if !strings.Contains(out, "main.lum:1:9") {
		t.Errorf("missing file:line:col:\n%s", out)
	}
	if !strings.Contains(out, `var s = "abc`) {
		t.Errorf("missing source line:\n%s", out)
	}
	if !strings.Contains(out, "^^^^") {
		t.Errorf("missing underline:\n%s", out)
	}
}

func TestFormatWithoutSource(t *testing.T) {
	colorsEnabled = false
	defer func() { colorsEnabled = detectColorSupport() }()

	rep := NewReporter("var x = 0y;")
	rep.ShowSource = false
	out := rep.Format(&LexicalError{
		Kind: KindIllegalCharacter,
		Loc:  token.Location{Beg: 9, End: 10},
		File: "a.lum",
	})
	if strings.Contains(out, "var x") {
		t.Errorf("source line shown with ShowSource=false:\n%s", out)
	}
	if !strings.Contains(out, "a.lum:1:10") {
		t.Errorf("missing position:\n%s", out)
	}
}

func TestKindCodesUnique(t *testing.T) {
	seen := map[string]Kind{}
	for kind, code := range kindCodes {
		if prev, ok := seen[code]; ok {
			t.Errorf("code %s assigned to both %d and %d", code, prev, kind)
		}
		seen[code] = kind
	}
}

func TestKindMessageFallback(t *testing.T) {
	if Kind(9999).Code() != "L0000" {
		t.Errorf("unknown kind code = %s, want L0000", Kind(9999).Code())
	}
	if msg := KindUnterminatedString.Message(); msg == "" {
		t.Error("empty message for known kind")
	}
}
