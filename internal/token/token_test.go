package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Type
	}{
		{"var", VAR},
		{"let", LET},
		{"const", CONST},
		{"function", FUNCTION},
		{"if", IF},
		{"in", IN},
		{"do", DO},
		{"for", FOR},
		{"new", NEW},
		{"try", TRY},
		{"instanceof", INSTANCEOF},
		{"debugger", DEBUGGER},
		{"true", TRUE},
		{"false", FALSE},
		{"null", NULL},
		{"yield", YIELD},
		// 非关键字
		{"variable", IDENT},
		{"If", IDENT},
		{"fn", IDENT},
		{"", IDENT},
		{"eval", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []Type{VAR, EXPORT, INSTANCEOF, YIELD} {
		if !kw.IsKeyword() {
			t.Errorf("%v.IsKeyword() = false", kw)
		}
	}
	for _, tok := range []Type{IDENT, NUMBER, LBRACE, EOF, ILLEGAL, ASSIGN} {
		if tok.IsKeyword() {
			t.Errorf("%v.IsKeyword() = true", tok)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		tok  Type
		want string
	}{
		{EOF, "EOF"},
		{IDENT, "IDENT"},
		{TEMPLATE_SPAN, "TEMPLATE_SPAN"},
		{EXPONENT, "**"},
	}
	for _, tt := range tests {
		got := tt.tok.String()
		if got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.tok), got, tt.want)
		}
	}
}

func TestLocation(t *testing.T) {
	if !(Location{Beg: 0, End: 0}).IsValid() {
		t.Error("empty span at origin should be valid")
	}
	if !(Location{Beg: 3, End: 7}).IsValid() {
		t.Error("normal span should be valid")
	}
	if (Location{Beg: 5, End: 2}).IsValid() {
		t.Error("inverted span should be invalid")
	}
	if InvalidLocation().IsValid() {
		t.Error("InvalidLocation should be invalid")
	}
}
