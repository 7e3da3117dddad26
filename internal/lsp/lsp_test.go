package lsp

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/lumenlang/lumen/internal/scanner"
)

func testOptions() analyzeOptions {
	return analyzeOptions{
		scanner: scanner.Options{AllowExponentiationOperator: true},
	}
}

func TestAnalyzeCleanSource(t *testing.T) {
	diags := analyze("var x = 1 + 2;\nvar s = \"ok\";\n", testOptions())
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %d: %v", len(diags), diags)
	}
}

func TestAnalyzeTemplateWithHoles(t *testing.T) {
	diags := analyze("var t = `a${1 + {x: 2}.x}b${`inner`}c`;\n", testOptions())
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %d: %v", len(diags), diags)
	}
}

func TestAnalyzeUnterminatedTemplate(t *testing.T) {
	diags := analyze("var t = `a${1}b", testOptions())
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Code != "L0002" {
		t.Errorf("code = %v, want L0002", diags[0].Code)
	}
}

func TestAnalyzeUnterminatedString(t *testing.T) {
	diags := analyze("var s = \"abc", testOptions())
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v, want error", d.Severity)
	}
	if d.Code != "L0001" {
		t.Errorf("code = %v, want L0001", d.Code)
	}
	if d.Source != "lumen" {
		t.Errorf("source = %q, want lumen", d.Source)
	}
	// 错误区间覆盖字符串起始引号
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 8 {
		t.Errorf("range start = %v, want 0:8", d.Range.Start)
	}
}

func TestAnalyzeErrorOnSecondLine(t *testing.T) {
	diags := analyze("var a = 1;\nvar b = 0x;\n", testOptions())
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Code != "L0009" {
		t.Errorf("code = %v, want L0009", diags[0].Code)
	}
	if diags[0].Range.Start.Line != 1 {
		t.Errorf("line = %d, want 1", diags[0].Range.Start.Line)
	}
}

func TestAnalyzeStrictOctalWarning(t *testing.T) {
	opts := testOptions()
	opts.strictOctal = true
	diags := analyze("var n = 0755;\n", opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("severity = %v, want warning", diags[0].Severity)
	}
	if diags[0].Code != "L0010" {
		t.Errorf("code = %v, want L0010", diags[0].Code)
	}

	// 开关关闭时不告警
	if diags := analyze("var n = 0755;\n", testOptions()); len(diags) != 0 {
		t.Errorf("strictOctal off: expected no diagnostics, got %d", len(diags))
	}
}

func TestAnalyzeHtmlCommentWarning(t *testing.T) {
	opts := testOptions()
	opts.warnHtmlComments = true
	diags := analyze("<!-- hidden\nvar x = 1;\n", opts)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Code != "L0013" {
		t.Errorf("code = %v, want L0013", diags[0].Code)
	}
	if diags[0].Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("severity = %v, want warning", diags[0].Severity)
	}
	if diags[0].Range.Start.Line != 0 || diags[0].Range.Start.Character != 0 {
		t.Errorf("range start = %v, want 0:0", diags[0].Range.Start)
	}
}

func TestSemanticTokensEncoding(t *testing.T) {
	// var x = 10;
	// 0123456789
	data := semanticTokens("var x = 10;", scanner.Options{AllowExponentiationOperator: true})

	want := []uint32{
		0, 0, 3, semKeyword, 0, // var
		0, 4, 1, semVariable, 0, // x
		0, 2, 1, semOperator, 0, // =
		0, 2, 2, semNumber, 0, // 10
		0, 2, 1, semOperator, 0, // ;
	}
	if len(data) != len(want) {
		t.Fatalf("data length = %d, want %d\ngot:  %v", len(data), len(want), data)
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("data[%d] = %d, want %d\ngot:  %v\nwant: %v", i, data[i], want[i], data, want)
		}
	}
}

func TestSemanticTokensMultiLine(t *testing.T) {
	data := semanticTokens("var a;\nvar b;", scanner.Options{})
	// 第二行的 var 的 deltaLine 为 1，deltaStart 回到行首
	// 五元组: [0 0 3 kw 0] [0 4 1 var 0] [0 1 1 op 0] [1 0 3 kw 0] ...
	if len(data) < 20 {
		t.Fatalf("not enough tokens encoded: %v", data)
	}
	if data[15] != 1 || data[16] != 0 {
		t.Errorf("second-line var delta = (%d,%d), want (1,0)", data[15], data[16])
	}
}

func TestSemanticTokensUTF16Columns(t *testing.T) {
	// 😀 在 UTF-16 里占两个码元，字符串 token 长度按码元计
	data := semanticTokens(`var s = "😀"; var t = 1;`, scanner.Options{})
	// 字符串 "😀" 的长度应为 4：引号 + 代理对 + 引号
	found := false
	for i := 0; i+4 < len(data)+1; i += 5 {
		if data[i+3] == semString {
			if data[i+2] != 4 {
				t.Errorf("string token length = %d, want 4", data[i+2])
			}
			found = true
		}
	}
	if !found {
		t.Fatal("no string token encoded")
	}
}

func TestClassifyToken(t *testing.T) {
	data := semanticTokens("if (x) {}", scanner.Options{})
	// if 是关键字，x 是变量，括号花括号是运算符组
	if data[3] != semKeyword {
		t.Errorf("if classified as %d, want keyword", data[3])
	}
}

func TestDocumentManager(t *testing.T) {
	m := NewDocumentManager(NewLogger(""))
	docURI := uri.URI("file:///tmp/a.lum")

	m.Open(docURI, "var x;", 1)
	doc := m.Get(docURI)
	if doc == nil || doc.Text != "var x;" || doc.Version != 1 {
		t.Fatalf("Get after Open = %+v", doc)
	}

	m.Update(docURI, "var y;", 2)
	doc = m.Get(docURI)
	if doc.Text != "var y;" || doc.Version != 2 {
		t.Fatalf("Get after Update = %+v", doc)
	}

	m.Close(docURI)
	if m.Get(docURI) != nil {
		t.Fatal("document still present after Close")
	}
}

func frameMessage(body string) string {
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(body), body)
}

func TestReadMessageFraming(t *testing.T) {
	body := `{"jsonrpc":"2.0","method":"initialized"}`
	in := strings.NewReader(frameMessage(body))
	s := NewServerWithIO(in, &bytes.Buffer{}, NewLogger(""))

	msg, err := s.readMessage()
	if err != nil {
		t.Fatalf("readMessage: %v", err)
	}
	if string(msg) != body {
		t.Errorf("body = %q, want %q", msg, body)
	}
}

func TestReadMessageMissingLength(t *testing.T) {
	in := strings.NewReader("X-Unknown: 1\r\n\r\n{}")
	s := NewServerWithIO(in, &bytes.Buffer{}, NewLogger(""))
	if _, err := s.readMessage(); err == nil {
		t.Fatal("expected error for missing Content-Length")
	}
}

func TestInitializeResponse(t *testing.T) {
	var out bytes.Buffer
	s := NewServerWithIO(strings.NewReader(""), &out, NewLogger(""))

	s.handleMessage([]byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`))

	response := out.String()
	if !strings.HasPrefix(response, "Content-Length: ") {
		t.Fatalf("response missing framing header: %q", response)
	}
	bodyStart := strings.Index(response, "\r\n\r\n") + 4
	var parsed struct {
		ID     int `json:"id"`
		Result struct {
			Capabilities map[string]json.RawMessage `json:"capabilities"`
			ServerInfo   struct {
				Name string `json:"name"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(response[bodyStart:]), &parsed); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if parsed.ID != 1 {
		t.Errorf("id = %d, want 1", parsed.ID)
	}
	if parsed.Result.ServerInfo.Name != "lumenls" {
		t.Errorf("serverInfo.name = %q, want lumenls", parsed.Result.ServerInfo.Name)
	}
	if _, ok := parsed.Result.Capabilities["semanticTokensProvider"]; !ok {
		t.Error("capabilities missing semanticTokensProvider")
	}
	if _, ok := parsed.Result.Capabilities["textDocumentSync"]; !ok {
		t.Error("capabilities missing textDocumentSync")
	}
}

func TestDidOpenPublishesDiagnostics(t *testing.T) {
	var out bytes.Buffer
	s := NewServerWithIO(strings.NewReader(""), &out, NewLogger(""))

	params := `{"textDocument":{"uri":"file:///tmp/bad.lum","languageId":"lumen","version":1,"text":"var s = \"abc"}}`
	s.handleMessage([]byte(`{"jsonrpc":"2.0","method":"textDocument/didOpen","params":` + params + `}`))

	response := out.String()
	if !strings.Contains(response, "textDocument/publishDiagnostics") {
		t.Fatalf("no publishDiagnostics notification sent: %q", response)
	}
	if !strings.Contains(response, "L0001") {
		t.Errorf("diagnostics missing unterminated-string code: %q", response)
	}
}

func TestUnknownMethodError(t *testing.T) {
	var out bytes.Buffer
	s := NewServerWithIO(strings.NewReader(""), &out, NewLogger(""))

	s.handleMessage([]byte(`{"jsonrpc":"2.0","id":7,"method":"textDocument/rename","params":{}}`))

	if !strings.Contains(out.String(), "-32601") {
		t.Errorf("expected method-not-found error, got %q", out.String())
	}
}

func TestSemanticTokensRequest(t *testing.T) {
	var out bytes.Buffer
	s := NewServerWithIO(strings.NewReader(""), &out, NewLogger(""))

	open := `{"textDocument":{"uri":"file:///tmp/a.lum","languageId":"lumen","version":1,"text":"var x = 1;"}}`
	s.handleMessage([]byte(`{"jsonrpc":"2.0","method":"textDocument/didOpen","params":` + open + `}`))
	out.Reset()

	req := `{"textDocument":{"uri":"file:///tmp/a.lum"}}`
	s.handleMessage([]byte(`{"jsonrpc":"2.0","id":2,"method":"textDocument/semanticTokens/full","params":` + req + `}`))

	response := out.String()
	bodyStart := strings.Index(response, "\r\n\r\n") + 4
	var parsed struct {
		Result struct {
			Data []uint32 `json:"data"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(response[bodyStart:]), &parsed); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(parsed.Result.Data)%5 != 0 || len(parsed.Result.Data) == 0 {
		t.Fatalf("semantic token data length = %d, want non-empty multiple of 5", len(parsed.Result.Data))
	}
}

func TestExitSetsShutdown(t *testing.T) {
	s := NewServerWithIO(strings.NewReader(""), &bytes.Buffer{}, NewLogger(""))
	s.handleMessage([]byte(`{"jsonrpc":"2.0","method":"exit"}`))
	if !s.shutdown {
		t.Fatal("exit notification did not set shutdown")
	}
}
