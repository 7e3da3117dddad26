package scanner

import "testing"

func TestLiteralBufferStartsNarrow(t *testing.T) {
	var b LiteralBuffer
	if !b.IsNarrow() {
		t.Fatal("fresh buffer should be narrow")
	}
	b.AddChar('a')
	b.AddChar(0xFF) // Latin-1 upper bound stays narrow
	if !b.IsNarrow() {
		t.Error("Latin-1 content should keep the buffer narrow")
	}
	if b.Length() != 2 {
		t.Errorf("length mismatch: got %d, want 2", b.Length())
	}
	if got := b.String(); got != "aÿ" {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestLiteralBufferWidensOnce(t *testing.T) {
	var b LiteralBuffer
	b.AddChar('a')
	b.AddChar('b')
	b.AddChar(0x100) // first non-Latin-1 char widens
	if b.IsNarrow() {
		t.Fatal("buffer should be wide after a non-Latin-1 char")
	}
	// earlier content survives the conversion
	units := b.WideChars()
	want := []uint16{'a', 'b', 0x100}
	if len(units) != len(want) {
		t.Fatalf("unit count mismatch: got %d, want %d", len(units), len(want))
	}
	for i, u := range units {
		if u != want[i] {
			t.Errorf("unit[%d] mismatch: got %#x, want %#x", i, u, want[i])
		}
	}
	// widening is one-way for this lifetime
	b.AddChar('c')
	if b.IsNarrow() {
		t.Error("buffer must stay wide once widened")
	}
}

func TestLiteralBufferSurrogatePair(t *testing.T) {
	var b LiteralBuffer
	b.AddChar(0x1F600)
	if b.IsNarrow() {
		t.Fatal("astral char should widen the buffer")
	}
	units := b.WideChars()
	if len(units) != 2 {
		t.Fatalf("astral char should append two units, got %d", len(units))
	}
	if units[0] != 0xD83D || units[1] != 0xDE00 {
		t.Errorf("surrogate pair mismatch: got %#x %#x", units[0], units[1])
	}
	if got := b.String(); got != "\U0001F600" {
		t.Errorf("round trip mismatch: got %q", got)
	}
}

func TestLiteralBufferGrowth(t *testing.T) {
	var b LiteralBuffer
	for i := 0; i < 10000; i++ {
		b.AddChar(rune('a' + i%26))
	}
	if b.Length() != 10000 {
		t.Fatalf("length mismatch: got %d", b.Length())
	}
	content := b.NarrowChars()
	for i, c := range content {
		if c != byte('a'+i%26) {
			t.Fatalf("content corrupted at %d after growth", i)
		}
	}
}

func TestLiteralBufferReduceLength(t *testing.T) {
	var b LiteralBuffer
	for _, c := range "hello${" {
		b.AddChar(c)
	}
	b.ReduceLength(2)
	if got := b.String(); got != "hello" {
		t.Errorf("content mismatch: got %q, want %q", got, "hello")
	}
}

func TestLiteralBufferReset(t *testing.T) {
	var b LiteralBuffer
	b.AddChar(0x4E2D)
	if b.IsNarrow() {
		t.Fatal("setup: buffer should be wide")
	}
	b.Reset()
	if !b.IsNarrow() {
		t.Error("reset should return the buffer to narrow")
	}
	if b.Length() != 0 {
		t.Error("reset should empty the buffer")
	}
	b.AddChar('x')
	if got := b.String(); got != "x" {
		t.Errorf("reuse after reset failed: got %q", got)
	}
}

func TestLiteralBufferCopyFrom(t *testing.T) {
	var src, dst LiteralBuffer
	src.AddChar('汉')
	dst.AddChar('x')
	dst.CopyFrom(&src)
	if got := dst.String(); got != "汉" {
		t.Errorf("copy mismatch: got %q", got)
	}
	if dst.IsNarrow() {
		t.Error("copy should carry the encoding")
	}
	dst.CopyFrom(nil)
	if dst.Length() != 0 || !dst.IsNarrow() {
		t.Error("CopyFrom(nil) should behave like Reset")
	}
}

func TestLiteralBufferEqualsKeyword(t *testing.T) {
	var b LiteralBuffer
	for _, c := range "return" {
		b.AddChar(c)
	}
	if !b.EqualsKeyword("return") {
		t.Error("EqualsKeyword should match identical content")
	}
	if b.EqualsKeyword("returns") || b.EqualsKeyword("retur") {
		t.Error("EqualsKeyword should require exact length")
	}

	var wide LiteralBuffer
	wide.AddChar(0x100)
	if wide.EqualsKeyword("Ā") {
		t.Error("wide buffers never match ASCII keywords")
	}
}
