package scanner

import (
	"strings"
	"testing"
)

func TestStringStreamAdvance(t *testing.T) {
	s := NewStringStream("ab")
	if c := s.Advance(); c != 'a' {
		t.Fatalf("got %q, want 'a'", c)
	}
	if s.Pos() != 1 {
		t.Errorf("pos mismatch: got %d, want 1", s.Pos())
	}
	if c := s.Advance(); c != 'b' {
		t.Fatalf("got %q, want 'b'", c)
	}
	// past the end: sentinel, but position still moves once
	if c := s.Advance(); c != EndOfInput {
		t.Fatalf("got %q, want EndOfInput", c)
	}
	if s.Pos() != 3 {
		t.Errorf("pos after end mismatch: got %d, want 3", s.Pos())
	}
}

func TestStringStreamUTF16Units(t *testing.T) {
	// astral chars occupy two code units
	s := NewStringStream("a\U0001F600b")
	units := []rune{'a', 0xD83D, 0xDE00, 'b'}
	for i, want := range units {
		if c := s.Advance(); c != want {
			t.Fatalf("unit[%d] mismatch: got %#x, want %#x", i, c, want)
		}
	}
	if c := s.Advance(); c != EndOfInput {
		t.Fatalf("got %#x, want EndOfInput", c)
	}
}

func TestStringStreamPushBack(t *testing.T) {
	s := NewStringStream("xy")
	c := s.Advance()
	s.PushBack(c)
	if s.Pos() != 0 {
		t.Errorf("pos after pushback: got %d, want 0", s.Pos())
	}
	if c := s.Advance(); c != 'x' {
		t.Errorf("re-read mismatch: got %q, want 'x'", c)
	}
}

func TestStringStreamSeekForward(t *testing.T) {
	s := NewStringStream("abcdef")
	s.Advance()
	if got := s.SeekForward(3); got != 3 {
		t.Fatalf("skipped %d, want 3", got)
	}
	if c := s.Advance(); c != 'e' {
		t.Errorf("got %q, want 'e'", c)
	}
	// clipped at the end
	if got := s.SeekForward(10); got != 1 {
		t.Errorf("skipped %d, want 1", got)
	}
}

func TestStringStreamBookmark(t *testing.T) {
	s := NewStringStream("abcd")
	s.Advance()
	if !s.SetBookmark() {
		t.Fatal("SetBookmark failed")
	}
	s.Advance()
	s.Advance()
	s.ResetToBookmark()
	if s.Pos() != 1 {
		t.Errorf("pos after reset: got %d, want 1", s.Pos())
	}
	if c := s.Advance(); c != 'b' {
		t.Errorf("got %q, want 'b'", c)
	}
}

func TestReaderStreamAdvance(t *testing.T) {
	s := NewReaderStream(strings.NewReader("a汉\U0001F600"))
	want := []rune{'a', 0x6C49, 0xD83D, 0xDE00}
	for i, w := range want {
		if c := s.Advance(); c != w {
			t.Fatalf("unit[%d] mismatch: got %#x, want %#x", i, c, w)
		}
	}
	if c := s.Advance(); c != EndOfInput {
		t.Fatalf("got %#x, want EndOfInput", c)
	}
	if s.Pos() != 5 {
		t.Errorf("pos after end mismatch: got %d, want 5", s.Pos())
	}
}

func TestReaderStreamPushBack(t *testing.T) {
	s := NewReaderStream(strings.NewReader("ab"))
	c1 := s.Advance()
	c2 := s.Advance()
	s.PushBack(c2)
	s.PushBack(c1)
	if s.Pos() != 0 {
		t.Errorf("pos after pushbacks: got %d, want 0", s.Pos())
	}
	if c := s.Advance(); c != 'a' {
		t.Errorf("got %q, want 'a'", c)
	}
	if c := s.Advance(); c != 'b' {
		t.Errorf("got %q, want 'b'", c)
	}
}

func TestReaderStreamSeekForward(t *testing.T) {
	s := NewReaderStream(strings.NewReader("abcdef"))
	if got := s.SeekForward(4); got != 4 {
		t.Fatalf("skipped %d, want 4", got)
	}
	if c := s.Advance(); c != 'e' {
		t.Errorf("got %q, want 'e'", c)
	}
	if got := s.SeekForward(10); got != 1 {
		t.Errorf("skipped %d, want 1", got)
	}
}

func TestReaderStreamNoBookmark(t *testing.T) {
	s := NewReaderStream(strings.NewReader("abc"))
	if s.SetBookmark() {
		t.Error("forward-only stream should refuse bookmarks")
	}
}
