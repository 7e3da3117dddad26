package scanner

import "testing"

func TestDuplicateFinderSymbols(t *testing.T) {
	f := NewDuplicateFinder()

	if got := f.AddNarrowSymbol([]byte("foo"), 1); got != 1 {
		t.Fatalf("first insert returned %d, want 1", got)
	}
	if got := f.AddNarrowSymbol([]byte("foo"), 2); got != 1 {
		t.Errorf("duplicate returned %d, want the first value 1", got)
	}
	if got := f.AddNarrowSymbol([]byte("bar"), 3); got != 3 {
		t.Errorf("distinct key returned %d, want 3", got)
	}
	// repeats still report the original value
	if got := f.AddNarrowSymbol([]byte("foo"), 4); got != 1 {
		t.Errorf("third insert returned %d, want 1", got)
	}
}

func TestDuplicateFinderWideSymbols(t *testing.T) {
	f := NewDuplicateFinder()
	key := []uint16{0x4E2D, 0x6587}

	if got := f.AddWideSymbol(key, 1); got != 1 {
		t.Fatalf("first insert returned %d, want 1", got)
	}
	if got := f.AddWideSymbol(key, 2); got != 1 {
		t.Errorf("duplicate returned %d, want 1", got)
	}
}

func TestDuplicateFinderPrefixKeysDistinct(t *testing.T) {
	// the length prefix keeps "ab"+"c" and "a"+"bc" apart
	f := NewDuplicateFinder()
	f.AddNarrowSymbol([]byte("ab"), 1)
	if got := f.AddNarrowSymbol([]byte("abc"), 2); got != 2 {
		t.Errorf("prefix key collided: got %d, want 2", got)
	}
	if got := f.AddNarrowSymbol([]byte("a"), 3); got != 3 {
		t.Errorf("prefix key collided: got %d, want 3", got)
	}
}

func TestDuplicateFinderNumbers(t *testing.T) {
	tests := []struct {
		first  string
		second string
		same   bool
	}{
		{"1", "1.0", true},
		{"1", "0x1", true},
		{"15", "0o17", true},
		{"5", "0b101", true},
		{"1.5", "1.50", true},
		{"0.5", ".5", true},
		{"100", "1e2", true},
		{"1", "2", false},
		{"1.5", "1.05", false},
	}
	for _, tt := range tests {
		f := NewDuplicateFinder()
		f.AddNumber([]byte(tt.first), 1)
		got := f.AddNumber([]byte(tt.second), 2)
		if tt.same && got != 1 {
			t.Errorf("%q vs %q: should collide, got %d", tt.first, tt.second, got)
		}
		if !tt.same && got != 2 {
			t.Errorf("%q vs %q: should be distinct, got %d", tt.first, tt.second, got)
		}
	}
}

func TestDuplicateFinderLongKeys(t *testing.T) {
	// keys longer than the 6 bits of the first prefix byte
	f := NewDuplicateFinder()
	long := make([]byte, 1000)
	for i := range long {
		long[i] = byte('a' + i%26)
	}
	if got := f.AddNarrowSymbol(long, 1); got != 1 {
		t.Fatalf("first insert returned %d, want 1", got)
	}
	if got := f.AddNarrowSymbol(long, 2); got != 1 {
		t.Errorf("duplicate long key returned %d, want 1", got)
	}
}

func TestIsNumberCanonical(t *testing.T) {
	tests := []struct {
		input     string
		canonical bool
	}{
		{"0", true},
		{"1", true},
		{"123", true},
		{"1.5", true},
		{"0.5", true},
		{"1.0", false},  // trailing zero
		{"01", false},   // leading zero
		{"1.", false},   // bare point
		{".5", false},   // missing integer part
		{"0x10", false}, // radix prefix
		{"1e2", false},  // exponent form
		{"", false},
		{"1234567890123456", false}, // too long to trust
	}
	for _, tt := range tests {
		if got := isNumberCanonical([]byte(tt.input)); got != tt.canonical {
			t.Errorf("%q: got %v, want %v", tt.input, got, tt.canonical)
		}
	}
}
