package nickname

import "testing"

func TestGenerateLength(t *testing.T) {
	n, err := Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n) != length {
		t.Fatalf("len(n) = %d, want %d", len(n), length)
	}
	for _, c := range n {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			t.Fatalf("nickname %q contains non-alphanumeric rune %q", n, c)
		}
	}
}

func TestGenerateDiffers(t *testing.T) {
	a, err := Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Fatalf("two consecutive nicknames were identical: %q", a)
	}
}
