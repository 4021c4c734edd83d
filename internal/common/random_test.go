package common

import (
	"regexp"
	"testing"
)

func TestMakeRandAlphanumeric_LengthAndAlphabet(t *testing.T) {
	re := regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	for _, n := range []int{1, MinPhraseLength, 64} {
		s, err := MakeRandAlphanumeric(n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s) != n {
			t.Fatalf("expected length %d, got %d", n, len(s))
		}
		if !re.MatchString(s) {
			t.Fatalf("non alphanumeric output: %q", s)
		}
	}
}

func TestMakeRandAlphanumeric_ZeroSize(t *testing.T) {
	s, err := MakeRandAlphanumeric(0)
	if err != nil {
		t.Fatalf("unexpected error for n=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string, got %q", s)
	}
}

func TestMakeRandAlphanumeric_Distinct(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		s, err := MakeRandAlphanumeric(MinPhraseLength)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate phrase after %d draws: %q", i, s)
		}
		seen[s] = struct{}{}
	}
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("admin123")
	WipeByteArray(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d not wiped: %q", i, c)
		}
	}
	WipeByteArray(nil)
}
