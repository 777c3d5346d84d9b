package utils

import "testing"

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Maria", "maria"},
		{"  MARIA  ", "maria"},
		{"João da Silva", "joao silva"},
		{"joão  da   silva", "joao silva"},
		{"Ana de Souza dos Santos", "ana souza santos"},
		{"José", "jose"},
		{"ÂNGELA  CONCEIÇÃO", "angela conceicao"},
		{"de da do", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSameName(t *testing.T) {
	if !SameName("João da Silva", "joao silva") {
		t.Fatal("particle and accent variants should match")
	}
	if SameName("", "") {
		t.Fatal("empty names must never match")
	}
	if SameName("Maria", "Mariana") {
		t.Fatal("different names must not match")
	}
}

// TestNormalizeNameCollision pins known behavior: two genuinely different
// passengers can collapse to one key. The resolver accepts this ambiguity
// instead of inventing disambiguation the data cannot support.
func TestNormalizeNameCollision(t *testing.T) {
	a := NormalizeName("Maria dos Santos")
	b := NormalizeName("maria santos")
	if a != b {
		t.Fatalf("expected collision, got %q vs %q", a, b)
	}
}
