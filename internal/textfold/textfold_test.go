package textfold_test

import (
	"testing"

	"protracker/internal/textfold"
)

func TestStripAccents(t *testing.T) {
	cases := []struct{ in, want string }{
		{"María", "Maria"},
		{"López", "Lopez"},
		{"Jiří", "Jiri"},
		{"Zoë", "Zoe"},
		{"François", "Francois"},
		{"Łukasz", "Lukasz"},
		{"Søren", "Soren"},
		{"Đorđe", "Dorde"},
		{"Strauß", "Strauss"},
		{"Plain", "Plain"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := textfold.StripAccents(tc.in); got != tc.want {
			t.Errorf("StripAccents(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEqualKeyStrokedLetters(t *testing.T) {
	if !textfold.EqualKey("Łukasz", "lukasz") {
		t.Fatal("expected Łukasz to match lukasz")
	}
	if !textfold.EqualKey("Søren", "SOREN") {
		t.Fatal("expected Søren to match SOREN")
	}
}

func TestEqualFold(t *testing.T) {
	if !textfold.EqualFold("JON", "jon") {
		t.Fatal("expected JON and jon to fold equal")
	}
	if !textfold.EqualFold("ÉLODIE", "élodie") {
		t.Fatal("expected non-ASCII case folding")
	}
	if textfold.EqualFold("Élodie", "Elodie") {
		t.Fatal("case folding must not strip accents")
	}
}

func TestEqualKey(t *testing.T) {
	if !textfold.EqualKey("María", "MARIA") {
		t.Fatal("expected accent and case insensitive equality")
	}
	if textfold.EqualKey("Maria", "Mario") {
		t.Fatal("different names must not compare equal")
	}
}
