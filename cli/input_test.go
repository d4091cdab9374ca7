package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestInputCollector_TermsRepromptsOnInvalid(t *testing.T) {
	in := strings.NewReader("abc\n-5\n0\n100000\nNaN\n5\n0.5\n1.9\n")
	var out bytes.Buffer

	terms, err := NewInputCollector(in, &out).Terms()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if terms.Principal != 100000 || terms.AnnualRatePercent != 5 || terms.TermYears != 1 {
		t.Fatalf("unexpected terms %+v", terms)
	}

	got := out.String()
	if c := strings.Count(got, "please enter a valid number"); c != 2 {
		t.Errorf("expected 2 invalid-number errors, got %d:\n%s", c, got)
	}
	if c := strings.Count(got, "must be a positive number"); c != 2 {
		t.Errorf("expected 2 non-positive errors, got %d:\n%s", c, got)
	}
	if !strings.Contains(got, "at least one year") {
		t.Errorf("expected term error:\n%s", got)
	}
}

func TestInputCollector_EOF(t *testing.T) {
	_, err := NewInputCollector(strings.NewReader("1000\n"), io.Discard).Terms()
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestInputCollector_Confirm(t *testing.T) {
	tests := map[string]bool{
		"s":   true,
		"S":   true,
		"y":   true,
		"yes": true,
		"n":   false,
		"":    false,
		"no":  false,
	}
	for answer, want := range tests {
		got, err := NewInputCollector(strings.NewReader(answer+"\n"), io.Discard).Confirm("? ")
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", answer, err)
		}
		if got != want {
			t.Errorf("Confirm(%q) = %v, want %v", answer, got, want)
		}
	}
}
