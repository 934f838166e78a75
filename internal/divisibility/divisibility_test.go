package divisibility

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestDivisibleBy11(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"121", true},
		{"123", false},
		{"-121", true},
		{"0", true},
		{"11", true},
		{"918082", true},
		{"10", false},
		{"123456789012345678901234567890", false},
		{"1111111111111111111111111111111111111111", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := ParseInteger(tt.input)
			if err != nil {
				t.Fatalf("ParseInteger(%q) failed: %v", tt.input, err)
			}
			if got := DivisibleBy11(n); got != tt.want {
				t.Errorf("DivisibleBy11(%s) = %v, want %v", tt.input, got, tt.want)
			}
			// cross-check against plain modular arithmetic
			mod := new(big.Int).Mod(n, big.NewInt(11))
			if (mod.Sign() == 0) != tt.want {
				t.Errorf("test case %s disagrees with n mod 11 = %s", tt.input, mod)
			}
		})
	}
}

func TestAlternatingDigitSum(t *testing.T) {
	tests := map[string]int{
		"121":  0,
		"-121": 0,
		"123":  2,
		"5":    5,
		"90":   9,
	}
	for in, want := range tests {
		if got := AlternatingDigitSum(in); got != want {
			t.Errorf("AlternatingDigitSum(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseInteger(t *testing.T) {
	for _, in := range []string{"42", " 42 ", "+42", "-42"} {
		if _, err := ParseInteger(in); err != nil {
			t.Errorf("ParseInteger(%q) unexpected error: %v", in, err)
		}
	}
	for _, in := range []string{"", "abc", "4.2", "12a", "--1"} {
		if _, err := ParseInteger(in); err == nil {
			t.Errorf("ParseInteger(%q) expected error", in)
		}
	}
}

func TestPromptRetriesUntilInteger(t *testing.T) {
	var out bytes.Buffer
	divisible, err := Prompt(strings.NewReader("eleven\n1.5\n121\n999\n"), &out)
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if !divisible {
		t.Error("expected 121 to be divisible")
	}

	text := out.String()
	if got := strings.Count(text, InvalidText); got != 2 {
		t.Errorf("expected 2 error messages, got %d:\n%s", got, text)
	}
	if got := strings.Count(text, PromptText); got != 3 {
		t.Errorf("expected 3 prompts, got %d:\n%s", got, text)
	}
	if !strings.HasSuffix(text, "This is divisible by 11\n") {
		t.Errorf("unexpected final output:\n%s", text)
	}
}

func TestPromptNotDivisible(t *testing.T) {
	var out bytes.Buffer
	divisible, err := Prompt(strings.NewReader("123\n"), &out)
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if divisible || !strings.Contains(out.String(), "This is not divisible by 11") {
		t.Errorf("expected not divisible, got %v:\n%s", divisible, out.String())
	}
}

func TestPromptEndOfInput(t *testing.T) {
	_, err := Prompt(strings.NewReader("nope\n"), &bytes.Buffer{})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}
