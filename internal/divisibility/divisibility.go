// Package divisibility checks integers for divisibility by 11 with the
// alternating digit sum rule.
package divisibility

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

const (
	// PromptText asks for the next number
	PromptText = "Enter a number: "
	// InvalidText is shown when the input is not an integer
	InvalidText = "Error: That's not an integer!"
)

// ErrNoInput is returned when input ends before an integer was read
var ErrNoInput = errors.New("input ended before an integer was entered")

// AlternatingDigitSum adds the digits at even positions and subtracts the
// digits at odd positions, counting from the left. A leading minus sign is
// ignored.
func AlternatingDigitSum(digits string) int {
	digits = strings.TrimPrefix(digits, "-")
	sum := 0
	for i, r := range digits {
		d := int(r - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum -= d
		}
	}
	return sum
}

// DivisibleBy11 reports whether n is a multiple of 11
func DivisibleBy11(n *big.Int) bool {
	return AlternatingDigitSum(n.String())%11 == 0
}

// ParseInteger parses a base-10 integer of any size, with an optional sign
// and surrounding whitespace.
func ParseInteger(line string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(line), 10)
	if !ok {
		return nil, fmt.Errorf("parsing %q: not an integer", line)
	}
	return n, nil
}

// Message describes the result for the user
func Message(divisible bool) string {
	if divisible {
		return "This is divisible by 11"
	}
	return "This is not divisible by 11"
}

// Prompt reads lines from r until one parses as an integer, re-prompting
// on w after every invalid line, then writes the result.
func Prompt(r io.Reader, w io.Writer) (bool, error) {
	scanner := bufio.NewScanner(r)
	fmt.Fprint(w, PromptText)
	for scanner.Scan() {
		n, err := ParseInteger(scanner.Text())
		if err != nil {
			fmt.Fprintln(w, InvalidText)
			fmt.Fprint(w, PromptText)
			continue
		}

		divisible := DivisibleBy11(n)
		fmt.Fprintln(w, Message(divisible))
		return divisible, nil
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}
	return false, ErrNoInput
}
