// Package puzzles contains small solvers reading their input from a stream.
package puzzles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrMissingInput signals that an input stream ended prematurely.
var ErrMissingInput = errors.New("puzzles: missing input")

// DivisibleSubstrings counts the substrings of decimal digits in r whose value
// is divisible by 3. Whitespace is skipped, any other non-digit character
// separates runs of digits.
func DivisibleSubstrings(r io.Reader) (int64, error) {
	// mods[k] counts the substrings ending at the current digit with a digit
	// sum ≡ k (mod 3)
	var mods [3]int64
	var count int64
	br := bufio.NewReader(r)
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return count, fmt.Errorf("puzzles: reading input: %w", err)
		}
		if unicode.IsSpace(c) {
			continue
		}
		if c < '0' || c > '9' {
			mods = [3]int64{}
			continue
		}
		d := int(c-'0') % 3
		var shifted [3]int64
		for k := range 3 {
			shifted[(k+d)%3] = mods[k]
		}
		mods = shifted
		mods[d]++
		count += mods[0]
	}
	return count, nil
}

// PeanoProduct reads two Peano numerals from the first two lines of r and
// returns their product as a Peano numeral. A numeral's value is the number of
// 'S' characters on its line, i.e. "S(S(0))" is 2. The product is rendered in
// the same notation.
func PeanoProduct(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	var operands [2]int
	for i := range operands {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("puzzles: reading input: %w", err)
			}
			return "", fmt.Errorf("%w: expected 2 numerals, got %d", ErrMissingInput, i)
		}
		operands[i] = strings.Count(scanner.Text(), "S")
	}
	n := operands[0] * operands[1]
	return Peano(n), nil
}

// Peano renders n ≥ 0 as a Peano numeral. Negative values render as "0".
func Peano(n int) string {
	if n < 0 {
		n = 0
	}
	var b strings.Builder
	b.Grow(3*n + 1)
	for range n {
		b.WriteString("S(")
	}
	b.WriteByte('0')
	for range n {
		b.WriteByte(')')
	}
	return b.String()
}
