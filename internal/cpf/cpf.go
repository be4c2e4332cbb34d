// Package cpf implements the checksum validation of Brazilian individual
// taxpayer numbers (Cadastro de Pessoas Físicas).
//
// A CPF has 11 digits. The last two are check digits computed from the
// preceding ones with weighted modulo-11 sums. Callers can pass the number
// with or without punctuation ("529.982.247-25" or "52998224725").
//
// Everything in this package is pure and safe for concurrent use.
package cpf

import (
	"strings"

	"golang.org/x/text/width"
)

const (
	// Length is the number of digits of a normalized CPF.
	Length = 11

	// prefixLength is the number of digits the check digits are computed from.
	prefixLength = 9
)

// Normalize returns only the decimal digits of s.
//
// Full-width digits (as typed by some East Asian input methods) are folded to
// their ASCII form first, so "５２９" normalizes to "529".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	folded := width.Fold.String(s)

	var b strings.Builder
	b.Grow(Length)
	for _, r := range folded {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate reports whether s is a valid CPF.
//
// It never panics: empty input, garbage, and anything that does not normalize
// to exactly 11 digits are simply invalid. Sequences of 11 identical digits
// ("00000000000", "11111111111", ...) satisfy the checksum but are not issued,
// so they are rejected as well.
func Validate(s string) bool {
	digits := Normalize(s)
	if len(digits) != Length {
		return false
	}

	if isRepdigit(digits) {
		return false
	}

	d1, d2, ok := CheckDigits(digits[:prefixLength])
	if !ok {
		return false
	}

	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// CheckDigits computes both check digits for a 9-digit CPF prefix.
//
// The first digit weighs the prefix with 10..2, the second weighs the prefix
// plus the first digit with 11..2. ok is false when prefix is not exactly nine
// ASCII digits.
func CheckDigits(prefix string) (d1, d2 int, ok bool) {
	if len(prefix) != prefixLength {
		return 0, 0, false
	}

	values := make([]int, 0, prefixLength+1)
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c < '0' || c > '9' {
			return 0, 0, false
		}
		values = append(values, int(c-'0'))
	}

	d1 = checkDigit(values, prefixLength+1)
	values = append(values, d1)
	d2 = checkDigit(values, prefixLength+2)

	return d1, d2, true
}

// Format renders s in the usual ddd.ddd.ddd-dd mask.
// It returns false when s is not a valid CPF.
func Format(s string) (string, bool) {
	if !Validate(s) {
		return "", false
	}

	d := Normalize(s)
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11], true
}

// checkDigit multiplies values[i] by (firstWeight - i), sums the products
// and reduces the sum modulo 11. A remainder below 2 yields 0.
func checkDigit(values []int, firstWeight int) int {
	sum := 0
	for i, v := range values {
		sum += v * (firstWeight - i)
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func isRepdigit(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}
