package document

import (
	"crypto/rand"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/width"
)

// Digits returns the ASCII digits of s in order.
// Fullwidth digits (U+FF10..U+FF19) are narrowed first so input pasted from
// East Asian keyboards or PDFs still cleans correctly.
func Digits(s string) string {
	s = width.Narrow.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Pad left-pads digits with zeros up to n characters.
// Values already n digits or longer are returned unchanged.
func Pad(digits string, n int) string {
	if len(digits) >= n {
		return digits
	}
	return strings.Repeat("0", n-len(digits)) + digits
}

// Canonical extracts the digits of s and pads them to exactly n.
// An all-zero value yields "", the canonical empty form. It returns
// ErrNoDigits when s holds no digits and ErrInvalidLength when it holds more
// than n.
func Canonical(s string, n int) (string, error) {
	d := Digits(s)
	switch {
	case d == "":
		return "", ErrNoDigits
	case len(d) > n:
		return d, ErrInvalidLength
	case IsZero(d):
		return "", nil
	}
	return Pad(d, n), nil
}

// IsZero reports whether digits consists only of zeros. The empty string is zero.
func IsZero(digits string) bool {
	return strings.Trim(digits, "0") == ""
}

// Repeated reports whether every digit of a non-empty string is the same.
func Repeated(digits string) bool {
	if digits == "" {
		return false
	}
	return strings.Count(digits, digits[:1]) == len(digits)
}

// WeightedSum multiplies each digit by the weight at the same position and
// sums the products. Extra digits or weights are ignored.
func WeightedSum(digits string, weights []int) int {
	sum := 0
	for i := 0; i < len(digits) && i < len(weights); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	return sum
}

// Mod11 maps a weighted sum to a check digit using the Receita Federal rule:
// a remainder of 0 or 1 yields 0, any other remainder r yields 11-r.
func Mod11(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// RandomDigits returns n uniformly distributed decimal digits read from r.
// A nil reader falls back to crypto/rand.
func RandomDigits(r io.Reader, n int) (string, error) {
	if r == nil {
		r = rand.Reader
	}

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", errors.Join(ErrRandomSource, err)
		}
		for _, b := range buf {
			// Reject 250..255 to keep b%10 uniform.
			if b >= 250 {
				continue
			}
			out = append(out, '0'+b%10)
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
