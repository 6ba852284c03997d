// Package sanitizer normalises free-form user input before it reaches the
// identifier parsers: trimming, collapsing whitespace, removing control
// characters and narrowing fullwidth forms.
//
// Transformations are plain func(string) string values that compose:
//
//	clean := sanitizer.Compose(sanitizer.NarrowWidth, sanitizer.RemoveControlChars, sanitizer.SingleLine)
//	value := clean(r.URL.Query().Get("cpf"))
package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/gestaolivre/brtypes/pkg/document"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Apply runs value through each transform in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose builds a reusable pipeline from transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NarrowWidth folds fullwidth letters, digits and punctuation to ASCII.
func NarrowWidth(s string) string {
	return width.Narrow.String(s)
}

// RemoveControlChars drops control characters except tab and line breaks.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine collapses every run of whitespace, line breaks included, into a
// single space and trims the result.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// KeepDigits keeps only ASCII digits, after narrowing fullwidth ones.
func KeepDigits(s string) string {
	return document.Digits(s)
}

// MaskDigits replaces every digit except the last visible ones with '*',
// leaving punctuation in place: "581.194.436-59" with 2 visible becomes
// "***.***.***-59".
func MaskDigits(s string, visible int) string {
	if visible < 0 {
		visible = 0
	}

	total := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			total++
		}
	}

	seen := 0
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return r
		}
		seen++
		if seen > total-visible {
			return r
		}
		return '*'
	}, s)
}

// Input is the pipeline applied to identifiers read from requests, files and
// command-line arguments.
var Input = Compose(NarrowWidth, RemoveControlChars, SingleLine)

// NormalizeDocument reduces a CPF, CNPJ or CEP as typed by a user to its
// bare digits.
var NormalizeDocument = Compose(Input, KeepDigits)
