// Package cnpj implements the Cadastro Nacional da Pessoa Jurídica, the
// taxpayer number that identifies a company and each of its establishments.
//
// A CNPJ has three parts: the root (raiz, eight digits) shared by every
// establishment of a company, the branch (extensão, four digits, 0001 for the
// head office) and two check digits. Like cpf.CPF, a CNPJ value holds the
// zero-padded canonical digits, and parsing never rejects a bad checksum.
//
//	c := cnpj.MustParse("58.414.462/0001-35")
//	c.Valid()        // true
//	c.Root()         // "58414462"
//	c.Branch()       // "0001"
//	c.IsHeadOffice() // true
package cnpj

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gestaolivre/brtypes/pkg/document"
)

// Length is the number of digits in a canonical CNPJ.
const Length = document.CNPJLength

const (
	empty      = "00000000000000"
	headOffice = "0001"
)

var (
	ErrInvalidLength = document.ErrInvalidLength
	ErrNoDigits      = document.ErrNoDigits
	ErrUnknownFormat = document.ErrUnknownFormat
	ErrInvalidType   = document.ErrInvalidType

	// ErrInvalidBranch is returned by WithBranch for a branch outside 1..9999.
	ErrInvalidBranch = errors.New("branch must be between 1 and 9999")
)

var weights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// CNPJ is a Cadastro Nacional da Pessoa Jurídica number.
type CNPJ struct {
	digits string
}

// Parse builds a CNPJ from a raw or punctuated string. All zeros yield the
// zero value; input without digits returns ErrNoDigits.
func Parse(s string) (CNPJ, error) {
	d, err := document.Canonical(s, Length)
	if err != nil {
		return CNPJ{}, fmt.Errorf("cnpj %q: %w", s, err)
	}
	return CNPJ{digits: d}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) CNPJ {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a CNPJ from its integer representation.
func New(n uint64) (CNPJ, error) {
	return Parse(strconv.FormatUint(n, 10))
}

// Clean returns the digits of s left-padded to 14. Input with more than 14
// digits is returned without padding.
func Clean(s string) string {
	return document.Pad(document.Digits(s), Length)
}

// Validate reports whether s holds a CNPJ with correct check digits.
// Input without any digit is never valid.
func Validate(s string) bool {
	c, err := Parse(s)
	return err == nil && c.Valid()
}

// Generate returns a random valid head-office CNPJ. A nil reader uses
// crypto/rand.
func Generate(r io.Reader) (CNPJ, error) {
	for {
		root, err := document.RandomDigits(r, 8)
		if err != nil {
			return CNPJ{}, err
		}
		if document.Repeated(root) {
			continue
		}
		base := root + headOffice
		return CNPJ{digits: base + checkDigits(base)}, nil
	}
}

func checkDigits(base string) string {
	d1 := document.Mod11(document.WeightedSum(base, weights[1:]))
	d2 := document.Mod11(document.WeightedSum(base, weights) + d1*weights[12])
	return string([]byte{'0' + byte(d1), '0' + byte(d2)})
}

// Raw returns the 14 canonical digits.
func (c CNPJ) Raw() string {
	if c.digits == "" {
		return empty
	}
	return c.digits
}

// Empty reports whether the CNPJ is all zeros.
func (c CNPJ) Empty() bool {
	return document.IsZero(c.digits)
}

// Valid reports whether the check digits match. The empty CNPJ is valid.
func (c CNPJ) Valid() bool {
	d := c.Raw()
	return checkDigits(d[:12]) == d[12:]
}

// Repeated reports whether every digit is the same.
func (c CNPJ) Repeated() bool {
	return document.Repeated(c.Raw())
}

// Root returns the eight digits identifying the company (raiz).
func (c CNPJ) Root() string {
	return c.Raw()[:8]
}

// Branch returns the four digits identifying the establishment (extensão).
func (c CNPJ) Branch() string {
	return c.Raw()[8:12]
}

func (c CNPJ) IsHeadOffice() bool {
	return c.Branch() == headOffice
}

// WithBranch returns the CNPJ of another establishment of the same company,
// with check digits recomputed.
func (c CNPJ) WithBranch(branch int) (CNPJ, error) {
	if branch < 1 || branch > 9999 {
		return CNPJ{}, ErrInvalidBranch
	}
	base := c.Root() + fmt.Sprintf("%04d", branch)
	return CNPJ{digits: base + checkDigits(base)}, nil
}

// SameCompany reports whether both numbers share the same root.
func (c CNPJ) SameCompany(other CNPJ) bool {
	return c.Root() == other.Root()
}

// String returns the punctuated form 00.000.000/0000-00.
func (c CNPJ) String() string {
	d := c.Raw()
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// Masked hides the leading block and the check digits: **.414.462/0001-**.
func (c CNPJ) Masked() string {
	d := c.Raw()
	return "**." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-**"
}

// FormatAs renders the CNPJ by format code: "" or "f" punctuated, "r" raw,
// "m" masked.
func (c CNPJ) FormatAs(code string) (string, error) {
	switch code {
	case "", "f":
		return c.String(), nil
	case "r":
		return c.Raw(), nil
	case "m":
		return c.Masked(), nil
	default:
		return "", fmt.Errorf("%w %q for cnpj.CNPJ", ErrUnknownFormat, code)
	}
}

// Format implements fmt.Formatter with the same verbs as cpf.CPF.
func (c CNPJ) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = io.WriteString(f, c.String())
	case 'd':
		_, _ = io.WriteString(f, c.Raw())
	case 'q':
		_, _ = io.WriteString(f, strconv.Quote(c.String()))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(cnpj.CNPJ=%s)", verb, c.String())
	}
}
