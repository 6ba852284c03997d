package cpf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gestaolivre/brtypes/pkg/document"
	"github.com/gestaolivre/brtypes/pkg/uf"
)

// Length is the number of digits in a canonical CPF.
const Length = document.CPFLength

const empty = "00000000000"

var (
	ErrInvalidLength = document.ErrInvalidLength
	ErrNoDigits      = document.ErrNoDigits
	ErrUnknownFormat = document.ErrUnknownFormat
	ErrInvalidType   = document.ErrInvalidType
)

// CPF is a Cadastro de Pessoas Físicas number.
type CPF struct {
	digits string
}

// Parse builds a CPF from a raw or punctuated string. All zeros yield the
// zero value; input without digits returns ErrNoDigits.
func Parse(s string) (CPF, error) {
	d, err := document.Canonical(s, Length)
	if err != nil {
		return CPF{}, fmt.Errorf("cpf %q: %w", s, err)
	}
	return CPF{digits: d}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) CPF {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a CPF from its integer representation.
func New(n uint64) (CPF, error) {
	return Parse(strconv.FormatUint(n, 10))
}

// Clean returns the digits of s left-padded to 11. Input with more than 11
// digits is returned without padding.
func Clean(s string) string {
	return document.Pad(document.Digits(s), Length)
}

// Validate reports whether s holds a CPF with correct check digits.
// Input without any digit is never valid.
func Validate(s string) bool {
	c, err := Parse(s)
	return err == nil && c.Valid()
}

// Generate returns a random valid CPF. A nil reader uses crypto/rand.
// Numbers made of a single repeated digit are never produced.
func Generate(r io.Reader) (CPF, error) {
	for {
		base, err := document.RandomDigits(r, 9)
		if err != nil {
			return CPF{}, err
		}
		if document.Repeated(base) {
			continue
		}
		return CPF{digits: base + checkDigits(base)}, nil
	}
}

// checkDigits computes the two verification digits for the first nine.
func checkDigits(base string) string {
	d1, d2 := 0, 0
	for i := 0; i < 9; i++ {
		c := int(base[i] - '0')
		d1 += (i + 1) * c
		d2 += i * c
	}
	d1 = d1 % 11 % 10
	d2 = (d2 + 9*d1) % 11 % 10
	return string([]byte{'0' + byte(d1), '0' + byte(d2)})
}

// Raw returns the 11 canonical digits.
func (c CPF) Raw() string {
	if c.digits == "" {
		return empty
	}
	return c.digits
}

// Empty reports whether the CPF is all zeros.
func (c CPF) Empty() bool {
	return document.IsZero(c.digits)
}

// Valid reports whether the check digits match. The empty CPF is valid.
func (c CPF) Valid() bool {
	d := c.Raw()
	return checkDigits(d[:9]) == d[9:]
}

// Repeated reports whether every digit is the same, as in 111.111.111-11.
// Such numbers pass the checksum but are never issued.
func (c CPF) Repeated() bool {
	return document.Repeated(c.Raw())
}

// Region returns the fiscal region encoded in the ninth digit.
func (c CPF) Region() uf.FiscalRegion {
	return uf.FiscalRegion(c.Raw()[8] - '0')
}

// String returns the punctuated form 000.000.000-00.
func (c CPF) String() string {
	d := c.Raw()
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// Masked hides the first block and the check digits: ***.194.436-**.
func (c CPF) Masked() string {
	d := c.Raw()
	return "***." + d[3:6] + "." + d[6:9] + "-**"
}

// FormatAs renders the CPF by format code: "" or "f" punctuated, "r" raw,
// "m" masked.
func (c CPF) FormatAs(code string) (string, error) {
	switch code {
	case "", "f":
		return c.String(), nil
	case "r":
		return c.Raw(), nil
	case "m":
		return c.Masked(), nil
	default:
		return "", fmt.Errorf("%w %q for cpf.CPF", ErrUnknownFormat, code)
	}
}

// Format implements fmt.Formatter.
func (c CPF) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = io.WriteString(f, c.String())
	case 'd':
		_, _ = io.WriteString(f, c.Raw())
	case 'q':
		_, _ = io.WriteString(f, strconv.Quote(c.String()))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(cpf.CPF=%s)", verb, c.String())
	}
}
