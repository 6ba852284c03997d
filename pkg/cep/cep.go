// Package cep implements the Código de Endereçamento Postal, the eight-digit
// Brazilian postal code written as 01310-100.
//
// The first five digits (the prefix) locate a region, sector and
// sub-sector. Correios assigns contiguous prefix ranges to each federative
// unit, which State uses to resolve a code without any network lookup.
package cep

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/gestaolivre/brtypes/pkg/document"
	"github.com/gestaolivre/brtypes/pkg/uf"
)

// Length is the number of digits in a CEP.
const Length = document.CEPLength

const empty = "00000000"

var (
	ErrInvalidLength = document.ErrInvalidLength
	ErrNoDigits      = document.ErrNoDigits
	ErrUnknownFormat = document.ErrUnknownFormat
	ErrInvalidType   = document.ErrInvalidType
)

// CEP is a Brazilian postal code.
type CEP struct {
	digits string
}

type prefixRange struct {
	from, to int
	state    uf.UF
}

// ranges is sorted by from; prefixes 00000..00999 are unassigned.
var ranges = []prefixRange{
	{1000, 19999, uf.SP},
	{20000, 28999, uf.RJ},
	{29000, 29999, uf.ES},
	{30000, 39999, uf.MG},
	{40000, 48999, uf.BA},
	{49000, 49999, uf.SE},
	{50000, 56999, uf.PE},
	{57000, 57999, uf.AL},
	{58000, 58999, uf.PB},
	{59000, 59999, uf.RN},
	{60000, 63999, uf.CE},
	{64000, 64999, uf.PI},
	{65000, 65999, uf.MA},
	{66000, 68899, uf.PA},
	{68900, 68999, uf.AP},
	{69000, 69299, uf.AM},
	{69300, 69399, uf.RR},
	{69400, 69899, uf.AM},
	{69900, 69999, uf.AC},
	{70000, 72799, uf.DF},
	{72800, 72999, uf.GO},
	{73000, 73699, uf.DF},
	{73700, 76799, uf.GO},
	{76800, 76999, uf.RO},
	{77000, 77999, uf.TO},
	{78000, 78899, uf.MT},
	{79000, 79999, uf.MS},
	{80000, 87999, uf.PR},
	{88000, 89999, uf.SC},
	{90000, 99999, uf.RS},
}

// Parse builds a CEP from a raw or punctuated string. All zeros yield the
// zero value; input without digits returns ErrNoDigits.
func Parse(s string) (CEP, error) {
	d, err := document.Canonical(s, Length)
	if err != nil {
		return CEP{}, fmt.Errorf("cep %q: %w", s, err)
	}
	return CEP{digits: d}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) CEP {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Clean returns the digits of s left-padded to eight.
func Clean(s string) string {
	return document.Pad(document.Digits(s), Length)
}

// Validate reports whether s holds a CEP inside an assigned range.
func Validate(s string) bool {
	c, err := Parse(s)
	return err == nil && c.Valid()
}

func (c CEP) Raw() string {
	if c.digits == "" {
		return empty
	}
	return c.digits
}

func (c CEP) Empty() bool {
	return document.IsZero(c.digits)
}

// Valid reports whether the prefix falls inside a range assigned to a state.
// Unlike the tax documents, the empty CEP is not valid.
func (c CEP) Valid() bool {
	_, ok := c.State()
	return ok
}

// Prefix returns the first five digits as an integer.
func (c CEP) Prefix() int {
	n, _ := strconv.Atoi(c.Raw()[:5])
	return n
}

// State resolves the federative unit from the prefix range table.
func (c CEP) State() (uf.UF, bool) {
	p := c.Prefix()
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].to >= p })
	if i < len(ranges) && ranges[i].from <= p {
		return ranges[i].state, true
	}
	return "", false
}

// String returns the punctuated form 00000-000.
func (c CEP) String() string {
	d := c.Raw()
	return d[:5] + "-" + d[5:]
}

// Masked keeps only the prefix: 01310-***.
func (c CEP) Masked() string {
	return c.Raw()[:5] + "-***"
}

// FormatAs renders the CEP by format code: "" or "f" punctuated, "r" raw,
// "m" masked.
func (c CEP) FormatAs(code string) (string, error) {
	switch code {
	case "", "f":
		return c.String(), nil
	case "r":
		return c.Raw(), nil
	case "m":
		return c.Masked(), nil
	default:
		return "", fmt.Errorf("%w %q for cep.CEP", ErrUnknownFormat, code)
	}
}

// Format implements fmt.Formatter: %s and %v punctuated, %d raw.
func (c CEP) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = io.WriteString(f, c.String())
	case 'd':
		_, _ = io.WriteString(f, c.Raw())
	case 'q':
		_, _ = io.WriteString(f, strconv.Quote(c.String()))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(cep.CEP=%s)", verb, c.String())
	}
}
