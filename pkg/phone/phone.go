// Package phone parses and formats Brazilian telephone numbers.
//
// A number is a two-digit area code (DDD) followed by an eight-digit landline
// number starting with 2 through 5, or a nine-digit mobile number starting
// with 9. Parse accepts the forms people actually type: punctuated national
// numbers, the +55 country code, the 0 trunk prefix and the 0XX carrier
// selection prefix used for long-distance dialling.
//
//	p, err := phone.Parse("+55 (11) 91234-5678")
//	p.String() // "(11) 91234-5678"
//	p.E164()   // "+5511912345678"
//	p.Mobile() // true
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gestaolivre/brtypes/pkg/document"
	"github.com/gestaolivre/brtypes/pkg/uf"
)

const countryCode = "55"

var (
	ErrInvalidLength   = errors.New("phone number must have 10 or 11 digits with area code")
	ErrInvalidAreaCode = errors.New("unknown area code")
	ErrInvalidNumber   = errors.New("invalid subscriber number")
	ErrInvalidType     = document.ErrInvalidType
	ErrUnknownFormat   = document.ErrUnknownFormat
)

var areaCodes = map[string]uf.UF{
	"11": uf.SP, "12": uf.SP, "13": uf.SP, "14": uf.SP, "15": uf.SP,
	"16": uf.SP, "17": uf.SP, "18": uf.SP, "19": uf.SP,
	"21": uf.RJ, "22": uf.RJ, "24": uf.RJ,
	"27": uf.ES, "28": uf.ES,
	"31": uf.MG, "32": uf.MG, "33": uf.MG, "34": uf.MG, "35": uf.MG, "37": uf.MG, "38": uf.MG,
	"41": uf.PR, "42": uf.PR, "43": uf.PR, "44": uf.PR, "45": uf.PR, "46": uf.PR,
	"47": uf.SC, "48": uf.SC, "49": uf.SC,
	"51": uf.RS, "53": uf.RS, "54": uf.RS, "55": uf.RS,
	"61": uf.DF,
	"62": uf.GO, "64": uf.GO,
	"63": uf.TO,
	"65": uf.MT, "66": uf.MT,
	"67": uf.MS,
	"68": uf.AC,
	"69": uf.RO,
	"71": uf.BA, "73": uf.BA, "74": uf.BA, "75": uf.BA, "77": uf.BA,
	"79": uf.SE,
	"81": uf.PE, "87": uf.PE,
	"82": uf.AL,
	"83": uf.PB,
	"84": uf.RN,
	"85": uf.CE, "88": uf.CE,
	"86": uf.PI, "89": uf.PI,
	"91": uf.PA, "93": uf.PA, "94": uf.PA,
	"92": uf.AM, "97": uf.AM,
	"95": uf.RR,
	"96": uf.AP,
	"98": uf.MA, "99": uf.MA,
}

// Phone is a Brazilian telephone number. The zero value is the empty number.
type Phone struct {
	area   string
	number string
}

// Parse normalises s and checks area code and subscriber number.
func Parse(s string) (Phone, error) {
	d := document.Digits(s)

	switch {
	case strings.HasPrefix(d, "0") && (len(d) == 13 || len(d) == 14):
		// 0 + carrier + area code + number
		d = d[3:]
	case strings.HasPrefix(d, "0") && (len(d) == 11 || len(d) == 12):
		d = d[1:]
	case strings.HasPrefix(d, countryCode) && (len(d) == 12 || len(d) == 13):
		d = d[2:]
	}

	if len(d) != 10 && len(d) != 11 {
		return Phone{}, fmt.Errorf("phone %q: %w", s, ErrInvalidLength)
	}

	area, number := d[:2], d[2:]
	if _, ok := areaCodes[area]; !ok {
		return Phone{}, fmt.Errorf("phone %q: %w %s", s, ErrInvalidAreaCode, area)
	}

	switch len(number) {
	case 9:
		if number[0] != '9' {
			return Phone{}, fmt.Errorf("phone %q: %w: mobile numbers start with 9", s, ErrInvalidNumber)
		}
	case 8:
		if number[0] < '2' || number[0] > '5' {
			return Phone{}, fmt.Errorf("phone %q: %w: landline numbers start with 2 to 5", s, ErrInvalidNumber)
		}
	}

	return Phone{area: area, number: number}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Phone {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports whether s parses as a Brazilian phone number.
func Validate(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// ValidAreaCode reports whether ddd is an assigned two-digit area code.
func ValidAreaCode(ddd string) bool {
	_, ok := areaCodes[ddd]
	return ok
}

func (p Phone) Empty() bool {
	return p.number == ""
}

func (p Phone) AreaCode() string {
	return p.area
}

// Number returns the subscriber number without the area code.
func (p Phone) Number() string {
	return p.number
}

func (p Phone) Mobile() bool {
	return len(p.number) == 9
}

func (p Phone) Landline() bool {
	return len(p.number) == 8
}

// State returns the federative unit served by the area code.
func (p Phone) State() uf.UF {
	return areaCodes[p.area]
}

// National returns area code and number digits, e.g. 11912345678.
func (p Phone) National() string {
	return p.area + p.number
}

// E164 returns the international form +5511912345678, or "" when empty.
func (p Phone) E164() string {
	if p.Empty() {
		return ""
	}
	return "+" + countryCode + p.National()
}

// String returns the national form (11) 91234-5678, or "" when empty.
func (p Phone) String() string {
	if p.Empty() {
		return ""
	}
	split := len(p.number) - 4
	return "(" + p.area + ") " + p.number[:split] + "-" + p.number[split:]
}

// Masked keeps the area code and the last four digits: (11) *****-5678.
func (p Phone) Masked() string {
	if p.Empty() {
		return ""
	}
	split := len(p.number) - 4
	return "(" + p.area + ") " + strings.Repeat("*", split) + "-" + p.number[split:]
}

// FormatAs renders the number by format code: "" or "f" national
// punctuated, "r" national digits, "e" E.164, "m" masked.
func (p Phone) FormatAs(code string) (string, error) {
	switch code {
	case "", "f":
		return p.String(), nil
	case "r":
		return p.National(), nil
	case "e":
		return p.E164(), nil
	case "m":
		return p.Masked(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, code)
	}
}
