package validator

import (
	"strings"

	"github.com/gestaolivre/brtypes/pkg/cnpj"
	"github.com/gestaolivre/brtypes/pkg/cpf"
	"github.com/gestaolivre/brtypes/pkg/document"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: newError(field, "field is required", "validation.required"),
	}
}

// ValidCPF requires all 11 digits of a CPF with correct check digits that is
// neither empty nor a single repeated digit. Unlike cpf.Parse it does not pad
// short input.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return checkCPF(value)
		},
		Error: newError(field, "must be a valid CPF", "validation.cpf"),
	}
}

// OptionalCPF behaves like ValidCPF but accepts a blank value.
func OptionalCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) == "" || checkCPF(value)
		},
		Error: newError(field, "must be a valid CPF", "validation.cpf"),
	}
}

// ValidCNPJ requires all 14 digits of a CNPJ with correct check digits that
// is neither empty nor a single repeated digit.
func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return checkCNPJ(value)
		},
		Error: newError(field, "must be a valid CNPJ", "validation.cnpj"),
	}
}

// OptionalCNPJ behaves like ValidCNPJ but accepts a blank value.
func OptionalCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) == "" || checkCNPJ(value)
		},
		Error: newError(field, "must be a valid CNPJ", "validation.cnpj"),
	}
}

// ValidDocument accepts either a valid CPF or a valid CNPJ, chosen by the
// number of digits in value.
func ValidDocument(field, value string) Rule {
	return Rule{
		Check: func() bool {
			switch document.Detect(value) {
			case document.KindCPF:
				return checkCPF(value)
			case document.KindCNPJ:
				return checkCNPJ(value)
			default:
				return false
			}
		},
		Error: newError(field, "must be a valid CPF or CNPJ", "validation.document"),
	}
}

// HeadOffice requires a valid CNPJ whose branch is 0001.
func HeadOffice(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !checkCNPJ(value) {
				return false
			}
			return cnpj.MustParse(value).IsHeadOffice()
		},
		Error: newError(field, "must be the CNPJ of a head office", "validation.cnpj_head_office"),
	}
}

func checkCPF(value string) bool {
	if len(document.Digits(value)) != cpf.Length {
		return false
	}
	c, err := cpf.Parse(value)
	if err != nil {
		return false
	}
	return !c.Empty() && !c.Repeated() && c.Valid()
}

func checkCNPJ(value string) bool {
	if len(document.Digits(value)) != cnpj.Length {
		return false
	}
	c, err := cnpj.Parse(value)
	if err != nil {
		return false
	}
	return !c.Empty() && !c.Repeated() && c.Valid()
}

// NotEmptyDocument rejects a value with no digits or with only zeros, the
// latter being the empty document for the parsers.
func NotEmptyDocument(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !document.IsZero(document.Digits(value))
		},
		Error: newError(field, "field is required", "validation.required"),
	}
}
