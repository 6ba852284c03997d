package validator

import (
	"strings"

	"github.com/gestaolivre/brtypes/pkg/cep"
	"github.com/gestaolivre/brtypes/pkg/document"
	"github.com/gestaolivre/brtypes/pkg/phone"
	"github.com/gestaolivre/brtypes/pkg/uf"
)

// ValidCEP requires eight digits inside a range assigned to a state.
func ValidCEP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(document.Digits(value)) != cep.Length {
				return false
			}
			return cep.Validate(value)
		},
		Error: newError(field, "must be a valid CEP", "validation.cep"),
	}
}

// CEPInState requires a valid CEP belonging to state.
func CEPInState(field, value string, state uf.UF) Rule {
	return Rule{
		Check: func() bool {
			if len(document.Digits(value)) != cep.Length {
				return false
			}
			c, err := cep.Parse(value)
			if err != nil {
				return false
			}
			s, ok := c.State()
			return ok && s == state
		},
		Error: newError(field, "must be a CEP in "+state.Name(), "validation.cep_state", "state", state.Name()),
	}
}

// ValidPhone accepts any Brazilian landline or mobile number.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phone.Validate(value)
		},
		Error: newError(field, "must be a valid phone number", "validation.phone"),
	}
}

// ValidMobile accepts only mobile numbers.
func ValidMobile(field, value string) Rule {
	return Rule{
		Check: func() bool {
			p, err := phone.Parse(value)
			return err == nil && p.Mobile()
		},
		Error: newError(field, "must be a valid mobile number", "validation.mobile"),
	}
}

// ValidUF accepts a two-letter federative unit code in any case.
func ValidUF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := uf.Parse(value)
			return err == nil
		},
		Error: newError(field, "must be a valid state code", "validation.uf"),
	}
}

// OneOfUF restricts a federative unit code to the allowed set.
func OneOfUF(field, value string, allowed ...uf.UF) Rule {
	codes := make([]string, len(allowed))
	for i, a := range allowed {
		codes[i] = a.String()
	}
	return Rule{
		Check: func() bool {
			u, err := uf.Parse(value)
			if err != nil {
				return false
			}
			for _, a := range allowed {
				if u == a {
					return true
				}
			}
			return false
		},
		Error: newError(field, "must be one of "+strings.Join(codes, ", "), "validation.uf_one_of", "allowed", strings.Join(codes, ", ")),
	}
}
