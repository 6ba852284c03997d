package api

import (
	"github.com/gestaolivre/brtypes/pkg/cep"
	"github.com/gestaolivre/brtypes/pkg/cnpj"
	"github.com/gestaolivre/brtypes/pkg/cpf"
	"github.com/gestaolivre/brtypes/pkg/document"
	"github.com/gestaolivre/brtypes/pkg/phone"
	"github.com/gestaolivre/brtypes/pkg/uf"
	"github.com/gestaolivre/brtypes/pkg/validator"
)

// Description is what the service reports about a valid value.
type Description struct {
	Kind      document.Kind `json:"kind"`
	Formatted string        `json:"formatted"`
	Raw       string        `json:"raw"`
	Masked    string        `json:"masked"`

	// CPF
	FiscalRegion *int    `json:"fiscal_region,omitempty"`
	FiscalStates []uf.UF `json:"fiscal_states,omitempty"`

	// CNPJ
	Root       string `json:"root,omitempty"`
	Branch     string `json:"branch,omitempty"`
	HeadOffice *bool  `json:"head_office,omitempty"`

	// CEP and phone
	State     uf.UF     `json:"state,omitempty"`
	StateName string    `json:"state_name,omitempty"`
	Region    uf.Region `json:"region,omitempty"`

	// phone
	AreaCode string `json:"area_code,omitempty"`
	Mobile   *bool  `json:"mobile,omitempty"`
	E164     string `json:"e164,omitempty"`
}

// rule returns the validation rule guarding kind.
func rule(kind document.Kind, field, value string) (validator.Rule, bool) {
	switch kind {
	case document.KindCPF:
		return validator.ValidCPF(field, value), true
	case document.KindCNPJ:
		return validator.ValidCNPJ(field, value), true
	case document.KindCEP:
		return validator.ValidCEP(field, value), true
	case document.KindPhone:
		return validator.ValidPhone(field, value), true
	default:
		return validator.Rule{}, false
	}
}

// Describe validates value as kind and describes it. Invalid input yields
// validator.ValidationErrors for field; an unsupported kind yields
// ErrUnknownKind.
func Describe(kind document.Kind, field, value string) (Description, error) {
	r, ok := rule(kind, field, value)
	if !ok {
		return Description{}, ErrUnknownKind
	}
	if err := validator.Apply(r); err != nil {
		return Description{}, err
	}

	switch kind {
	case document.KindCPF:
		return describeCPF(cpf.MustParse(value)), nil
	case document.KindCNPJ:
		return describeCNPJ(cnpj.MustParse(value)), nil
	case document.KindCEP:
		return describeCEP(cep.MustParse(value)), nil
	default:
		return describePhone(phone.MustParse(value)), nil
	}
}

func describeCPF(c cpf.CPF) Description {
	region := c.Region()
	n := int(region)
	return Description{
		Kind:         document.KindCPF,
		Formatted:    c.String(),
		Raw:          c.Raw(),
		Masked:       c.Masked(),
		FiscalRegion: &n,
		FiscalStates: region.States(),
	}
}

func describeCNPJ(c cnpj.CNPJ) Description {
	head := c.IsHeadOffice()
	return Description{
		Kind:       document.KindCNPJ,
		Formatted:  c.String(),
		Raw:        c.Raw(),
		Masked:     c.Masked(),
		Root:       c.Root(),
		Branch:     c.Branch(),
		HeadOffice: &head,
	}
}

func describeCEP(c cep.CEP) Description {
	d := Description{
		Kind:      document.KindCEP,
		Formatted: c.String(),
		Raw:       c.Raw(),
		Masked:    c.Masked(),
	}
	if state, ok := c.State(); ok {
		d.State = state
		d.StateName = state.Name()
		d.Region = state.Region()
	}
	return d
}

func describePhone(p phone.Phone) Description {
	mobile := p.Mobile()
	state := p.State()
	return Description{
		Kind:      document.KindPhone,
		Formatted: p.String(),
		Raw:       p.National(),
		Masked:    p.Masked(),
		State:     state,
		StateName: state.Name(),
		Region:    state.Region(),
		AreaCode:  p.AreaCode(),
		Mobile:    &mobile,
		E164:      p.E164(),
	}
}
