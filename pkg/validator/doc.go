// Package validator provides declarative validation rules for Brazilian data:
// CPF and CNPJ numbers, postal codes, phone numbers and federative units.
//
// Each exported rule constructor returns a Rule value pairing a Check function
// with translation-friendly error metadata. Apply evaluates rules and gathers
// every failure into a ValidationErrors slice that satisfies the error
// interface, so several field problems surface in a single error return.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", form.Name),
//	    validator.ValidCPF("cpf", form.CPF),
//	    validator.ValidCEP("cep", form.CEP),
//	    validator.ValidMobile("phone", form.Phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, f := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// # Document rules
//
// The check-digit rules are stricter than cpf.Validate and cnpj.Validate: a
// form field holding the empty document (all zeros) or a number made of one
// repeated digit is rejected even though its checksum is correct. Use
// OptionalCPF and friends when an empty field is acceptable.
//
// # Translation
//
// Every ValidationError carries a TranslationKey such as "validation.cpf" and
// the values to interpolate. The i18n package ships pt-BR and English
// catalogs for these keys.
package validator
