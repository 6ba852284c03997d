// Package cpf implements the Cadastro de Pessoas Físicas, the taxpayer number
// that identifies an individual in Brazil.
//
// A CPF is an immutable value holding the canonical 11-digit form of the
// number. Parse accepts punctuated or raw input, ignores anything that is not
// a digit and left-pads short input with zeros, so "581.194.436-59",
// "58119443659" and New(58119443659) are the same value. The zero value is the
// empty CPF 000.000.000-00; New(0) and Parse("000.000.000-00") return it too.
// Input without a single digit fails with ErrNoDigits.
//
// Parsing never rejects a number because of its check digits. Ask the value:
//
//	c, err := cpf.Parse("581.194.436-59")
//	if err != nil {
//	    // no digits, or more than 11
//	}
//	c.Valid()  // true
//	c.String() // "581.194.436-59"
//	c.Raw()    // "58119443659"
//	c.Masked() // "***.194.436-**"
//
// # Formatting
//
// CPF implements fmt.Formatter: %s and %v print the punctuated form, %d the
// raw digits and %q the quoted punctuated form. FormatAs exposes the same
// codes by name ("f", "r" and "m").
//
// # Encoding
//
// A CPF round-trips through encoding/json, encoding (text), gopkg.in/yaml.v3,
// the MongoDB BSON codec and database/sql. The empty CPF is written as null in
// JSON, YAML and BSON and as NULL in SQL.
package cpf
