// Package document holds the pieces shared by the Brazilian identifier
// types: digit extraction, canonical zero padding, weighted modulo-11 sums,
// random digit generation and the decoding helpers used by the database/sql,
// BSON and YAML integrations.
//
// The identifier packages (cpf, cnpj, cep, phone) build on it; most callers
// never import document directly except for Detect, which guesses the kind of
// a raw identifier from its digit count:
//
//	switch document.Detect(input) {
//	case document.KindCPF:
//	    // ...
//	case document.KindCNPJ:
//	    // ...
//	}
//
// # Error Handling
//
// ErrInvalidLength, ErrUnknownFormat and ErrInvalidType are shared sentinels.
// The identifier packages re-export them so errors.Is works against either
// name.
package document
