// Package i18n translates user-facing messages, chiefly the validation
// messages produced by the validator package, into the caller's language.
//
// Translations are nested maps keyed by language code and then by a
// dot-separated message key. A TranslationAdapter loads them; the package
// ships an embedded catalog for "en" and "pt-BR" (see Catalog) and parsers
// for YAML and JSON files.
//
//	tr, err := i18n.NewTranslator(ctx, i18n.Catalog(), i18n.WithDefaultLanguage("pt-BR"))
//	msg := tr.T("pt-BR", "validation.cpf", "field", "cpf")
//	// "cpf deve ser um CPF válido"
//
// Placeholders use the %{name} form and take their values from key-value
// argument pairs.
//
// # Language negotiation
//
// Match picks the best supported language for an Accept-Language header with
// golang.org/x/text/language, so "pt" and "pt-PT" both resolve to "pt-BR" when
// that is the closest catalog. Middleware stores the negotiated language in
// the request context, where GetLocale finds it.
package i18n
