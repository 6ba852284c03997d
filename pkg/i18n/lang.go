package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// Match returns the supported language that best fits an Accept-Language
// header or a plain language tag. It returns defaultLang when header is empty,
// malformed, or matches nothing with at least low confidence.
func Match(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return defaultLang
	}
	return names[index]
}
