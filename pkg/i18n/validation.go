package i18n

import (
	"fmt"

	"github.com/gestaolivre/brtypes/pkg/validator"
)

// TranslateErrors returns a copy of errs with every message that has a
// translation key rendered in lang. Messages without a key are kept.
func (t *Translator) TranslateErrors(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	if len(errs) == 0 {
		return errs
	}

	out := make(validator.ValidationErrors, len(errs))
	for i, e := range errs {
		out[i] = e
		if e.TranslationKey == "" {
			continue
		}
		args := make([]string, 0, len(e.TranslationValues)*2)
		for k, v := range e.TranslationValues {
			args = append(args, k, fmt.Sprint(v))
		}
		if msg := t.T(lang, e.TranslationKey, args...); msg != "" && msg != e.TranslationKey {
			out[i].Message = msg
		}
	}
	return out
}
