package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Translator resolves message keys to localized strings.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator loads translations from the adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" || m == nil {
			return nil, fmt.Errorf("%w: language %q", ErrInvalidLanguageEntry, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when none was negotiated.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// lookup walks a nested map with a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// HasTranslation reports whether lang has a string for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders from key-value pairs.
// Unknown placeholders are left as they are; a trailing odd argument is ignored.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting "%{name}" placeholders from the
// key-value pairs in args:
//
//	tr.T("en", "validation.cpf", "field", "document")
//	// "document must be a valid CPF"
//
// An unsupported language falls back to the default language. A missing key
// yields the key itself, or "" when WithFallbackToKey(false) was given.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		langMap, ok = t.translations[t.defaultLang]
	}

	if ok {
		if val, found := lookup(langMap, key); found {
			if s, isString := val.(string); isString {
				return substitute(s, args)
			}
			if t.missingLogMode {
				t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
			}
		} else if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
	}

	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}
