package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaolivre/brtypes/pkg/i18n"
)

func newCatalogTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.Catalog(), opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), nil)
		assert.Nil(t, tr)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), i18n.MapAdapter{})
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("catalog languages", func(t *testing.T) {
		tr := newCatalogTranslator(t)
		assert.Equal(t, []string{"en", "pt-BR"}, tr.SupportedLanguages())
		assert.Equal(t, i18n.DefaultLanguage, tr.DefaultLanguage())
	})

	t.Run("default language option", func(t *testing.T) {
		tr := newCatalogTranslator(t, i18n.WithDefaultLanguage("pt-BR"))
		assert.Equal(t, "pt-BR", tr.DefaultLanguage())
	})
}

func TestTranslator_T(t *testing.T) {
	tr := newCatalogTranslator(t, i18n.WithDefaultLanguage("pt-BR"))

	t.Run("substitutes placeholders", func(t *testing.T) {
		assert.Equal(t, "cpf deve ser um CPF válido", tr.T("pt-BR", "validation.cpf", "field", "cpf"))
		assert.Equal(t, "zip must be a CEP in São Paulo",
			tr.T("en", "validation.cep_state", "field", "zip", "state", "São Paulo"))
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		assert.Equal(t, "%{field} must be a valid CPF", tr.T("en", "validation.cpf"))
	})

	t.Run("ignores trailing odd argument", func(t *testing.T) {
		assert.Equal(t, "doc must be a valid CNPJ", tr.T("en", "validation.cnpj", "field", "doc", "extra"))
	})

	t.Run("unsupported language uses default", func(t *testing.T) {
		assert.Equal(t, "cpf é obrigatório", tr.T("fr", "validation.required", "field", "cpf"))
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		assert.Equal(t, "validation.nope", tr.T("en", "validation.nope"))
	})

	t.Run("non-string value falls back to key", func(t *testing.T) {
		assert.Equal(t, "validation", tr.T("en", "validation"))
	})

	t.Run("no fallback", func(t *testing.T) {
		strict := newCatalogTranslator(t, i18n.WithFallbackToKey(false))
		assert.Equal(t, "", strict.T("en", "validation.nope"))
	})
}

func TestTranslator_MissingLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	tr := newCatalogTranslator(t, i18n.WithLogger(logger), i18n.WithMissingTranslationsLogging(true))

	tr.T("en", "validation.nope")
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "key=validation.nope")
}

func TestTranslator_HasTranslation(t *testing.T) {
	tr := newCatalogTranslator(t)
	assert.True(t, tr.HasTranslation("en", "validation.cpf"))
	assert.True(t, tr.HasTranslation("pt-BR", "errors.rate_limited"))
	assert.False(t, tr.HasTranslation("en", "validation"))
	assert.False(t, tr.HasTranslation("en", "validation.nope"))
	assert.False(t, tr.HasTranslation("de", "validation.cpf"))
}

func TestCatalog_Consistent(t *testing.T) {
	tr := newCatalogTranslator(t)
	keys := []string{
		"validation.required", "validation.cpf", "validation.cnpj", "validation.cnpj_head_office",
		"validation.document", "validation.cep", "validation.cep_state", "validation.phone",
		"validation.mobile", "validation.uf", "validation.uf_one_of",
		"errors.unknown_kind", "errors.bad_request", "errors.too_many_items",
		"errors.rate_limited", "errors.generate_unsupported", "errors.internal",
		"errors.not_found", "errors.method_not_allowed",
	}
	for _, lang := range tr.SupportedLanguages() {
		for _, key := range keys {
			assert.True(t, tr.HasTranslation(lang, key), "%s: %s", lang, key)
		}
	}
}
