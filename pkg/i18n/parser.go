package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into language -> translations.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(ctx context.Context, content []byte) (map[string]map[string]any, error)

func (f ParserFunc) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	return f(ctx, content)
}

// YAMLParser parses YAML translation files.
var YAMLParser = ParserFunc(func(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return byLanguage(data)
})

// JSONParser parses JSON translation files.
var JSONParser = ParserFunc(func(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return byLanguage(data)
})

// ParserForFile picks a parser by file extension, or nil.
func ParserForFile(name string) Parser {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "yaml", "yml":
		return YAMLParser
	case "json":
		return JSONParser
	default:
		return nil
	}
}

func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidLanguageEntry, lang, val)
		}
		result[lang] = m
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
