package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations from some source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations held in memory.
type MapAdapter map[string]map[string]any

func (a MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if len(a) == 0 {
		return nil, ErrNoTranslations
	}
	return a, nil
}

// FSAdapter loads every YAML and JSON file in a directory of a file system.
// Files may hold several languages; entries for the same language merge.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := ParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		for lang, t := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(t))
			}
			maps.Copy(all[lang], t)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)
	}
	return all, nil
}

//go:embed locales/*.yaml
var locales embed.FS

// Catalog returns an adapter over the built-in en and pt-BR messages.
func Catalog() TranslationAdapter {
	return NewFSAdapter(locales, "locales")
}
