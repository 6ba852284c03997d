package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrNoTranslations       = errors.New("no translations found")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")
	ErrUnsupportedFile      = errors.New("unsupported translation file")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrInvalidLanguageEntry = errors.New("invalid translation structure")
)
