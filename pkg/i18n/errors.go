package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode    = errors.New("empty language code found")
	ErrLanguageNotSupported = errors.New("language not supported")
	ErrFailedToMarshalJSON  = errors.New("failed to marshal translations to JSON")

	// Parsing
	ErrParsingCancelled   = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrInvalidTranslation = errors.New("invalid translation structure")

	// Loading
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrFailedToReadDir      = errors.New("failed to read translations directory")
	ErrNoTranslationsLoaded = errors.New("no valid translation files found")
)
