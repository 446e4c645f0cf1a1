package messages

import "errors"

var (
	// ErrFailedToParseYAML is returned when catalog content is not valid YAML.
	ErrFailedToParseYAML = errors.New("failed to parse YAML catalog")

	// ErrInvalidCatalog is returned when catalog content does not map languages to messages.
	ErrInvalidCatalog = errors.New("invalid catalog structure")

	// ErrEmptyCatalog is returned when a catalog defines no languages.
	ErrEmptyCatalog = errors.New("catalog defines no languages")
)
