package messages

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses catalog content of the form
//
//	en:
//	  numberTooSmall: "Must be at least %{min}"
//
// into a map of language code to (possibly nested) messages.
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		msgs, ok := val.(map[string]any)
		if !ok {
			return nil, errors.Join(ErrInvalidCatalog,
				fmt.Errorf("language %q: expected map, got %T", lang, val))
		}
		result[lang] = msgs
	}

	if len(result) == 0 {
		return nil, ErrEmptyCatalog
	}

	return result, nil
}
