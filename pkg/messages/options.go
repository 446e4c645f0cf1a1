package messages

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"
)

// Option configures a Catalog.
type Option func(*Catalog)

// WithLanguage sets the preferred language. The closest supported language
// is selected; English is used when nothing matches.
func WithLanguage(tag language.Tag) Option {
	return func(c *Catalog) {
		c.requested = tag
	}
}

// WithTranslations merges additional messages into the built-in ones.
// Entries for an existing language override individual keys.
func WithTranslations(translations map[string]map[string]any) Option {
	return func(c *Catalog) {
		for lang, msgs := range translations {
			if lang == "" || msgs == nil {
				continue
			}
			if c.translations[lang] == nil {
				c.translations[lang] = make(map[string]any, len(msgs))
			}
			for k, v := range msgs {
				c.translations[lang][k] = v
			}
		}
	}
}

// WithFallbackToKey determines whether Text returns the key when a message
// is missing. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(c *Catalog) {
		c.fallbackToKey = fallback
	}
}

// WithLogger sets the logger used for missing message reports.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing messages are logged.
func WithMissingTranslationsLogging(log bool) Option {
	return func(c *Catalog) {
		c.missingLogMode = log
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
