package messages

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is used when the requested language has no messages.
const DefaultLanguage = "en"

//go:embed locales/*.yaml
var builtin embed.FS

// Catalog renders human-readable text for validation keys.
// A Catalog is immutable after New and safe for concurrent use.
type Catalog struct {
	translations   map[string]map[string]any
	requested      language.Tag
	lang           string
	tag            language.Tag
	printer        *message.Printer
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared English catalog built from the embedded messages.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(fmt.Sprintf("messages: built-in catalog is broken: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// New builds a catalog from the embedded messages plus any configured extras.
func New(opts ...Option) (*Catalog, error) {
	translations, err := loadBuiltin()
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		translations:  translations,
		requested:     language.English,
		fallbackToKey: true,
		logger:        discardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.lang, c.tag = c.match(c.requested)
	c.printer = message.NewPrinter(c.tag)
	c.logger.Debug("message catalog ready", "language", c.lang, "languages", c.Languages())

	return c, nil
}

func loadBuiltin() (map[string]map[string]any, error) {
	files, err := fs.Glob(builtin, "locales/*.yaml")
	if err != nil {
		return nil, err
	}

	result := make(map[string]map[string]any)
	for _, name := range files {
		content, err := builtin.ReadFile(name)
		if err != nil {
			return nil, err
		}
		parsed, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, msgs := range parsed {
			result[lang] = msgs
		}
	}
	return result, nil
}

// match picks the supported language closest to requested.
func (c *Catalog) match(requested language.Tag) (string, language.Tag) {
	langs := c.Languages()
	tags := make([]language.Tag, 0, len(langs)+1)
	codes := make([]string, 0, len(langs)+1)

	// The first tag is the matcher's fallback.
	if _, ok := c.translations[DefaultLanguage]; ok {
		tags = append(tags, language.English)
		codes = append(codes, DefaultLanguage)
	}
	for _, lang := range langs {
		if lang == DefaultLanguage {
			continue
		}
		tag, err := language.Parse(lang)
		if err != nil {
			c.logger.Warn("skipping invalid language code", "lang", lang, "error", err)
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, lang)
	}

	if len(tags) == 0 {
		return DefaultLanguage, language.English
	}

	_, idx, _ := language.NewMatcher(tags).Match(requested)
	return codes[idx], tags[idx]
}

// Languages returns the sorted language codes that have messages.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Language returns the language code selected for rendering.
func (c *Catalog) Language() string {
	return c.lang
}

// Has reports whether a message exists for key in the selected language.
func (c *Catalog) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Text renders the message for key, substituting %{name} placeholders from
// params. Numbers are formatted for the catalog language.
//
//	c.Text("numberTooSmall", map[string]any{"min": 5}) // "Must be at least 5"
func (c *Catalog) Text(key string, params map[string]any) string {
	tmpl, ok := c.lookup(key)
	if !ok {
		if c.missingLogMode {
			c.logger.Warn("message not found", "lang", c.lang, "key", key)
		}
		if !c.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return c.substitute(tmpl, params)
}

// lookup traverses nested maps using dot-separated keys.
func (c *Catalog) lookup(key string) (string, bool) {
	current, ok := c.translations[c.lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func (c *Catalog) substitute(tmpl string, params map[string]any) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		val, ok := params[match[2:len(match)-1]]
		if !ok {
			return match
		}
		if s, ok := val.(string); ok {
			return s
		}
		return c.printer.Sprint(val)
	})
}
