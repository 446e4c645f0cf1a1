// Package messages renders human-readable text for validation keys.
//
// A Catalog maps stable keys such as "numberTooSmall" to message templates
// with %{name} placeholders. English and German messages are embedded; more
// can be merged from YAML:
//
//	extra, err := messages.ParseYAML(content)
//	if err != nil {
//	    return err
//	}
//	c, err := messages.New(
//	    messages.WithLanguage(language.German),
//	    messages.WithTranslations(extra),
//	)
//
//	c.Text("numberTooSmall", map[string]any{"min": 5}) // "Muss mindestens 5 sein"
//
// Numeric parameters are formatted with golang.org/x/text/message for the
// selected language. Nested keys use dot notation ("spinner.hint").
package messages
