package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Source records where a value change came from under the key "source".
func Source(src string) slog.Attr {
	return slog.String("source", src)
}

// Value records a field value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Step records a step delta under the key "step".
func Step(step float64) slog.Attr {
	return slog.Float64("step", step)
}

// Tries records a search attempt count under the key "tries".
func Tries(n int) slog.Attr {
	return slog.Int("tries", n)
}
