// Package logger provides a thin factory around Go's slog package with
// functional options and helper attribute constructors.
//
// New builds a *slog.Logger whose handler is chosen by Format (text or
// json). Options set the minimum level, the output writer and static
// attributes:
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevelName("debug"),
//	    logger.WithAttr(logger.Component("numstep")),
//	)
//
// Helpers in attr.go keep attribute keys consistent across packages:
//
//	log.Debug("value committed",
//	    logger.Field("quantity"),
//	    logger.Value(3),
//	    logger.Source("step"),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. Discard returns a logger that drops everything and
// is the default for components that accept an optional logger.
package logger
