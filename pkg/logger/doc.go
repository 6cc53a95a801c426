// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers with consistent key names.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "statedemo"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "state changed",
//	    logger.FromState("idle"),
//	    logger.ToState("walking"),
//	)
//
// # Options
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel / WithLevelName: minimum level.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes from context.
//
// WithFormat and WithLevelName panic on invalid input.
//
// # Attributes
//
// Error and Errors return an empty Attr for nil errors, so
//
//	log.Warn("change rejected", logger.Error(err))
//
// needs no nil check. Machine, State, FromState and ToState name the keys the
// statemachine package logs with.
package logger
