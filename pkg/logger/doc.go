// Package logger builds *slog.Logger instances with functional options and
// provides helpers for consistently named attributes.
//
//	log := logger.New(
//	    logger.WithEnvironment(config.ParseEnvironment(os.Getenv("APP_ENV")), "depot"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "product saved", logger.ProductID(p.ID), logger.Title(p.Title))
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
