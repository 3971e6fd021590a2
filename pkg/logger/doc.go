// Package logger builds log/slog loggers for the signup form service.
//
// New returns a *slog.Logger configured through functional options: output
// format (JSON or text), level, static attributes and context extractors that
// copy request-scoped values (such as the request ID) into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// The attr helpers (FormID, Field, State, Error, ...) keep attribute keys
// consistent across packages:
//
//	log.InfoContext(ctx, "field edited", logger.FormID(id), logger.Field("email"))
//
// Field values are never logged by the form packages; only field names and
// outcomes are.
package logger
