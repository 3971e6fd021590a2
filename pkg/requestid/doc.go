// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware reuses a well-formed X-Request-ID header sent by the client
// and otherwise generates a UUIDv4. The id is echoed in the response header,
// stored in the request context and picked up by the logger through
// LoggerExtractor, so every log line written while serving a form edit
// carries the same request_id.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
