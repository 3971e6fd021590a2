// Package httpserver runs the form service's HTTP listener.
//
// Server wraps net/http with:
//
//   - Graceful shutdown. Run blocks until its context is cancelled or the
//     process receives SIGINT/SIGTERM, then drains in-flight requests within
//     the configured shutdown timeout.
//   - Functional options (WithAddr, WithReadTimeout, WithLogger, ...) and
//     NewFromConfig for env-driven construction through pkg/config.
//   - Start and stop hooks that receive the bound address.
//   - HealthCheckHandler for liveness and readiness probes.
//
// Start failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown so callers can match them with errors.Is.
//
//	cfg, _ := config.Load(&httpserver.Config{})
//	srv := httpserver.NewFromConfig(*cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
