// Package signupform serves the user registration form over HTTP.
//
// Router wires the form session endpoints from modules/forms together with
// the choice lists, the field schema and a liveness probe:
//
//	store := formstore.New(cfg.FormStoreCapacity)
//	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
//	err := srv.Run(ctx, signupform.Router(signupform.RouterOptions{Store: store, Logger: log}))
//
// Validation itself lives in pkg/registration and has no HTTP dependency.
package signupform
