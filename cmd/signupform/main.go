package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signupform"
	"github.com/dmitrymomot/signupform/pkg/config"
	"github.com/dmitrymomot/signupform/pkg/formstore"
	"github.com/dmitrymomot/signupform/pkg/httpserver"
	"github.com/dmitrymomot/signupform/pkg/logger"
	"github.com/dmitrymomot/signupform/pkg/registration"
	"github.com/dmitrymomot/signupform/pkg/requestid"
)

func main() {
	var app config.App
	config.MustLoad(&app)

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	store := formstore.New(app.FormStoreCapacity,
		formstore.WithFormOptions(
			registration.WithLogger(log.With(logger.Component("registration"))),
			registration.WithPasswordCost(app.PasswordHashCost),
		),
		formstore.WithEvictCallback(func(id uuid.UUID, form *registration.Form) {
			log.Debug("form session evicted", logger.FormID(id), logger.State(string(form.State())))
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, signupform.Router(signupform.RouterOptions{Store: store, Logger: log})); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
