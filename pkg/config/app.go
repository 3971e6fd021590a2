package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// App holds the service-level settings.
type App struct {
	Name     string `env:"APP_NAME" envDefault:"signupform"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// FormStoreCapacity bounds the number of live form sessions kept in memory.
	FormStoreCapacity int `env:"FORM_STORE_CAPACITY" envDefault:"1024"`

	// PasswordHashCost is the bcrypt cost used when a form is submitted.
	PasswordHashCost int `env:"PASSWORD_HASH_COST" envDefault:"10"`
}

// Validate checks ranges that env tags cannot express.
func (a *App) Validate() error {
	var errs []error
	if a.Name == "" {
		errs = append(errs, errors.New("APP_NAME must not be empty"))
	}
	if a.FormStoreCapacity <= 0 {
		errs = append(errs, fmt.Errorf("FORM_STORE_CAPACITY must be positive, got %d", a.FormStoreCapacity))
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("PASSWORD_HASH_COST must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost))
	}
	return errors.Join(errs...)
}
