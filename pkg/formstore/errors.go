package formstore

import "errors"

var (
	ErrNotFound        = errors.New("form session not found")
	ErrInvalidCapacity = errors.New("form store capacity must be positive")
)
