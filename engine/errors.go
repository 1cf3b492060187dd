package engine

import "errors"

var (
	ErrInvalidDepth    = errors.New("engine: depth must be at least 1")
	ErrInvalidWorkers  = errors.New("engine: workers must be at least 1")
	ErrUnknownStrategy = errors.New("engine: unknown strategy")
)
