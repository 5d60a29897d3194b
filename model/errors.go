package model

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned when the engine cannot be built from its options
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrSeedOutOfBounds is returned when a seed cell lies outside the grid
	ErrSeedOutOfBounds = errors.New("seed cell out of bounds")
)
