package blendfx

import (
	"errors"

	"github.com/lumenfx/blendfx/internal/parallel"
)

var (
	// ErrInvalidArgument is returned for contract violations: mismatched
	// buffer lengths, empty regions, unknown formulas and parameters outside
	// their declared ranges. Retrying the same call fails the same way.
	//
	// Errors returned by this package wrap it with details; test with errors.Is.
	ErrInvalidArgument = errors.New("blendfx: invalid argument")

	// ErrClosed is returned by a Compositor after Close.
	ErrClosed = parallel.ErrClosed
)
