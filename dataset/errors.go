// Package dataset sentinel errors. Callers branch with errors.Is;
// implementations attach context with %w.
package dataset

import "errors"

// ErrNoValues is returned by ParseList when no token of the input
// parses as an integer. Callers keep their previous array unchanged.
var ErrNoValues = errors.New("dataset: no numeric values")

// ErrBadSize is returned when a resolved size is below MinSize.
var ErrBadSize = errors.New("dataset: size below minimum")

// ErrBadRange is returned when the resolved value range is inverted
// (min > max).
var ErrBadRange = errors.New("dataset: inverted value range")
