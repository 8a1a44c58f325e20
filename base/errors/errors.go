// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for dealing with errors in the most efficient way possible, and the
// small error taxonomy shared by the scene object model.
// This package imports the standard library errors package, and thus
// can be used as a drop-in replacement for it.
package errors

import (
	"errors"
	"fmt"
)

// Is is the standard library [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join is the standard library [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// The error taxonomy of the scene object model. Operations wrap one of these
// with context via [Errorf], and callers test for them with [Is].
var (
	// ErrInvalidArgument is returned for nil, out-of-range or non-member
	// inputs, double release and duplicate registration.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMemory is returned when storage for a registration could not be
	// obtained; it is also what a rename reports when its rollback fails.
	ErrMemory = errors.New("memory error")

	// ErrOverflow is returned when a counter, such as the unique name
	// suffix counter, runs out of range.
	ErrOverflow = errors.New("overflow error")

	// ErrInternal is returned for violated internal invariants, such as
	// a degenerate view rotation that cannot be inverted.
	ErrInternal = errors.New("internal error")
)

// Errorf returns an error that wraps the given kind (one of the
// taxonomy errors above) with the given formatted context message.
// The result satisfies errors.Is(err, kind).
func Errorf(kind error, format string, a ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, a...))
}
