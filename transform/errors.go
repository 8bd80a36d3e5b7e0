// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeIterations indicates a negative relaxation pass count.
	ErrNegativeIterations = errors.New("transform: iterations must be >= 0")

	// ErrIterationLimit indicates an iteration count above the engine's configured cap.
	ErrIterationLimit = errors.New("transform: iterations exceed configured limit")

	// ErrUnknownKind indicates an unsupported transform kind.
	ErrUnknownKind = errors.New("transform: unknown kind")
)

// transformErrorf wraps err with the transform method name.
func transformErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
