package workbench

import "errors"

var (
	// ErrDuplicateID indicates a matrix whose id is already present.
	ErrDuplicateID = errors.New("workbench: duplicate matrix id")

	// ErrUnknownAncestor indicates a ConnectedTo entry naming no member.
	ErrUnknownAncestor = errors.New("workbench: unknown ancestor")

	// ErrUnknownMatrix indicates a lookup of an id that is not present.
	ErrUnknownMatrix = errors.New("workbench: unknown matrix")
)
