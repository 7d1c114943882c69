package rubik

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rubik package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("rubik: invalid move notation")

	// State errors
	ErrInvalidSnapshot = errors.New("rubik: invalid snapshot")

	// ErrInvariant is wrapped by the value of every panic raised when the
	// cube state is found corrupted. It is never returned.
	ErrInvariant = errors.New("rubik: invariant violated")
)

// invariant panics with an error wrapping ErrInvariant.
func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
}
