package disjoint

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is reported when an operation receives an element index
// outside [0, Len()). It is the only error kind produced by this package;
// match it with errors.Is.
var ErrIndexOutOfRange = errors.New("disjoint: index out of range")

// checkIndex validates i against a structure of length n. Every index-taking
// operation runs this before mutating anything, so a failed call leaves the
// structure unchanged.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	return nil
}
