package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateFragment matches any DuplicateFragmentError.
	ErrDuplicateFragment = errors.New("duplicate fragment")
	// ErrOrder matches any OrderError.
	ErrOrder = errors.New("fragment out of order")
)

// DuplicateFragmentError is returned when element, id or pseudo-element is
// appended a second time to the same builder.
type DuplicateFragmentError struct {
	Category Category
	Value    string
}

func (e *DuplicateFragmentError) Error() string {
	return fmt.Sprintf("duplicate %s fragment %q", e.Category, e.Value)
}

func (e *DuplicateFragmentError) Is(target error) bool {
	return target == ErrDuplicateFragment
}

// OrderError is returned when a fragment's category ranks lower than the
// category of the last accepted fragment.
type OrderError struct {
	Category Category
	Value    string
	Last     Category
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s fragment %q cannot follow %s fragment", e.Category, e.Value, e.Last)
}

func (e *OrderError) Is(target error) bool {
	return target == ErrOrder
}
