package dateutil

import (
	"errors"
	"fmt"
)

// ErrInvalidOrdinal is returned when a value is outside a cycle's range
var ErrInvalidOrdinal = errors.New("invalid ordinal")

// InvalidOrdinalError describes a rejected weekday or month conversion
type InvalidOrdinalError struct {
	Kind  string // "weekday" or "month"
	Value int
	Input string // set when the input was text that did not parse
}

func (e *InvalidOrdinalError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid %s: %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("invalid %s ordinal: %d", e.Kind, e.Value)
}

// Is reports whether target is ErrInvalidOrdinal
func (e *InvalidOrdinalError) Is(target error) bool {
	return target == ErrInvalidOrdinal
}
