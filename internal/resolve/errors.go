package resolve

import (
	"errors"
	"fmt"
)

// ErrNilType is returned when a nil DataType is resolved.
var ErrNilType = errors.New("nil data type")

// TypeResolutionError reports a reference whose definition is not visible.
type TypeResolutionError struct {
	DefinitionID string
}

func (e *TypeResolutionError) Error() string {
	return fmt.Sprintf("type definition %q not found", e.DefinitionID)
}

// CycleError reports a type that refers back to itself before reaching a
// concrete type.
type CycleError struct {
	// At names the definition or element where the cycle closes.
	At string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic type reference at %q", e.At)
}

// DepthExceededError reports a walk that went deeper than its configured limit.
type DepthExceededError struct {
	Limit int
	// At names the definition or element being processed when the limit was hit.
	At string
}

func (e *DepthExceededError) Error() string {
	if e.At == "" {
		return fmt.Sprintf("depth limit %d exceeded", e.Limit)
	}

	return fmt.Sprintf("depth limit %d exceeded at %q", e.Limit, e.At)
}
