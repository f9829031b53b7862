package datatype

import "fmt"

// Visitor handles every DataType kind. Adding a kind adds a method here, so
// implementations stop compiling until they handle it.
type Visitor[R any] interface {
	VisitNull(t *Null) (R, error)
	VisitBoolean(t *Boolean) (R, error)
	VisitInteger(t *Integer) (R, error)
	VisitString(t *String) (R, error)
	VisitArray(t *Array) (R, error)
	VisitObject(t *Object) (R, error)
	VisitReference(t *Reference) (R, error)
	VisitAllOf(t *AllOf) (R, error)
	VisitAnyOf(t *AnyOf) (R, error)
	VisitOneOf(t *OneOf) (R, error)
}

// Accept dispatches t to the matching Visitor method.
func Accept[R any](t DataType, v Visitor[R]) (R, error) {
	switch tt := t.(type) {
	case *Null:
		return v.VisitNull(tt)
	case *Boolean:
		return v.VisitBoolean(tt)
	case *Integer:
		return v.VisitInteger(tt)
	case *String:
		return v.VisitString(tt)
	case *Array:
		return v.VisitArray(tt)
	case *Object:
		return v.VisitObject(tt)
	case *Reference:
		return v.VisitReference(tt)
	case *AllOf:
		return v.VisitAllOf(tt)
	case *AnyOf:
		return v.VisitAnyOf(tt)
	case *OneOf:
		return v.VisitOneOf(tt)
	default:
		var zero R
		return zero, fmt.Errorf("unsupported data type %T", t)
	}
}
