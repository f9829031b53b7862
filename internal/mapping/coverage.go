package mapping

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"datamapper/internal/datatype"
	"datamapper/internal/resolve"
)

var (
	// ErrNoMapping is the cause reported when the target has required
	// attributes but the description has no actions.
	ErrNoMapping = errors.New("no mapping for structure with required attributes")
	// ErrMandatoryFieldsMissing is the cause reported when a mandatory path is
	// not the target of any action.
	ErrMandatoryFieldsMissing = errors.New("mandatory fields are missing in current mapping")
)

// ValidationError reports a mandatory-coverage failure. Cause is one of
// ErrNoMapping or ErrMandatoryFieldsMissing.
type ValidationError struct {
	Cause   error
	Missing []Path
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return e.Cause.Error()
	}

	paths := make([]string, 0, len(e.Missing))
	for _, p := range e.Missing {
		paths = append(paths, "["+p.String()+"]")
	}

	return fmt.Sprintf("%s: %s", e.Cause, strings.Join(paths, ", "))
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// CoverageValidator computes mandatory paths and checks their coverage.
type CoverageValidator struct {
	Resolver resolve.Resolver
	// MaxDepth limits attribute nesting (0 = unlimited). Recursive types
	// are reported as *resolve.CycleError regardless of it.
	MaxDepth int
}

// DefaultCoverageValidator returns a validator with the default resolver and
// no nesting limit.
func DefaultCoverageValidator() CoverageValidator {
	return CoverageValidator{Resolver: resolve.Default()}
}

// MandatoryPaths computes the mandatory paths of schema with default limits.
func MandatoryPaths(schema datatype.MessageSchema) ([]Path, error) {
	return DefaultCoverageValidator().MandatoryPaths(schema)
}

// ValidateCoverage checks d with default limits.
func ValidateCoverage(d *Description) error {
	return DefaultCoverageValidator().ValidateCoverage(d)
}

// MandatoryPaths returns the id paths of every required leaf attribute of
// schema. Required headers contribute their own id without descending.
// Properties and the body are walked depth first; attributes with nested
// attributes are branches and never mandatory themselves.
func (v CoverageValidator) MandatoryPaths(schema datatype.MessageSchema) ([]Path, error) {
	var result []Path

	for _, h := range schema.Headers {
		if h.Required {
			result = append(result, Path{h.ID})
		}
	}

	w := &pathWalker{validator: v, active: map[*datatype.Object]struct{}{}}

	err := w.walk(schema.Properties, resolve.Definitions{}, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("properties: %w", err)
	}

	if schema.Body != nil {
		bodyDefs := resolve.NewDefinitions(schema.Body.Definitions()...)

		owner, defs, err := v.nestedObject(schema.Body, bodyDefs)
		if err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}

		err = w.walkObject(owner, defs, nil, 0)
		if err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}
	}

	return append(result, w.result...), nil
}

// ValidateCoverage requires every mandatory path of the target schema to be
// exactly the target path of some action. It returns nil or a *ValidationError.
func (v CoverageValidator) ValidateCoverage(d *Description) error {
	mandatory, err := v.MandatoryPaths(d.Target)
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}

	return coverageOf(d, mandatory)
}

// coverageOf checks that every path in mandatory is the target of an action.
func coverageOf(d *Description, mandatory []Path) error {
	if len(mandatory) == 0 {
		return nil
	}

	if len(d.Actions) == 0 {
		return &ValidationError{Cause: ErrNoMapping, Missing: mandatory}
	}

	targets := make([]Path, 0, len(d.Actions))
	for _, a := range d.Actions {
		targets = append(targets, a.Target.Path)
	}

	var missing []Path

	for _, p := range mandatory {
		if !slices.ContainsFunc(targets, p.Equal) {
			missing = append(missing, p)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Cause: ErrMandatoryFieldsMissing, Missing: missing}
	}

	return nil
}

// nestedObject returns the object directly below t: t itself when it
// resolves to an object, or the item type of an array, followed through
// nested arrays. It returns nil for every other type.
func (v CoverageValidator) nestedObject(
	t datatype.DataType,
	defs resolve.Definitions,
) (*datatype.Object, resolve.Definitions, error) {
	resolved, defs, err := v.Resolver.Resolve(t, defs)
	if err != nil {
		return nil, defs, err
	}

	defs = resolve.MergeLocalDefinitions(defs, resolved)

	switch rt := resolved.(type) {
	case *datatype.Object:
		return rt, defs, nil
	case *datatype.Array:
		return v.nestedObject(rt.ItemType, defs)
	default:
		return nil, defs, nil
	}
}

type pathWalker struct {
	validator CoverageValidator
	result    []Path
	// active holds the objects on the current path from the root.
	active map[*datatype.Object]struct{}
}

func (w *pathWalker) walkObject(o *datatype.Object, defs resolve.Definitions, prefix Path, depth int) error {
	if o == nil {
		return nil
	}

	if _, ok := w.active[o]; ok {
		return &resolve.CycleError{At: prefix.String()}
	}

	w.active[o] = struct{}{}
	defer delete(w.active, o)

	return w.walk(o.Schema.Attributes, defs, prefix, depth)
}

func (w *pathWalker) walk(attrs []datatype.Attribute, defs resolve.Definitions, prefix Path, depth int) error {
	if limit := w.validator.MaxDepth; limit > 0 && depth > limit {
		return &resolve.DepthExceededError{Limit: limit, At: prefix.String()}
	}

	for _, a := range attrs {
		nested, nestedDefs, err := w.validator.nestedObject(a.Type, defs)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", a.ID, err)
		}

		if nested != nil && len(nested.Schema.Attributes) > 0 {
			err := w.walkObject(nested, nestedDefs, prefix.with(a.ID), depth+1)
			if err != nil {
				return err
			}

			continue
		}

		if a.Required {
			w.result = append(w.result, prefix.with(a.ID))
		}
	}

	return nil
}
