package mapping

import (
	"errors"
	"fmt"
	"strings"

	"datamapper/internal/datatype"
	"datamapper/internal/diagnostic"
	"datamapper/internal/expr"
	"datamapper/internal/fieldref"
	"datamapper/internal/match"
)

// Diagnostic codes reported by Check.
const (
	CodeDuplicateActionID = "duplicate_action_id"
	CodeEmptyTarget       = "empty_target"
	CodeUnknownConstant   = "unknown_constant"
	CodeUnknownSource     = "unknown_source"
	CodeUnknownTarget     = "unknown_target"
	CodeNoSources         = "no_sources"
	CodeInvalidExpression = "invalid_expression"
	CodeNoMapping         = "no_mapping"
	CodeMandatoryMissing  = "mandatory_missing"
	CodeCoverageFailed    = "coverage_failed"
	CodeUnlistedRead      = "unlisted_read"
	CodeCovered           = "covered"
)

// Checker runs the structural checks and the coverage validation of a
// mapping description.
type Checker struct {
	Coverage CoverageValidator
	// Separator joins element ids in compiled expressions.
	Separator string
}

// DefaultChecker returns a checker with default limits.
func DefaultChecker() Checker {
	return Checker{Coverage: DefaultCoverageValidator(), Separator: fieldref.DefaultSeparator}
}

// Check validates d with default limits.
func Check(d *Description) *diagnostic.Diagnostics {
	return DefaultChecker().Check(d)
}

// Check reports every structural problem of d followed by the coverage
// result. It never stops at the first finding.
func (c Checker) Check(d *Description) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	source := c.fieldResolver(d.Source, d.Constants)
	target := c.fieldResolver(d.Target, d.Constants)

	seen := make(map[string]struct{}, len(d.Actions))

	for i, a := range d.Actions {
		scope := a.ID
		if scope == "" {
			scope = fmt.Sprintf("actions[%d]", i)
		}

		if _, dup := seen[a.ID]; dup && a.ID != "" {
			diags.AddError(CodeDuplicateActionID, fmt.Sprintf("action id %q is used more than once", a.ID), scope, "")
		}

		seen[a.ID] = struct{}{}

		c.checkAction(diags, d, a, scope, source, target)
	}

	diags.Merge(c.checkCoverage(d))

	return diags
}

func (c Checker) fieldResolver(schema datatype.MessageSchema, constants []datatype.Constant) *fieldref.Resolver {
	opts := []fieldref.Option{fieldref.WithTypeResolver(c.Coverage.Resolver)}
	if c.Separator != "" {
		opts = append(opts, fieldref.WithSeparator(c.Separator))
	}

	return fieldref.New(schema, constants, opts...)
}

func (c Checker) checkAction(
	diags *diagnostic.Diagnostics,
	d *Description,
	a Action,
	scope string,
	source, target *fieldref.Resolver,
) {
	if len(a.Target.Path) == 0 {
		diags.AddError(CodeEmptyTarget, "target path is empty", scope, a.Target.String())
	} else if err := checkAttribute(target, a.Target); err != nil {
		diags.AddError(CodeUnknownTarget, err.Error(), scope, a.Target.String(), suggestionsOf(err)...)
	}

	if len(a.Sources) == 0 && a.Transformation == nil {
		diags.AddWarning(CodeNoSources, "action has neither sources nor a transformation", scope, "")
	}

	for _, src := range a.Sources {
		switch ref := src.(type) {
		case ConstantReference:
			if _, ok := d.Constant(ref.Name); !ok {
				diags.AddError(CodeUnknownConstant, fmt.Sprintf("constant %q is not declared", ref.Name),
					scope, ref.String(), match.Suggest(ref.Name, constantNames(d.Constants), 3)...)
			}
		case AttributeReference:
			if err := checkAttribute(source, ref); err != nil {
				diags.AddError(CodeUnknownSource, err.Error(), scope, ref.String(), suggestionsOf(err)...)
			}
		}
	}

	if a.Transformation == nil {
		return
	}

	src, ok := a.Transformation.Expression()
	if !ok {
		if a.Transformation.Name == ExpressionTransformation {
			diags.AddError(CodeInvalidExpression, "expression transformation has no expression", scope, "")
		}

		return
	}

	n, err := expr.Parse(src)
	if err == nil {
		_, err = expr.Emit(n, source.Func())
	}

	if err != nil {
		diags.AddError(CodeInvalidExpression, err.Error(), scope, "", suggestionsOf(err)...)
		return
	}

	checkReads(diags, n, a, scope, source)
}

// checkReads notes every field the expression reads that is not one of the
// action's sources.
func checkReads(diags *diagnostic.Diagnostics, n expr.Node, a Action, scope string, source *fieldref.Resolver) {
	listed := make(map[string]struct{}, len(a.Sources))

	for _, src := range a.Sources {
		if id, err := source.Resolve(fieldReferenceOf(src)); err == nil {
			listed[id] = struct{}{}
		}
	}

	for _, ref := range expr.References(n) {
		id, err := source.Resolve(ref)
		if err != nil {
			continue
		}

		if _, ok := listed[id]; ok {
			continue
		}

		listed[id] = struct{}{}

		diags.AddInfo(CodeUnlistedRead,
			fmt.Sprintf("expression reads %s, which is not among the action's sources", ref), scope, ref.String())
	}
}

func (c Checker) checkCoverage(d *Description) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	mandatory, err := c.Coverage.MandatoryPaths(d.Target)
	if err == nil {
		err = coverageOf(d, mandatory)
	}

	if err == nil {
		if len(mandatory) > 0 {
			diags.AddInfo(CodeCovered, fmt.Sprintf("%d mandatory paths covered", len(mandatory)), "target", "")
		}

		return diags
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		diags.AddError(CodeCoverageFailed, err.Error(), "target", "")
		return diags
	}

	code := CodeMandatoryMissing
	if errors.Is(verr.Cause, ErrNoMapping) {
		code = CodeNoMapping
	}

	for _, p := range verr.Missing {
		diags.AddError(code, verr.Cause.Error(), "target", p.String())
	}

	return diags
}

// checkAttribute resolves ref by ids in the schema behind r.
func checkAttribute(r *fieldref.Resolver, ref AttributeReference) error {
	_, err := r.Resolve(fieldReferenceOf(ref))
	return err
}

func fieldReferenceOf(ref ElementReference) expr.FieldReference {
	switch ref := ref.(type) {
	case ConstantReference:
		return expr.FieldReference{Kind: expr.KindConstant, Path: []string{ref.Name}}
	case AttributeReference:
		return expr.FieldReference{Kind: expr.FieldKind(strings.ToUpper(string(ref.Kind))), Path: ref.Path}
	default:
		return expr.FieldReference{}
	}
}

func suggestionsOf(err error) []string {
	var nf *fieldref.NotFoundError
	if errors.As(err, &nf) {
		return nf.Suggestions
	}

	return nil
}

func constantNames(constants []datatype.Constant) []string {
	names := make([]string, 0, len(constants))
	for _, c := range constants {
		names = append(names, c.Name)
	}

	return names
}
