package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Valid(t *testing.T) {
	diags := Check(mustParse(t, orderMapping))

	assert.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Error())
	assert.Empty(t, diags.Warnings)

	covered := diags.ByCode(CodeCovered)
	require.Len(t, covered, 1)
	assert.Equal(t, "3 mandatory paths covered", covered[0].Message)
	assert.Empty(t, diags.ByCode(CodeUnlistedRead))
}

func TestCheck_Findings(t *testing.T) {
	tests := []struct {
		name     string
		actions  string
		code     string
		path     string
		suggests []string
	}{
		{
			name: "duplicate id",
			actions: `
  - {id: a1, sources: [header.sh1], target: header.th1}
  - {id: a1, sources: [body.s1], target: body.t1}`,
			code: CodeDuplicateActionID,
		},
		{
			name:     "unknown constant",
			actions:  `  - {id: a1, sources: [constant.curency], target: header.th1}`,
			code:     CodeUnknownConstant,
			path:     "constant.curency",
			suggests: []string{"currency"},
		},
		{
			name:     "unknown source",
			actions:  `  - {id: a1, sources: [body.customerNam], target: header.th1}`,
			code:     CodeUnknownSource,
			path:     "body.customerNam",
			suggests: []string{"customerName"},
		},
		{
			name:    "unknown target",
			actions: `  - {id: a1, sources: [body.s1], target: body.t2.nope}`,
			code:    CodeUnknownTarget,
			path:    "body.t2.nope",
		},
		{
			name:    "empty target",
			actions: `  - {id: a1, sources: [body.s1], target: {kind: body, path: []}}`,
			code:    CodeEmptyTarget,
			path:    "body",
		},
		{
			name: "expression syntax",
			actions: `
  - id: a1
    target: header.th1
    transformation: {name: expression, parameters: ["body.total +"]}`,
			code: CodeInvalidExpression,
		},
		{
			name: "expression reference",
			actions: `
  - id: a1
    target: header.th1
    transformation: {name: expression, parameters: ["body.totl * 2"]}`,
			code:     CodeInvalidExpression,
			suggests: []string{"total"},
		},
		{
			name: "expression without text",
			actions: `
  - id: a1
    target: header.th1
    transformation: {name: expression}`,
			code: CodeInvalidExpression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustParse(t, withActions(tt.actions))

			found := Check(d).ByCode(tt.code)
			require.Len(t, found, 1)
			assert.Equal(t, "a1", found[0].Scope)
			assert.Equal(t, tt.path, found[0].Path)
			assert.Equal(t, tt.suggests, found[0].Suggestions)
		})
	}
}

func TestCheck_Coverage(t *testing.T) {
	d := mustParse(t, withActions(""))

	diags := Check(d)
	require.False(t, diags.IsValid())

	found := diags.ByCode(CodeNoMapping)
	require.Len(t, found, 3)
	assert.Equal(t, "th1", found[0].Path)
	assert.Equal(t, "t2/amount", found[2].Path)

	d = mustParse(t, withActions(`  - {id: a1, sources: [header.sh1], target: header.th1}`))

	found = Check(d).ByCode(CodeMandatoryMissing)
	require.Len(t, found, 2)
	assert.Equal(t, "t1", found[0].Path)
}

func TestCheck_UnlistedRead(t *testing.T) {
	tests := []struct {
		name    string
		sources string
		expr    string
		want    []string
	}{
		{"listed by id", "[body.s2]", "body.total * 2", nil},
		{"listed by name", "[body.customerName]", "body.customerName", nil},
		{"not listed", "[body.s1]", "body.total * 2", []string{"BODY:total"}},
		{"read twice", "[]", "body.total + body.total", []string{"BODY:total"}},
		{"constant", "[body.s2]", "body.total + constant.currency", []string{"CONSTANT:currency"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustParse(t, withActions(`
  - id: a1
    sources: `+tt.sources+`
    target: header.th1
    transformation: {name: expression, parameters: ["`+tt.expr+`"]}`))

			diags := Check(d)
			require.Empty(t, diags.ByCode(CodeInvalidExpression))

			var got []string
			for _, info := range diags.ByCode(CodeUnlistedRead) {
				assert.Equal(t, "a1", info.Scope)
				got = append(got, info.Path)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck_NoSourcesWarning(t *testing.T) {
	d := mustParse(t, withActions(`  - {id: a1, target: header.th1}`))

	diags := Check(d)
	require.Len(t, diags.ByCode(CodeNoSources), 1)
	assert.Equal(t, "warning", diags.ByCode(CodeNoSources)[0].Severity.String())
}

// withActions replaces the actions of orderMapping.
func withActions(actions string) string {
	head, _, _ := strings.Cut(orderMapping, "actions:\n")
	return head + "actions:\n" + actions + "\n"
}
