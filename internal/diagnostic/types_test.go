package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("unused_constant", "constant is never used", "constants", "region")
	d.AddInfo("coverage", "2 mandatory paths covered", "target", "")
	assert.True(t, d.IsValid())

	d.AddError("unknown_constant", "constant not declared", "a1", "regoin", "region")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[a1] regoin: [unknown_constant] constant not declared (did you mean region?)", err.Error())

	assert.Len(t, d.ByCode("unused_constant"), 1)
	assert.Equal(t, SeverityWarning, d.ByCode("unused_constant")[0].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddWarning("z", "third", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "[x] first; [y] second", a.Error().Error())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
