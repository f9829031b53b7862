package expr

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindPathResolver(ref FieldReference) (string, error) {
	return string(ref.Kind) + ":" + strings.Join(ref.Path, "/"), nil
}

func TestCompile_RoundTrip(t *testing.T) {
	got, err := Compile("foo() || bar(body.a.b, constant.c)", kindPathResolver)
	require.NoError(t, err)
	assert.Equal(t, "foo() || bar(${BODY:a/b}, ${CONSTANT:c})", got)
}

func TestCompile_Canonicalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"binary spacing", "1+2*3", "1 + 2 * 3"},
		{"extra whitespace", "  a(  1 ,2 )+-3*(  body.x  )", "a(1, 2) + -3 * (${BODY:x})"},
		{"newlines", "header.h1\n&&\n\tproperty.p1", "${HEADER:h1} && ${PROPERTY:p1}"},
		{"literals", `null == 'x' != "y"`, `null == 'x' != "y"`},
		{"booleans and not", "!true || !!false", "!true || !!false"},
		{"comparison", "body.n>=10&&body.n<20.5", "${BODY:n} >= 10 && ${BODY:n} < 20.5"},
		{"modulo", "body.n % 2 == 0", "${BODY:n} % 2 == 0"},
		{"nested calls", "concat(upper(header.a), '-', lower(constant.b))", "concat(upper(${HEADER:a}), '-', lower(${CONSTANT:b}))"},
		{"case-insensitive kind", "Header.X + BODY.y + Property.z", "${HEADER:X} + ${BODY:y} + ${PROPERTY:z}"},
		{"numeric path elements", "body.items.0.sku + body.m.1.5", "${BODY:items/0/sku} + ${BODY:m/1/5}"},
		{"escaped path elements", `body.a\_b.c\-d`, "${BODY:ab/c-d}"},
		{"escaped constant name", `constant.my\ name`, "${CONSTANT:my name}"},
		{"string with escaped quote", `f('it\'s')`, `f('it\'s')`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.input, kindPathResolver)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Precedence(t *testing.T) {
	n, err := Parse("a() || b() && c() == d() < e() + f() * -g()")
	require.NoError(t, err)

	call := func(name string) Node { return &Call{Name: name} }
	expected := &Binary{Op: "||", Left: call("a"), Right: &Binary{
		Op:   "&&",
		Left: call("b"),
		Right: &Binary{Op: "==", Left: call("c"), Right: &Binary{
			Op:   "<",
			Left: call("d"),
			Right: &Binary{Op: "+", Left: call("e"), Right: &Binary{
				Op:    "*",
				Left:  call("f"),
				Right: &Unary{Op: "-", Operand: call("g")},
			}},
		}},
	}}

	if diff := cmp.Diff(Node(expected), n); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_LeftAssociative(t *testing.T) {
	n, err := Parse("1 - 2 - 3")
	require.NoError(t, err)

	expected := &Binary{
		Op:    "-",
		Left:  &Binary{Op: "-", Left: &Literal{Kind: LiteralNumber, Text: "1"}, Right: &Literal{Kind: LiteralNumber, Text: "2"}},
		Right: &Literal{Kind: LiteralNumber, Text: "3"},
	}

	if diff := cmp.Diff(Node(expected), n); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		input    string
		line     int
		position int
		message  string
	}{
		{"foo(", 1, 4, "unexpected end of input"},
		{"1 2", 1, 2, `unexpected "2"`},
		{"1 +\n  * 2", 2, 2, `unexpected "*"`},
		{"body.a |x", 1, 7, "unexpected character '|'"},
		{"'abc", 1, 0, "unterminated string literal"},
		{"a + b", 1, 0, `unexpected identifier "a"`},
		{"foo.bar", 1, 0, "unknown reference kind"},
		{"constant.", 1, 9, "expected constant name"},
		{"body.", 1, 5, "expected path element"},
		{"(1 + 2", 1, 6, "expected ')'"},
		{"f(1 2)", 1, 4, "expected ',' or ')'"},
		{"a = b", 1, 2, "unexpected character '='"},
		{"", 1, 0, "unexpected end of input"},
		{`body.x\`, 1, 7, "unterminated escape"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := Compile(tt.input, kindPathResolver)
			require.Error(t, err)
			assert.Empty(t, out)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.line, syntaxErr.Line, "line")
			assert.Equal(t, tt.position, syntaxErr.Position, "position")
			assert.Contains(t, syntaxErr.Message, tt.message)
			assert.True(t, strings.HasPrefix(err.Error(), "syntax error at line "))
		})
	}
}

func TestCompile_ResolverError(t *testing.T) {
	unknown := errors.New("unknown field")
	resolver := func(ref FieldReference) (string, error) {
		if ref.Kind == KindConstant {
			return "", unknown
		}

		return "ok", nil
	}

	out, err := Compile("f(body.a, constant.missing)", resolver)
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, unknown)
	assert.Contains(t, err.Error(), "CONSTANT:missing")
}

func TestReferences(t *testing.T) {
	n, err := Parse(`f(header.h\_1, constant.c) + body.a.b`)
	require.NoError(t, err)

	assert.Equal(t, []FieldReference{
		{Kind: KindHeader, Path: []string{"h1"}},
		{Kind: KindConstant, Path: []string{"c"}},
		{Kind: KindBody, Path: []string{"a", "b"}},
	}, References(n))
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`a\_b`, "ab"},
		{`a\xb`, "axb"},
		{`plain`, "plain"},
		{`\_`, ""},
		{`a\.b`, "a.b"},
		{`abc\`, "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Unescape(tt.input))
		})
	}
}

func TestCompiler_Concurrent(t *testing.T) {
	c := NewCompiler(kindPathResolver)

	var wg sync.WaitGroup

	results := make([]string, 16)
	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			out, err := c.Compile("len(body.items) > 0")
			if err == nil {
				results[i] = out
			}
		}(i)
	}

	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "len(${BODY:items}) > 0", r)
	}
}

func TestCompiler_NoResolver(t *testing.T) {
	_, err := (&Compiler{}).Compile("1")
	require.Error(t, err)

	_, err = Emit(&Literal{Text: "1"}, nil)
	require.Error(t, err)
}
