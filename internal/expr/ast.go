package expr

// Node is a node of a parsed expression.
type Node interface {
	node()
}

// Binary is a left-associative binary operation.
type Binary struct {
	Op    string
	Left  Node
	Right Node
}

// Unary is a prefix operation ("!" or "-").
type Unary struct {
	Op      string
	Operand Node
}

// Paren is a parenthesized expression.
type Paren struct {
	Inner Node
}

// Call is a function call.
type Call struct {
	Name string
	Args []Node
}

// AttributeRef refers to a header, property or body attribute. Kind is upper
// case; Path holds the raw, still escaped elements.
type AttributeRef struct {
	Kind FieldKind
	Path []string
}

// ConstantRef refers to a constant by its raw, still escaped name.
type ConstantRef struct {
	Name string
}

// LiteralKind classifies literals.
type LiteralKind int

const (
	LiteralNull LiteralKind = iota
	LiteralNumber
	LiteralString
	LiteralBoolean
)

// Literal keeps its source text verbatim.
type Literal struct {
	Kind LiteralKind
	Text string
}

func (*Binary) node()       {}
func (*Unary) node()        {}
func (*Paren) node()        {}
func (*Call) node()         {}
func (*AttributeRef) node() {}
func (*ConstantRef) node()  {}
func (*Literal) node()      {}

// Walk calls fn for n and every node below it, parents first.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}

	fn(n)

	switch nn := n.(type) {
	case *Binary:
		Walk(nn.Left, fn)
		Walk(nn.Right, fn)
	case *Unary:
		Walk(nn.Operand, fn)
	case *Paren:
		Walk(nn.Inner, fn)
	case *Call:
		for _, arg := range nn.Args {
			Walk(arg, fn)
		}
	}
}

// References returns the field references of n in source order, unescaped.
func References(n Node) []FieldReference {
	var refs []FieldReference

	Walk(n, func(n Node) {
		if ref, ok := fieldReference(n); ok {
			refs = append(refs, ref)
		}
	})

	return refs
}

func fieldReference(n Node) (FieldReference, bool) {
	switch nn := n.(type) {
	case *AttributeRef:
		path := make([]string, len(nn.Path))
		for i, p := range nn.Path {
			path[i] = Unescape(p)
		}

		return FieldReference{Kind: nn.Kind, Path: path}, true
	case *ConstantRef:
		return FieldReference{Kind: KindConstant, Path: []string{Unescape(nn.Name)}}, true
	default:
		return FieldReference{}, false
	}
}
