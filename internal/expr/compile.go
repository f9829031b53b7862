package expr

import "errors"

// Compiler compiles expressions with a fixed resolver. It holds no mutable
// state and may be shared between goroutines.
type Compiler struct {
	Resolve Resolver
}

// NewCompiler returns a Compiler using resolve for field references.
func NewCompiler(resolve Resolver) *Compiler {
	return &Compiler{Resolve: resolve}
}

// Compile parses src and renders it in the target format.
func (c *Compiler) Compile(src string) (string, error) {
	if c == nil || c.Resolve == nil {
		return "", errors.New("compiler has no resolver")
	}

	return Compile(src, c.Resolve)
}

// Compile parses src and renders it with references replaced by ${id}.
// Nothing is returned unless the whole expression compiles.
func Compile(src string, resolve Resolver) (string, error) {
	n, err := Parse(src)
	if err != nil {
		return "", err
	}

	return Emit(n, resolve)
}
