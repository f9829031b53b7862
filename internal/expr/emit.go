package expr

import (
	"errors"
	"fmt"
	"strings"
)

// Emit renders n with canonical spacing: binary operands and operators are
// separated by exactly one space, calls render as name(a, b), parentheses
// and unary operators hug their operand. References become ${id}.
func Emit(n Node, resolve Resolver) (string, error) {
	if resolve == nil {
		return "", errors.New("nil resolver")
	}

	var b strings.Builder

	err := emit(&b, n, resolve)
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

func emit(b *strings.Builder, n Node, resolve Resolver) error {
	switch nn := n.(type) {
	case *Binary:
		if err := emit(b, nn.Left, resolve); err != nil {
			return err
		}

		b.WriteString(" " + nn.Op + " ")

		return emit(b, nn.Right, resolve)
	case *Unary:
		b.WriteString(nn.Op)
		return emit(b, nn.Operand, resolve)
	case *Paren:
		b.WriteByte('(')

		if err := emit(b, nn.Inner, resolve); err != nil {
			return err
		}

		b.WriteByte(')')

		return nil
	case *Call:
		b.WriteString(nn.Name)
		b.WriteByte('(')

		for i, arg := range nn.Args {
			if i > 0 {
				b.WriteString(", ")
			}

			if err := emit(b, arg, resolve); err != nil {
				return err
			}
		}

		b.WriteByte(')')

		return nil
	case *Literal:
		b.WriteString(nn.Text)
		return nil
	case *AttributeRef, *ConstantRef:
		ref, _ := fieldReference(n)

		id, err := resolve(ref)
		if err != nil {
			return fmt.Errorf("cannot resolve %s: %w", ref, err)
		}

		b.WriteString("${" + id + "}")

		return nil
	default:
		return fmt.Errorf("unsupported expression node %T", n)
	}
}
