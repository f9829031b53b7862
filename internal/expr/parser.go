package expr

import "strings"

// Parse parses src into an expression tree.
func Parse(src string) (Node, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}

	n, err := p.expression()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorAt(tok, "unexpected %s", tok.describe())
	}

	return n, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}

	return tok
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	tok := p.peek()
	if tok.kind != kind {
		return tok, p.errorAt(tok, "expected %s but found %s", what, tok.describe())
	}

	return p.next(), nil
}

func (p *parser) errorAt(tok token, tmpl string, args ...any) error {
	return syntaxErrorf(tok.line, tok.pos, tmpl, args...)
}

func (p *parser) expression() (Node, error) {
	return p.or()
}

// binaryLevel parses operand (op operand)* for the given operator kinds.
func (p *parser) binaryLevel(operand func() (Node, error), ops ...tokenKind) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if !containsKind(ops, tok.kind) {
			return left, nil
		}

		p.next()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = &Binary{Op: tok.text, Left: left, Right: right}
	}
}

func containsKind(kinds []tokenKind, k tokenKind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}

	return false
}

func (p *parser) or() (Node, error) {
	return p.binaryLevel(p.and, tokOr)
}

func (p *parser) and() (Node, error) {
	return p.binaryLevel(p.equality, tokAnd)
}

func (p *parser) equality() (Node, error) {
	return p.binaryLevel(p.comparison, tokEq, tokNe)
}

func (p *parser) comparison() (Node, error) {
	return p.binaryLevel(p.additive, tokLt, tokLe, tokGt, tokGe)
}

func (p *parser) additive() (Node, error) {
	return p.binaryLevel(p.multiplicative, tokPlus, tokMinus)
}

func (p *parser) multiplicative() (Node, error) {
	return p.binaryLevel(p.unary, tokStar, tokSlash, tokPercent)
}

func (p *parser) unary() (Node, error) {
	tok := p.peek()
	if tok.kind != tokNot && tok.kind != tokMinus {
		return p.primary()
	}

	p.next()

	operand, err := p.unary()
	if err != nil {
		return nil, err
	}

	return &Unary{Op: tok.text, Operand: operand}, nil
}

func (p *parser) primary() (Node, error) {
	tok := p.peek()

	switch tok.kind {
	case tokLParen:
		p.next()

		inner, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return &Paren{Inner: inner}, nil
	case tokNumber:
		p.next()
		return &Literal{Kind: LiteralNumber, Text: tok.text}, nil
	case tokString:
		p.next()
		return &Literal{Kind: LiteralString, Text: tok.text}, nil
	case tokIdent:
		return p.identifier()
	default:
		return nil, p.errorAt(tok, "unexpected %s", tok.describe())
	}
}

// identifier parses everything that starts with a word: literals, calls,
// constant references and attribute references.
func (p *parser) identifier() (Node, error) {
	tok := p.next()

	switch tok.text {
	case "null":
		return &Literal{Kind: LiteralNull, Text: tok.text}, nil
	case "true", "false":
		return &Literal{Kind: LiteralBoolean, Text: tok.text}, nil
	}

	following := p.peek()

	if following.kind == tokLParen {
		return p.call(tok)
	}

	if following.kind != tokDot {
		return nil, p.errorAt(tok, "unexpected identifier %s", tok.describe())
	}

	if strings.EqualFold(tok.text, "constant") {
		p.next()

		name, err := p.expect(tokIdent, "constant name")
		if err != nil {
			return nil, err
		}

		return &ConstantRef{Name: name.text}, nil
	}

	kind, ok := lookupAttributeKind(tok.text)
	if !ok {
		return nil, p.errorAt(tok, "unknown reference kind %s (expected header, property, body or constant)", tok.describe())
	}

	var path []string

	for p.peek().kind == tokDot {
		p.next()

		elem := p.peek()

		switch elem.kind {
		case tokIdent:
			path = append(path, elem.text)
		case tokNumber:
			// "a.1.5" lexes the number 1.5; it stands for two elements.
			path = append(path, strings.Split(elem.text, ".")...)
		default:
			return nil, p.errorAt(elem, "expected path element but found %s", elem.describe())
		}

		p.next()
	}

	return &AttributeRef{Kind: kind, Path: path}, nil
}

func (p *parser) call(name token) (Node, error) {
	p.next() // (

	c := &Call{Name: name.text}

	if p.peek().kind == tokRParen {
		p.next()
		return c, nil
	}

	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}

		c.Args = append(c.Args, arg)

		tok := p.peek()
		if tok.kind == tokComma {
			p.next()
			continue
		}

		if tok.kind == tokRParen {
			p.next()
			return c, nil
		}

		return nil, p.errorAt(tok, "expected ',' or ')' but found %s", tok.describe())
	}
}
