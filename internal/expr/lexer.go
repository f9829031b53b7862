package expr

import (
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokLParen
	tokRParen
	tokComma
	tokDot
	tokOr
	tokAnd
	tokEq
	tokNe
	tokLt
	tokLe
	tokGt
	tokGe
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokNot
)

type token struct {
	kind tokenKind
	text string
	line int
	pos  int
}

func (t token) describe() string {
	if t.kind == tokEOF {
		return "end of input"
	}

	return strconv.Quote(t.text)
}

var operators = map[string]tokenKind{
	"||": tokOr,
	"&&": tokAnd,
	"==": tokEq,
	"!=": tokNe,
	"<=": tokLe,
	">=": tokGe,
	"<":  tokLt,
	">":  tokGt,
	"+":  tokPlus,
	"-":  tokMinus,
	"*":  tokStar,
	"/":  tokSlash,
	"%":  tokPercent,
	"!":  tokNot,
	"(":  tokLParen,
	")":  tokRParen,
	",":  tokComma,
	".":  tokDot,
}

type lexer struct {
	src  []rune
	off  int
	line int
	col  int
}

// tokenize splits src into tokens, ending with a tokEOF token.
func tokenize(src string) ([]token, error) {
	lx := &lexer{src: []rune(src), line: 1}

	var toks []token

	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (lx *lexer) peekRune(ahead int) (rune, bool) {
	if lx.off+ahead >= len(lx.src) {
		return 0, false
	}

	return lx.src[lx.off+ahead], true
}

func (lx *lexer) advance() rune {
	r := lx.src[lx.off]
	lx.off++

	if r == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}

	return r
}

func (lx *lexer) next() (token, error) {
	for {
		r, ok := lx.peekRune(0)
		if !ok || !unicode.IsSpace(r) {
			break
		}

		lx.advance()
	}

	line, pos := lx.line, lx.col

	r, ok := lx.peekRune(0)
	if !ok {
		return token{kind: tokEOF, line: line, pos: pos}, nil
	}

	switch {
	case isWordRune(r):
		return lx.word(line, pos)
	case r == '\'' || r == '"':
		return lx.str(line, pos)
	}

	if r2, ok := lx.peekRune(1); ok {
		if kind, found := operators[string([]rune{r, r2})]; found {
			lx.advance()
			lx.advance()

			return token{kind: kind, text: string([]rune{r, r2}), line: line, pos: pos}, nil
		}
	}

	if kind, found := operators[string(r)]; found {
		lx.advance()
		return token{kind: kind, text: string(r), line: line, pos: pos}, nil
	}

	return token{}, syntaxErrorf(line, pos, "unexpected character %q", r)
}

func isWordRune(r rune) bool {
	return r == '_' || r == '\\' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// word scans identifiers and numbers. A word made of digits only is a number
// and may continue with a fractional part.
func (lx *lexer) word(line, pos int) (token, error) {
	start := lx.off
	digitsOnly := true

	for {
		r, ok := lx.peekRune(0)
		if !ok || !isWordRune(r) {
			break
		}

		if r == '\\' {
			lx.advance()

			if _, ok := lx.peekRune(0); !ok {
				return token{}, syntaxErrorf(lx.line, lx.col, "unterminated escape sequence")
			}
		}

		if !unicode.IsDigit(r) {
			digitsOnly = false
		}

		lx.advance()
	}

	if !digitsOnly {
		return token{kind: tokIdent, text: string(lx.src[start:lx.off]), line: line, pos: pos}, nil
	}

	if r, ok := lx.peekRune(0); ok && r == '.' {
		if r2, ok := lx.peekRune(1); ok && unicode.IsDigit(r2) {
			lx.advance()

			for {
				r, ok := lx.peekRune(0)
				if !ok || !unicode.IsDigit(r) {
					break
				}

				lx.advance()
			}
		}
	}

	return token{kind: tokNumber, text: string(lx.src[start:lx.off]), line: line, pos: pos}, nil
}

// str scans a quoted string literal, keeping quotes and escapes verbatim.
func (lx *lexer) str(line, pos int) (token, error) {
	start := lx.off
	quote := lx.advance()

	for {
		r, ok := lx.peekRune(0)
		if !ok {
			return token{}, syntaxErrorf(line, pos, "unterminated string literal")
		}

		lx.advance()

		switch r {
		case '\\':
			if _, ok := lx.peekRune(0); !ok {
				return token{}, syntaxErrorf(line, pos, "unterminated string literal")
			}

			lx.advance()
		case quote:
			return token{kind: tokString, text: string(lx.src[start:lx.off]), line: line, pos: pos}, nil
		}
	}
}
