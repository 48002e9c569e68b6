// Package sexprparser is a minimal recursive-descent reader for the
// Head[arg1, arg2, ...] surface syntax core.Expr.String() emits: a
// symbol or number, optionally followed by a bracketed, comma-separated
// argument list, applied left to right for currying (f[x][y]). It is
// deliberately not a full expression-and-operator language front end —
// that is a Non-goal shared with the teacher's own engine/parser.go,
// which this package stands in for at a fraction of the surface.
package sexprparser

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/client9/cardinal/core"
)

// Parse reads a single expression from src.
func Parse(src string) (core.Expr, error) {
	p := &parser{tokens: tokenize(src)}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("sexprparser: unexpected trailing input at %q", p.tokens[p.pos].text)
	}
	return expr, nil
}

type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokNumber
	tokLBracket
	tokRBracket
	tokComma
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(src string) []token {
	var toks []token
	r := []rune(src)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '[':
			toks = append(toks, token{tokLBracket, "["})
			i++
		case c == ']':
			toks = append(toks, token{tokRBracket, "]"})
			i++
		case c == ',':
			toks = append(toks, token{tokComma, ","})
			i++
		case c == '-' || unicode.IsDigit(c):
			start := i
			i++
			for i < len(r) && (unicode.IsDigit(r[i]) || r[i] == '.') {
				i++
			}
			toks = append(toks, token{tokNumber, string(r[start:i])})
		case unicode.IsLetter(c) || c == '_' || c == '$':
			start := i
			i++
			for i < len(r) && (unicode.IsLetter(r[i]) || unicode.IsDigit(r[i]) || r[i] == '_') {
				i++
			}
			toks = append(toks, token{tokSymbol, string(r[start:i])})
		default:
			i++ // skip unrecognized characters rather than failing the whole read
		}
	}
	return toks
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// parseExpr reads one atom (symbol or number) and then every trailing
// [args] application, so f[x][y] curries left to right.
func (p *parser) parseExpr() (core.Expr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("sexprparser: unexpected end of input")
	}

	var expr core.Expr
	switch tok.kind {
	case tokNumber:
		n, err := parseNumber(tok.text)
		if err != nil {
			return nil, err
		}
		expr = n
	case tokSymbol:
		expr = core.NewSymbol(tok.text)
	default:
		return nil, fmt.Errorf("sexprparser: unexpected token %q", tok.text)
	}

	for {
		peeked, ok := p.peek()
		if !ok || peeked.kind != tokLBracket {
			return expr, nil
		}
		p.next() // consume '['
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		expr = core.NewFunction(expr, args...)
	}
}

func (p *parser) parseArgs() ([]core.Expr, error) {
	if peeked, ok := p.peek(); ok && peeked.kind == tokRBracket {
		p.next()
		return nil, nil
	}
	var args []core.Expr
	for {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)

		tok, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("sexprparser: unterminated argument list")
		}
		switch tok.kind {
		case tokComma:
			continue
		case tokRBracket:
			return args, nil
		default:
			return nil, fmt.Errorf("sexprparser: expected ',' or ']', got %q", tok.text)
		}
	}
}

func parseNumber(text string) (core.Expr, error) {
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("sexprparser: bad number %q: %w", text, err)
		}
		return core.NewReal(f), nil
	}
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("sexprparser: bad integer %q", text)
	}
	return core.NewIntegerFromBig(n), nil
}
