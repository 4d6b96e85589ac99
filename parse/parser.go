// Package parse reads first-order clauses from a small text syntax.
//
// One clause per '.'-terminated statement, literals separated by '|':
//
//	p(X,a) | ~q(X) | f(X)=Y | a!=b.
//
// Identifiers starting with an upper-case letter are variables, all others
// are function and predicate symbols. '~' negates an atom, '=' and '!='
// build equations. '#' starts a comment running to the end of the line.
// Variables are clause-local: the same name in two clauses denotes two
// different variables.
package parse

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/petarvukmirovic/eprover-condensation/clauses"
	"github.com/petarvukmirovic/eprover-condensation/terms"
)

// A Parser reads a sequence of clauses from one input.
type Parser struct {
	bank    *terms.Bank
	s       scanner.Scanner
	eof     bool
	token   string
	varNo   int                    // next fresh variable number
	varName map[string]*terms.Term // per-clause variable scope
}

// NewParser returns a parser building terms in the given bank.
func NewParser(bank *terms.Bank, r io.Reader) *Parser {
	p := &Parser{bank: bank}
	p.s.Init(r)
	p.s.Error = func(*scanner.Scanner, string) {} // errors surface as bad tokens
	p.scan()
	return p
}

// Parse reads all clauses from r.
func Parse(bank *terms.Bank, r io.Reader) ([]*clauses.Clause, error) {
	p := NewParser(bank, r)
	var res []*clauses.Clause
	for {
		c, err := p.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
}

// ParseClause reads a single clause from input.
func ParseClause(bank *terms.Bank, input string) (*clauses.Clause, error) {
	p := NewParser(bank, strings.NewReader(input))
	c, err := p.Next()
	if err == io.EOF {
		return nil, fmt.Errorf("no clause in %q", input)
	}
	return c, err
}

// Next returns the next clause, or io.EOF after the last one.
func (p *Parser) Next() (*clauses.Clause, error) {
	if p.eof {
		return nil, io.EOF
	}
	p.varName = make(map[string]*terms.Term)
	var lits []*clauses.Literal
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		lits = append(lits, lit)
		switch p.token {
		case "|":
			p.scan()
		case ".":
			p.scan()
			c := clauses.New(lits)
			c.Weight = c.StandardWeight()
			c.PushDerivation(clauses.DCInput)
			return c, nil
		default:
			return nil, fmt.Errorf("expected '|' or '.' at %v, found %q", p.s.Pos(), p.token)
		}
	}
}

func (p *Parser) parseLiteral() (*clauses.Literal, error) {
	positive := true
	if p.token == "~" {
		positive = false
		p.scan()
	}
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch p.token {
	case "=":
		p.scan()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return clauses.NewLiteral(positive, lhs, rhs), nil
	case "!":
		p.scan()
		if p.token != "=" {
			return nil, fmt.Errorf("expected '=' after '!' at %v, found %q", p.s.Pos(), p.token)
		}
		p.scan()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return clauses.NewLiteral(!positive, lhs, rhs), nil
	}
	// A plain atom; the predicate encoding needs a non-variable head.
	if lhs.IsVar() {
		return nil, fmt.Errorf("variable cannot be a literal at %v", p.s.Pos())
	}
	return clauses.NewLiteral(positive, lhs, p.bank.True()), nil
}

func (p *Parser) parseTerm() (*terms.Term, error) {
	if p.eof {
		return nil, fmt.Errorf("expected term, found EOF at %v", p.s.Pos())
	}
	name := p.token
	if !isIdent(name) {
		return nil, fmt.Errorf("expected identifier at %v, found %q", p.s.Pos(), name)
	}
	p.scan()
	if isVariable(name) {
		v, ok := p.varName[name]
		if !ok {
			v = p.bank.Var(p.varNo)
			p.varNo++
			p.varName[name] = v
		}
		return v, nil
	}
	if p.token != "(" {
		return p.bank.Const(name), nil
	}
	p.scan()
	var args []*terms.Term
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.token == "," {
			p.scan()
			continue
		}
		if p.token != ")" {
			return nil, fmt.Errorf("expected ',' or ')' at %v, found %q", p.s.Pos(), p.token)
		}
		p.scan()
		return p.bank.Fun(terms.Symbol{Name: name, Arity: len(args)}, args...), nil
	}
}

// scan advances to the next token, skipping '#' comments.
func (p *Parser) scan() {
	if p.eof {
		return
	}
	for {
		tok := p.s.Scan()
		if tok == scanner.EOF {
			p.eof = true
			p.token = ""
			return
		}
		if tok == '#' {
			for p.s.Peek() != '\n' && p.s.Peek() != scanner.EOF {
				p.s.Next()
			}
			continue
		}
		p.token = p.s.TokenText()
		return
	}
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func isVariable(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
