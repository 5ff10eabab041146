package query

// Grammar, loosest binding first:
//
//	query     = [ or ] EOF
//	or        = and { OR and }
//	and       = not { [ AND ] not }
//	not       = NOT not | primary
//	primary   = "(" [ or ] ")" | condition
//	condition = literal [ operator literal ]
//
// Two adjacent primaries with no combiner between them are joined by an
// implicit AND. A literal with no trailing operator is shorthand for a
// containment test against the title facet.
type parser struct {
	tokens []token
	pos    int
}

func parse(tokens []token) (expr, error) {
	p := &parser{tokens: tokens}
	if p.peek().typ == tokenEOF {
		return &matchAllExpr{}, nil
	}
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.typ != tokenEOF {
		return nil, &ParseError{Token: tok.val, Msg: "unexpected token"}
	}
	return root, nil
}

// peek is always safe: lex appends an EOF sentinel and advance never moves
// past it.
func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.typ != tokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseOr() (expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == tokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &orExpr{left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peek().typ == tokenAnd:
			p.advance()
		case startsPrimary(p.peek()):
			// adjacency: implicit AND
		default:
			return left, nil
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &andExpr{left: left, right: right}
	}
}

func (p *parser) parseNot() (expr, error) {
	if p.peek().typ == tokenNot {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &notExpr{inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (expr, error) {
	switch tok := p.peek(); tok.typ {
	case tokenLParen:
		return p.parseGroup()
	case tokenLiteral:
		return p.parseCondition()
	case tokenEOF:
		return nil, &ParseError{Msg: "unexpected end of query"}
	default:
		return nil, &ParseError{Token: tok.val, Msg: "unexpected token"}
	}
}

func (p *parser) parseGroup() (expr, error) {
	p.advance() // consume "("
	if p.peek().typ == tokenRParen {
		p.advance()
		return &matchAllExpr{}, nil
	}
	inner, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	switch tok := p.peek(); tok.typ {
	case tokenRParen:
		p.advance()
		return inner, nil
	case tokenEOF:
		return nil, &ParseError{Token: "(", Msg: "unmatched opening parenthesis"}
	default:
		return nil, &ParseError{Token: tok.val, Msg: "expected closing parenthesis, got"}
	}
}

// parseCondition never fails on its first token: a lone literal is a valid
// condition on its own. The error cases live in the optional operator tail.
func (p *parser) parseCondition() (expr, error) {
	first := p.advance()
	if !p.peek().isOperator() {
		return &compareExpr{facet: TitleFacet, op: opIn, value: first.val}, nil
	}
	opTok := p.advance()
	valTok := p.peek()
	if valTok.typ != tokenLiteral {
		if valTok.typ == tokenEOF {
			return nil, &ParseError{Token: opTok.val, Msg: "missing value after operator"}
		}
		return nil, &ParseError{Token: valTok.val, Msg: "expected facet value, got"}
	}
	p.advance()
	return &compareExpr{facet: first.val, op: tokenOperator(opTok.typ), value: valTok.val}, nil
}

func startsPrimary(t token) bool {
	switch t.typ {
	case tokenLiteral, tokenLParen, tokenNot:
		return true
	default:
		return false
	}
}

func tokenOperator(t tokenType) operator {
	switch t {
	case tokenIn:
		return opIn
	case tokenEquals:
		return opEquals
	case tokenLess:
		return opLessThan
	case tokenGreater:
		return opGreaterThan
	case tokenLessEq:
		return opLessOrEqual
	case tokenGreaterEq:
		return opGreaterOrEqual
	default:
		return opIn
	}
}
