package query

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenLiteral
	tokenLParen
	tokenRParen
	tokenIn        // :
	tokenEquals    // =
	tokenLess      // <
	tokenGreater   // >
	tokenLessEq    // <=
	tokenGreaterEq // >=
	tokenNot
	tokenAnd
	tokenOr
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenLiteral:
		return "LITERAL"
	case tokenLParen:
		return "LPAREN"
	case tokenRParen:
		return "RPAREN"
	case tokenIn:
		return "IN"
	case tokenEquals:
		return "EQUALS"
	case tokenLess:
		return "LESS"
	case tokenGreater:
		return "GREATER"
	case tokenLessEq:
		return "LESS_EQ"
	case tokenGreaterEq:
		return "GREATER_EQ"
	case tokenNot:
		return "NOT"
	case tokenAnd:
		return "AND"
	case tokenOr:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// token is one lexical unit of a facet query. val holds the lexeme as it
// appeared in the input (unquoted for quoted literals) so that parse errors
// can quote the offending content; tokens carry no source offsets.
type token struct {
	typ tokenType
	val string
}

// isOperator reports whether the token is one of the six comparison
// operators that may follow a facet name in a condition.
func (t token) isOperator() bool {
	switch t.typ {
	case tokenIn, tokenEquals, tokenLess, tokenGreater, tokenLessEq, tokenGreaterEq:
		return true
	default:
		return false
	}
}
