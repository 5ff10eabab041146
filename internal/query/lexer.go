package query

import (
	"strings"
	"unicode"
)

// reserved characters terminate a bare literal and never appear inside one.
// Quote characters are deliberately absent: a quote only opens a quoted
// string at the start of a token, mid-word it is ordinary literal content.
func isReserved(r rune) bool {
	switch r {
	case '(', ')', ':', '=', '<', '>':
		return true
	default:
		return false
	}
}

type lexer struct {
	input  []rune
	pos    int
	tokens []token
}

// lex splits a query string into tokens and appends a terminating EOF token.
// Runs of whitespace are discarded. The only input that fails to tokenize is
// a quoted value with no closing quote.
func lex(input string) ([]token, error) {
	l := &lexer{input: []rune(input)}
	if err := l.run(); err != nil {
		return nil, err
	}
	l.emit(tokenEOF, "")
	return l.tokens, nil
}

func (l *lexer) run() error {
	for l.pos < len(l.input) {
		r := l.input[l.pos]
		switch {
		case unicode.IsSpace(r):
			l.pos++
		case r == '(':
			l.pos++
			l.emit(tokenLParen, "(")
		case r == ')':
			l.pos++
			l.emit(tokenRParen, ")")
		case r == '<':
			l.pos++
			if l.peek() == '=' {
				l.pos++
				l.emit(tokenLessEq, "<=")
			} else {
				l.emit(tokenLess, "<")
			}
		case r == '>':
			l.pos++
			if l.peek() == '=' {
				l.pos++
				l.emit(tokenGreaterEq, ">=")
			} else {
				l.emit(tokenGreater, ">")
			}
		case r == '=':
			l.pos++
			l.emit(tokenEquals, "=")
		case r == ':':
			l.pos++
			l.emit(tokenIn, ":")
		case r == '\'' || r == '"':
			if err := l.readQuoted(r); err != nil {
				return err
			}
		default:
			l.readBare()
		}
	}
	return nil
}

func (l *lexer) peek() rune {
	if l.pos < len(l.input) {
		return l.input[l.pos]
	}
	return 0
}

func (l *lexer) emit(typ tokenType, val string) {
	l.tokens = append(l.tokens, token{typ: typ, val: val})
}

// readQuoted consumes a value delimited by the quote character q, emitting
// its content with the quotes stripped and inner whitespace intact.
func (l *lexer) readQuoted(q rune) error {
	open := l.pos
	l.pos++
	start := l.pos
	for l.pos < len(l.input) {
		if l.input[l.pos] == q {
			l.emit(tokenLiteral, string(l.input[start:l.pos]))
			l.pos++
			return nil
		}
		l.pos++
	}
	return &LexError{Pos: open, Msg: "unterminated quoted value"}
}

// readBare consumes a maximal run of non-space, non-reserved characters.
// Runs that spell a combiner keyword, in any casing, become keyword tokens;
// everything else is a literal.
func (l *lexer) readBare() {
	start := l.pos
	for l.pos < len(l.input) && !unicode.IsSpace(l.input[l.pos]) && !isReserved(l.input[l.pos]) {
		l.pos++
	}
	word := string(l.input[start:l.pos])
	switch strings.ToUpper(word) {
	case "NOT":
		l.emit(tokenNot, word)
	case "AND":
		l.emit(tokenAnd, word)
	case "OR":
		l.emit(tokenOr, word)
	default:
		l.emit(tokenLiteral, word)
	}
}
