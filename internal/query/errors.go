package query

import "fmt"

// LexError reports input that could not be tokenized. Pos is the rune
// offset of the offending character in the original query string.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

// ParseError reports a token sequence that does not form a valid query.
// Token holds the offending token's content when one is available.
type ParseError struct {
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Token)
}
