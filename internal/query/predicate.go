// Package query implements the facet query language used to filter
// diagnostic records. A query combines conditions such as `model = CESM2`
// or bare words matched against the title facet with NOT, AND (written or
// implied by adjacency) and OR, grouped by parentheses. Compile turns a
// query string into an immutable Predicate that can be tested against any
// number of records.
package query

// Predicate is a compiled query. The zero value matches every record.
// Predicates are immutable: the composition methods return new values and
// never modify the receiver, so a Predicate is safe for concurrent use.
type Predicate struct {
	root expr
}

// Compile parses input into a Predicate. Empty or blank input compiles to
// a predicate that matches everything. On bad input the error is a
// *LexError or *ParseError naming the offending position or token.
func Compile(input string) (Predicate, error) {
	tokens, err := lex(input)
	if err != nil {
		return Predicate{}, err
	}
	root, err := parse(tokens)
	if err != nil {
		return Predicate{}, err
	}
	return Predicate{root: root}, nil
}

// MatchAll returns the predicate that accepts every record.
func MatchAll() Predicate {
	return Predicate{root: &matchAllExpr{}}
}

// FacetEquals returns a predicate satisfied when the named facet is present
// and equals value, compared case-insensitively.
func FacetEquals(name, value string) Predicate {
	return Predicate{root: &compareExpr{facet: name, op: opEquals, value: value}}
}

// Test reports whether the record satisfies the predicate.
func (p Predicate) Test(r Record) bool {
	return evaluate(p.root, r)
}

// And returns a predicate satisfied only when both p and q are.
func (p Predicate) And(q Predicate) Predicate {
	return Predicate{root: &andExpr{left: p.root, right: q.root}}
}

// Or returns a predicate satisfied when either p or q is.
func (p Predicate) Or(q Predicate) Predicate {
	return Predicate{root: &orExpr{left: p.root, right: q.root}}
}

// Invert returns the negation of p.
func (p Predicate) Invert() Predicate {
	return Predicate{root: &notExpr{inner: p.root}}
}
