package query

import "strings"

// evaluate walks the query tree against one record. A nil tree accepts
// everything, which makes the zero Predicate usable as a match-all.
func evaluate(e expr, r Record) bool {
	if e == nil {
		return true
	}
	switch n := e.(type) {
	case *matchAllExpr:
		return true
	case *notExpr:
		return !evaluate(n.inner, r)
	case *andExpr:
		return evaluate(n.left, r) && evaluate(n.right, r)
	case *orExpr:
		return evaluate(n.left, r) || evaluate(n.right, r)
	case *compareExpr:
		return evaluateCompare(n, r)
	default:
		return false
	}
}

// evaluateCompare applies a single condition. A facet the record does not
// carry fails the condition regardless of operator. Values on both sides are
// lowercased first, and the ordering operators compare lexicographically;
// dates in ISO form order correctly under that rule, numbers may not.
func evaluateCompare(c *compareExpr, r Record) bool {
	raw, ok := r[c.facet]
	if !ok {
		return false
	}
	have := strings.ToLower(raw)
	want := strings.ToLower(c.value)
	switch c.op {
	case opIn:
		return strings.Contains(have, want)
	case opEquals:
		return have == want
	case opLessThan:
		return have < want
	case opGreaterThan:
		return have > want
	case opLessOrEqual:
		return have <= want
	case opGreaterOrEqual:
		return have >= want
	default:
		return false
	}
}
