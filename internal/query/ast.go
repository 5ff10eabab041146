package query

// operator identifies how a condition compares a record's facet value
// against the value written in the query.
type operator int

const (
	opIn operator = iota // substring containment, the default for bare literals
	opEquals
	opLessThan
	opGreaterThan
	opLessOrEqual
	opGreaterOrEqual
)

func (o operator) String() string {
	switch o {
	case opIn:
		return ":"
	case opEquals:
		return "="
	case opLessThan:
		return "<"
	case opGreaterThan:
		return ">"
	case opLessOrEqual:
		return "<="
	case opGreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// expr is a node in the parsed query tree. The concrete node types are the
// only implementations; evaluation switches over them.
type expr interface {
	expr()
}

// compareExpr is a single facet condition such as `model = CESM2`.
type compareExpr struct {
	facet string
	op    operator
	value string
}

type andExpr struct {
	left, right expr
}

type orExpr struct {
	left, right expr
}

type notExpr struct {
	inner expr
}

// matchAllExpr stands for the empty query and the empty group `()`, both of
// which accept every record.
type matchAllExpr struct{}

func (*compareExpr) expr()  {}
func (*andExpr) expr()      {}
func (*orExpr) expr()       {}
func (*notExpr) expr()      {}
func (*matchAllExpr) expr() {}
