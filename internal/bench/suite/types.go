package suite

import "github.com/google/uuid"

// Suite is a benchmark definition: a set of filter expressions to measure
// against one diagnostic index.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case is one measured filter expression. The expectations are optional;
// a case that carries them is also a conformance check, a case without them
// is timed only. An empty query is legal and benchmarks the match-all path.
type Case struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Query       string      `yaml:"query"`
	ExpectTotal *int64      `yaml:"expect_total,omitempty"`
	ExpectIDs   []uuid.UUID `yaml:"expect_ids,omitempty"`
}

// Checked reports whether the case carries any expectation to verify.
func (c *Case) Checked() bool {
	return c.ExpectTotal != nil || len(c.ExpectIDs) > 0
}

// ExpectedSet converts the expected id list to a set.
func (c *Case) ExpectedSet() map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(c.ExpectIDs))
	for _, id := range c.ExpectIDs {
		set[id] = struct{}{}
	}
	return set
}
