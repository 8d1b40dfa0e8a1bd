package filter

// Chain combines filters with OR semantics.
type Chain struct {
	filters []Filter
}

// NewChain creates a new filter chain.
func NewChain() *Chain {
	return &Chain{
		filters: make([]Filter, 0),
	}
}

// Add adds a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Applies reports whether any filter in the chain applies to the kind.
func (c *Chain) Applies(kind Kind) bool {
	for _, f := range c.filters {
		if f.AppliesTo(kind) {
			return true
		}
	}
	return false
}

// Match runs the filters in sequence.
// Returns true as soon as an applicable filter matches.
// Filters are only applied if they declare they apply to the subject's kind.
func (c *Chain) Match(q Query, s Subject) bool {
	for _, f := range c.filters {
		if !f.AppliesTo(s.Kind) {
			continue
		}
		if f.Match(q, s) {
			return true
		}
	}
	return false
}

// Filters returns all filters in the chain.
func (c *Chain) Filters() []Filter {
	return c.filters
}
