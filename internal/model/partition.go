package model

// Group is the set of words sharing one feedback pattern, in input order.
type Group struct {
	Pattern Pattern
	Words   []Word
}

// Partition splits a word list by feedback pattern. Groups are ordered by
// descending size, ties by first encounter.
type Partition []Group

// Lookup returns the words for pattern.
func (p Partition) Lookup(pattern Pattern) ([]Word, bool) {
	for _, g := range p {
		if g.Pattern == pattern {
			return g.Words, true
		}
	}

	return nil, false
}

// Patterns returns the keys in partition order.
func (p Partition) Patterns() []Pattern {
	patterns := make([]Pattern, 0, len(p))
	for _, g := range p {
		patterns = append(patterns, g.Pattern)
	}

	return patterns
}

// Sizes returns the group sizes in partition order.
func (p Partition) Sizes() []int {
	sizes := make([]int, 0, len(p))
	for _, g := range p {
		sizes = append(sizes, len(g.Words))
	}

	return sizes
}

// Len returns the total number of words across all groups.
func (p Partition) Len() int {
	n := 0
	for _, g := range p {
		n += len(g.Words)
	}

	return n
}
