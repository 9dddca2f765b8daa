package services

// orderedSet is a deduplicating string collection that preserves insertion
// order. Protocol phases use it so that independent rules can add the same
// ingredient without producing duplicates, while display order stays stable.
type orderedSet struct {
	values []string
	seen   map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (set *orderedSet) Add(value string) {
	if set.seen[value] {
		return
	}
	set.seen[value] = true
	set.values = append(set.values, value)
}

func (set *orderedSet) Contains(value string) bool {
	return set.seen[value]
}

func (set *orderedSet) Values() []string {
	result := make([]string, len(set.values))
	copy(result, set.values)
	return result
}
