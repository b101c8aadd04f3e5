package algorithm

// Marks is an insertion-ordered set of IDs. The zero value is ready to use.
type Marks struct {
	ids []string
	pos map[string]int
}

// Add inserts id if absent and reports whether it was added.
func (m *Marks) Add(id string) bool {
	if m.pos == nil {
		m.pos = make(map[string]int)
	}
	if _, ok := m.pos[id]; ok {
		return false
	}
	m.pos[id] = len(m.ids)
	m.ids = append(m.ids, id)

	return true
}

// Remove deletes id, keeping the order of the others, and reports whether it
// was present. Complexity: O(n).
func (m *Marks) Remove(id string) bool {
	i, ok := m.pos[id]
	if !ok {
		return false
	}
	m.ids = append(m.ids[:i], m.ids[i+1:]...)
	delete(m.pos, id)
	for j := i; j < len(m.ids); j++ {
		m.pos[m.ids[j]] = j
	}

	return true
}

// Has reports membership.
func (m *Marks) Has(id string) bool {
	_, ok := m.pos[id]

	return ok
}

// Len returns the number of IDs.
func (m *Marks) Len() int { return len(m.ids) }

// IDs returns a copy of the IDs in insertion order.
func (m *Marks) IDs() []string { return cloneIDs(m.ids) }

// Reset empties the set.
func (m *Marks) Reset() {
	m.ids = m.ids[:0]
	m.pos = make(map[string]int)
}
