package client

// Selection tracks the set of selected product ids across page
// boundaries. Iteration order is insertion order, which fixes the
// order bulk delete issues its requests in.
type Selection struct {
	members map[int]bool
	order   []int
}

func NewSelection() *Selection {
	return &Selection{members: map[int]bool{}}
}

func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) Has(id int) bool {
	return s.members[id]
}

// IDs returns the selected ids in insertion order.
func (s *Selection) IDs() []int {
	ids := make([]int, len(s.order))
	copy(ids, s.order)
	return ids
}

// Toggle flips membership of the given id.
func (s *Selection) Toggle(id int) {
	if s.members[id] {
		s.remove(id)
		return
	}

	s.members[id] = true
	s.order = append(s.order, id)
}

// SelectAll clears the entire selection when the visible set is
// already fully selected; otherwise the selection becomes exactly the
// visible ids.
func (s *Selection) SelectAll(visibleIDs []int) {
	if s.IsAllSelected(visibleIDs) {
		s.Clear()
		return
	}

	s.Clear()
	for _, id := range visibleIDs {
		if !s.members[id] {
			s.members[id] = true
			s.order = append(s.order, id)
		}
	}
}

// IsAllSelected reports whether the selection covers the visible set;
// an empty visible set is never "all selected".
func (s *Selection) IsAllSelected(visibleIDs []int) bool {
	return len(visibleIDs) > 0 && len(s.order) == len(visibleIDs)
}

func (s *Selection) Clear() {
	s.members = map[int]bool{}
	s.order = nil
}

// Prune drops members that no longer exist in the last-known product
// list, keeping the selection invariant after a refetch.
func (s *Selection) Prune(existingIDs []int) {
	existing := make(map[int]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	var kept []int
	for _, id := range s.order {
		if existing[id] {
			kept = append(kept, id)
		} else {
			delete(s.members, id)
		}
	}
	s.order = kept
}

func (s *Selection) remove(id int) {
	delete(s.members, id)
	for i, member := range s.order {
		if member == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
