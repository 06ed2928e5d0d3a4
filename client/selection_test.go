package client

import (
	"testing"

	"gotest.tools/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()

	s.Toggle(3)
	s.Toggle(1)
	s.Toggle(2)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, true, s.Has(1))

	// iteration order is insertion order
	assert.DeepEqual(t, []int{3, 1, 2}, s.IDs())

	// toggling again removes
	s.Toggle(1)
	assert.Equal(t, false, s.Has(1))
	assert.DeepEqual(t, []int{3, 2}, s.IDs())

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSelectAll(t *testing.T) {
	s := NewSelection()
	visible := []int{1, 2, 3}

	// empty visible set is never "all selected"
	assert.Equal(t, false, s.IsAllSelected(nil))

	// first call selects exactly the visible page
	s.SelectAll(visible)
	assert.DeepEqual(t, visible, s.IDs())
	assert.Equal(t, true, s.IsAllSelected(visible))

	// second call with the same visible set clears: idempotent toggle
	s.SelectAll(visible)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, false, s.IsAllSelected(visible))

	// selection outside the page is replaced, not merged
	s.Toggle(99)
	s.SelectAll(visible)
	assert.DeepEqual(t, visible, s.IDs())
	assert.Equal(t, false, s.Has(99))
}

func TestSelectionPrune(t *testing.T) {
	s := NewSelection()
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3)

	// products 2 disappeared after a refetch
	s.Prune([]int{1, 3, 4})
	assert.DeepEqual(t, []int{1, 3}, s.IDs())
	assert.Equal(t, false, s.Has(2))

	// pruning against an empty list empties the selection
	s.Prune(nil)
	assert.Equal(t, 0, s.Len())
}
