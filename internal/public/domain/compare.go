package domain

// MaxCompareItems is the number of compare slots.
const MaxCompareItems = 2

// CompareSelection holds up to two businesses chosen for side-by-side
// comparison plus whether the comparison modal is open.
//
// Every operation is total: requests that would break the invariants
// (duplicate id, third item, opening the modal with fewer than two items)
// are ignored. The modal flag is false whenever the selection does not hold
// exactly two items.
//
// A CompareSelection is not safe for concurrent use.
type CompareSelection struct {
	items     []Business
	modalOpen bool
}

// CompareSnapshot is a read-only copy of a CompareSelection.
type CompareSnapshot struct {
	Items      []Business
	ModalOpen  bool
	CanAdd     bool
	CanCompare bool
}

// NewCompareSelection returns an empty selection.
func NewCompareSelection() *CompareSelection {
	return &CompareSelection{items: make([]Business, 0, MaxCompareItems)}
}

// Add appends b unless it is already selected or both slots are taken. It
// reports whether the selection changed.
func (c *CompareSelection) Add(b Business) bool {
	if c.Contains(b.ID) || !c.CanAdd() {
		return false
	}
	c.items = append(c.items, b.Clone())
	return true
}

// Remove drops the business with the given id. It reports whether an item
// was removed.
func (c *CompareSelection) Remove(id int) bool {
	for i, item := range c.items {
		if item.ID != id {
			continue
		}
		c.items = append(c.items[:i], c.items[i+1:]...)
		c.modalOpen = false
		return true
	}
	return false
}

// Toggle removes b when selected, otherwise adds it when a slot is free.
func (c *CompareSelection) Toggle(b Business) bool {
	if c.Contains(b.ID) {
		return c.Remove(b.ID)
	}
	return c.Add(b)
}

// Clear empties the selection and closes the modal.
func (c *CompareSelection) Clear() {
	c.items = c.items[:0]
	c.modalOpen = false
}

// OpenModal opens the comparison modal when exactly two items are selected.
// It reports whether the modal state changed.
func (c *CompareSelection) OpenModal() bool {
	if !c.CanCompare() || c.modalOpen {
		return false
	}
	c.modalOpen = true
	return true
}

// CloseModal closes the comparison modal. It reports whether it was open.
func (c *CompareSelection) CloseModal() bool {
	if !c.modalOpen {
		return false
	}
	c.modalOpen = false
	return true
}

// Contains reports whether a business with id is selected.
func (c *CompareSelection) Contains(id int) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// CanAdd reports whether a compare slot is free.
func (c *CompareSelection) CanAdd() bool {
	return len(c.items) < MaxCompareItems
}

// CanCompare reports whether both slots are filled.
func (c *CompareSelection) CanCompare() bool {
	return len(c.items) == MaxCompareItems
}

// Len returns the number of selected items.
func (c *CompareSelection) Len() int {
	return len(c.items)
}

// ModalOpen reports whether the comparison modal is open.
func (c *CompareSelection) ModalOpen() bool {
	return c.modalOpen
}

// Items returns a copy of the selected businesses in selection order.
func (c *CompareSelection) Items() []Business {
	items := make([]Business, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item.Clone())
	}
	return items
}

// Snapshot returns a read-only copy of the current state.
func (c *CompareSelection) Snapshot() CompareSnapshot {
	return CompareSnapshot{
		Items:      c.Items(),
		ModalOpen:  c.modalOpen,
		CanAdd:     c.CanAdd(),
		CanCompare: c.CanCompare(),
	}
}
