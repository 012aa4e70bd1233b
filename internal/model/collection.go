package model

// Collection holds the ordered checklists and is the single source of
// truth for counters and rendering. Out-of-range positions are ignored
// and reported with a false return.
type Collection struct {
	lists []Checklist
}

func NewCollection(lists ...Checklist) *Collection {
	c := &Collection{lists: make([]Checklist, 0, len(lists))}
	for _, l := range lists {
		c.lists = append(c.lists, l.Clone())
	}
	return c
}

func (c *Collection) Len() int { return len(c.lists) }

// At returns a copy of the checklist at index.
func (c *Collection) At(index int) (Checklist, bool) {
	if !c.valid(index) {
		return Checklist{}, false
	}
	return c.lists[index].Clone(), true
}

// Lists returns a copy of every checklist in order.
func (c *Collection) Lists() []Checklist {
	out := make([]Checklist, len(c.lists))
	for i, l := range c.lists {
		out[i] = l.Clone()
	}
	return out
}

func (c *Collection) Add(list Checklist) {
	c.lists = append(c.lists, list.Clone())
}

func (c *Collection) Delete(index int) bool {
	if !c.valid(index) {
		return false
	}
	c.lists = append(c.lists[:index], c.lists[index+1:]...)
	return true
}

func (c *Collection) Replace(index int, list Checklist) bool {
	if !c.valid(index) {
		return false
	}
	c.lists[index] = list.Clone()
	return true
}

func (c *Collection) ToggleItem(listIndex, itemIndex int) bool {
	it := c.item(listIndex, itemIndex)
	if it == nil {
		return false
	}
	it.Checked = !it.Checked
	return true
}

func (c *Collection) SetItemChecked(listIndex, itemIndex int, value bool) bool {
	it := c.item(listIndex, itemIndex)
	if it == nil {
		return false
	}
	it.Checked = value
	return true
}

// SetAllChecked sets every item of one checklist to value.
func (c *Collection) SetAllChecked(listIndex int, value bool) bool {
	if !c.valid(listIndex) {
		return false
	}
	items := c.lists[listIndex].Items
	for i := range items {
		items[i].Checked = value
	}
	return true
}

// ---- counters, always recomputed from the lists ----

func (c *Collection) TotalLists() int { return len(c.lists) }

func (c *Collection) CompletedItems() int {
	n := 0
	for _, l := range c.lists {
		n += l.Completed()
	}
	return n
}

func (c *Collection) TotalItems() int {
	n := 0
	for _, l := range c.lists {
		n += len(l.Items)
	}
	return n
}

func (c *Collection) valid(index int) bool { return index >= 0 && index < len(c.lists) }

func (c *Collection) item(listIndex, itemIndex int) *Item {
	if !c.valid(listIndex) {
		return nil
	}
	items := c.lists[listIndex].Items
	if itemIndex < 0 || itemIndex >= len(items) {
		return nil
	}
	return &items[itemIndex]
}
