package model

import "strings"

// Item is one entry of a checklist.
type Item struct {
	Text    string `json:"text" yaml:"text"`
	Checked bool   `json:"checked" yaml:"checked"`
}

// Blank reports whether the item has no visible text.
func (i Item) Blank() bool { return isBlank(i.Text) }

// Checklist is a named, ordered collection of items with an icon.
type Checklist struct {
	Name  string
	Icon  Icon
	Items []Item
}

// Clone returns a deep copy so the item slice is not shared.
func (c Checklist) Clone() Checklist {
	out := c
	if c.Items != nil {
		out.Items = make([]Item, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}

// Completed counts checked items.
func (c Checklist) Completed() int {
	n := 0
	for _, it := range c.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

// AllChecked is true for a non-empty list with every item checked.
func (c Checklist) AllChecked() bool {
	return len(c.Items) > 0 && c.Completed() == len(c.Items)
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
