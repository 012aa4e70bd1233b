package board

// Layout tracks the one/two-column display mode and the per-checklist
// expanded flag. Positions never seen before are expanded.
type Layout struct {
	TwoColumn bool
	collapsed map[int]bool
}

func NewLayout(twoColumn bool) *Layout {
	return &Layout{TwoColumn: twoColumn, collapsed: map[int]bool{}}
}

func (l *Layout) ToggleColumns() { l.TwoColumn = !l.TwoColumn }

func (l *Layout) Expanded(index int) bool { return !l.collapsed[index] }

func (l *Layout) ToggleExpanded(index int) {
	if l.collapsed[index] {
		delete(l.collapsed, index)
		return
	}
	l.collapsed[index] = true
}

// Remove forgets index and shifts the flags of later positions down by
// one, keeping them attached to the same checklists.
func (l *Layout) Remove(index int) {
	shifted := make(map[int]bool, len(l.collapsed))
	for i, c := range l.collapsed {
		switch {
		case i < index:
			shifted[i] = c
		case i > index:
			shifted[i-1] = c
		}
	}
	l.collapsed = shifted
}
