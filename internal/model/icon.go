package model

import (
	"fmt"
	"strings"
)

// Icon is a cosmetic tag attached to a checklist.
type Icon int

const (
	IconChecklist Icon = iota
	IconFace
	IconCleaning
	IconSchool
	IconDining
	IconShopping
	IconHouse
	IconAndroid

	iconCount
)

// DefaultIcon is used for checklists created through the add dialog.
const DefaultIcon = IconChecklist

var iconNames = [iconCount]string{
	IconChecklist: "checklist",
	IconFace:      "face",
	IconCleaning:  "cleaning",
	IconSchool:    "school",
	IconDining:    "dining",
	IconShopping:  "shopping",
	IconHouse:     "house",
	IconAndroid:   "android",
}

func (i Icon) String() string {
	if !i.Valid() {
		return fmt.Sprintf("icon(%d)", int(i))
	}
	return iconNames[i]
}

func (i Icon) Valid() bool { return i >= 0 && i < iconCount }

// Cycle steps through the icon set, wrapping at both ends.
func (i Icon) Cycle(delta int) Icon {
	n := int(iconCount)
	return Icon(((int(i)+delta)%n + n) % n)
}

// Icons returns every icon in display order.
func Icons() []Icon {
	out := make([]Icon, 0, iconCount)
	for i := Icon(0); i < iconCount; i++ {
		out = append(out, i)
	}
	return out
}

// ParseIcon resolves an icon by name, case-insensitively.
func ParseIcon(name string) (Icon, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range iconNames {
		if n == name {
			return Icon(i), nil
		}
	}
	return 0, fmt.Errorf("unknown icon %q", name)
}
