package action

import "fmt"

// Section is a visually separated run of menu entries.
type Section []Action

// Menu is the ordered overflow menu.
type Menu struct {
	Sections []Section
}

// BuildMenu resolves a fixed section layout of qualified names against r.
func BuildMenu(r *Registry, layout [][]string) (Menu, error) {
	menu := Menu{Sections: make([]Section, 0, len(layout))}
	seen := make(map[string]struct{})
	for _, names := range layout {
		section := make(Section, 0, len(names))
		for _, name := range names {
			a, ok := r.Lookup(name)
			if !ok {
				return Menu{}, fmt.Errorf("%w: menu entry %s", ErrUnknownAction, name)
			}
			if _, dup := seen[name]; dup {
				return Menu{}, fmt.Errorf("%w: menu entry %s", ErrDuplicateAction, name)
			}
			seen[name] = struct{}{}
			section = append(section, a)
		}
		menu.Sections = append(menu.Sections, section)
	}
	return menu, nil
}

// Entries flattens the sections in display order.
func (m Menu) Entries() []Action {
	var out []Action
	for _, section := range m.Sections {
		out = append(out, section...)
	}
	return out
}

// Contains reports whether a is one of the menu entries.
func (m Menu) Contains(a Action) bool {
	for _, entry := range m.Entries() {
		if entry == a {
			return true
		}
	}
	return false
}

// SectionStart reports whether the flattened entry at idx opens a section
// other than the first.
func (m Menu) SectionStart(idx int) bool {
	offset := 0
	started := false
	for _, section := range m.Sections {
		if len(section) == 0 {
			continue
		}
		if idx == offset {
			return started
		}
		started = true
		offset += len(section)
	}
	return false
}
