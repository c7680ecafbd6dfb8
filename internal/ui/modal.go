package ui

import (
	"slices"

	"github.com/prashanthm/portfolio/internal/catalog"
)

// Modal is the project detail overlay: closed, or open on one project.
type Modal struct {
	open     bool
	selected *catalog.Project
}

// Show selects p and opens the modal in one step.
func (m *Modal) Show(p catalog.Project) {
	m.selected = &p
	m.open = true
}

// Dismiss closes the modal. The last selection is kept but not reported.
func (m *Modal) Dismiss() {
	m.open = false
}

func (m *Modal) Open() bool { return m.open }

// Selected returns the project shown by an open modal.
func (m *Modal) Selected() (catalog.Project, bool) {
	if !m.open || m.selected == nil {
		return catalog.Project{}, false
	}
	p := *m.selected
	p.Details = slices.Clone(p.Details)
	return p, true
}
