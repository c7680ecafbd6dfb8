package ui

import (
	"errors"
	"fmt"
	"slices"

	"github.com/prashanthm/portfolio/internal/catalog"
)

var ErrUnknownProject = errors.New("unknown project")

// Page is the state of one rendered portfolio page.
type Page struct {
	Doc      *Document
	Dropdown *Dropdown
	Modal    *Modal

	projects []catalog.Project
	links    []catalog.Link
}

// Snapshot is a copy of a page's UI state. Selected is nil while the
// modal is closed.
type Snapshot struct {
	DropdownOpen bool             `json:"dropdown_open"`
	ModalOpen    bool             `json:"modal_open"`
	Selected     *catalog.Project `json:"selected,omitempty"`
}

// ModalView is what an open modal displays.
type ModalView struct {
	Title   string
	Bullets []string
}

// NewPage returns an unmounted page over the catalog. Its dropdown uses
// the named regions; renderers that hit-test by position replace them.
func NewPage() *Page {
	return &Page{
		Doc:      &Document{},
		Dropdown: NewDropdown(RegionToggle, RegionPanel),
		Modal:    &Modal{},
		projects: catalog.Projects(),
		links:    catalog.RepoLinks(),
	}
}

// Mount attaches the page's document listeners.
func (p *Page) Mount() {
	p.Dropdown.Mount(p.Doc)
}

// Unmount detaches everything Mount attached.
func (p *Page) Unmount() {
	p.Dropdown.Unmount()
}

func (p *Page) Mounted() bool { return p.Dropdown.Mounted() }

// Projects returns the catalog shown on the page. The result is a copy.
func (p *Page) Projects() []catalog.Project {
	out := make([]catalog.Project, len(p.projects))
	for i, proj := range p.projects {
		proj.Details = slices.Clone(proj.Details)
		out[i] = proj
	}
	return out
}

func (p *Page) Links() []catalog.Link { return slices.Clone(p.links) }

func (p *Page) ToggleDropdown() {
	p.Dropdown.Toggle()
}

// PointerDown forwards a pointer-down to the document listeners.
func (p *Page) PointerDown(t Target) {
	p.Doc.PointerDown(t)
}

// SelectProject opens the modal on the project at index i.
func (p *Page) SelectProject(i int) error {
	proj, ok := catalog.Lookup(i)
	if !ok {
		return fmt.Errorf("%w: index %d", ErrUnknownProject, i)
	}
	p.Modal.Show(proj)
	return nil
}

func (p *Page) DismissModal() {
	p.Modal.Dismiss()
}

// ModalView returns the modal's content, or false when it is closed.
func (p *Page) ModalView() (ModalView, bool) {
	proj, ok := p.Modal.Selected()
	if !ok {
		return ModalView{}, false
	}
	return ModalView{Title: proj.Title, Bullets: proj.Details}, true
}

func (p *Page) Snapshot() Snapshot {
	s := Snapshot{
		DropdownOpen: p.Dropdown.Open(),
		ModalOpen:    p.Modal.Open(),
	}
	if proj, ok := p.Modal.Selected(); ok {
		s.Selected = &proj
	}
	return s
}
