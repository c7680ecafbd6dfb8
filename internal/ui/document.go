// Package ui holds the portfolio page's interactive state: the GitHub
// dropdown, the project modal and the document-level pointer listener
// that dismisses the dropdown on outside clicks.
//
// Nothing in this package is safe for concurrent use. A Page is owned by
// one renderer, which must serialize events the way a UI event loop does.
package ui

// Target describes where a pointer-down landed. The server fills Region
// from the nearest tagged element in the browser; the terminal renderer
// fills the cell coordinates.
type Target struct {
	Region string
	X, Y   int
}

// Area reports whether a pointer target lies within it.
type Area interface {
	Contains(t Target) bool
}

// Region is an Area matched by name.
type Region string

const (
	RegionToggle Region = "dropdown-toggle"
	RegionPanel  Region = "dropdown-panel"
)

func (r Region) Contains(t Target) bool {
	return r != "" && t.Region == string(r)
}

// Rect is an Area of terminal cells. The zero Rect contains nothing.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(t Target) bool {
	return t.X >= r.X && t.X < r.X+r.W && t.Y >= r.Y && t.Y < r.Y+r.H
}

// PointerHandler receives pointer-down events from a Document.
type PointerHandler func(Target)

// Document dispatches pointer-down events to its registered listeners.
type Document struct {
	next      int
	listeners []listener
}

type listener struct {
	id int
	fn PointerHandler
}

// Subscription is a registered listener. Release removes it; calling
// Release more than once is a no-op.
type Subscription struct {
	doc *Document
	id  int
}

// AddPointerDownListener registers fn and returns its subscription.
func (d *Document) AddPointerDownListener(fn PointerHandler) *Subscription {
	d.next++
	d.listeners = append(d.listeners, listener{id: d.next, fn: fn})
	return &Subscription{doc: d, id: d.next}
}

// PointerDown delivers t to every listener in registration order.
func (d *Document) PointerDown(t Target) {
	// A listener may release itself while we iterate.
	snapshot := append([]listener(nil), d.listeners...)
	for _, l := range snapshot {
		l.fn(t)
	}
}

// Listeners returns the number of registered listeners.
func (d *Document) Listeners() int {
	return len(d.listeners)
}

func (s *Subscription) Release() {
	if s == nil || s.doc == nil {
		return
	}
	ls := s.doc.listeners
	for i, l := range ls {
		if l.id == s.id {
			s.doc.listeners = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	s.doc = nil
}
