package ui

// Dropdown is the GitHub links menu. It starts closed.
type Dropdown struct {
	open   bool
	toggle Area
	panel  Area
	sub    *Subscription
}

// NewDropdown returns a closed dropdown whose toggle control and panel
// occupy the given areas.
func NewDropdown(toggle, panel Area) *Dropdown {
	return &Dropdown{toggle: toggle, panel: panel}
}

// Mount registers the outside-click listener on doc. A dropdown holds at
// most one subscription; mounting again releases the previous one first.
func (d *Dropdown) Mount(doc *Document) {
	d.sub.Release()
	d.sub = doc.AddPointerDownListener(d.handlePointerDown)
}

// Unmount releases the outside-click listener.
func (d *Dropdown) Unmount() {
	d.sub.Release()
	d.sub = nil
}

func (d *Dropdown) Mounted() bool { return d.sub != nil }

func (d *Dropdown) Open() bool { return d.open }

// Toggle flips the panel's visibility.
func (d *Dropdown) Toggle() {
	d.open = !d.open
}

// Close hides the panel.
func (d *Dropdown) Close() {
	d.open = false
}

// SetAreas replaces the hit areas used for outside-click detection.
func (d *Dropdown) SetAreas(toggle, panel Area) {
	d.toggle = toggle
	d.panel = panel
}

func (d *Dropdown) handlePointerDown(t Target) {
	if !d.open {
		return
	}
	if contains(d.toggle, t) || contains(d.panel, t) {
		return
	}
	d.open = false
}

func contains(a Area, t Target) bool {
	return a != nil && a.Contains(t)
}
