// Package tui renders the portfolio page in a terminal. It drives the
// same ui.Page as the web server: mouse presses are hit-tested against
// the last layout and delivered to the page's document listeners before
// the pressed control is activated.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prashanthm/portfolio/internal/catalog"
	"github.com/prashanthm/portfolio/internal/ui"
)

type Options struct {
	// Style is a glamour standard style name for the about section.
	Style string
	Now   func() time.Time
}

type Model struct {
	page  *ui.Page
	keys  keyMap
	help  help.Model
	body  viewport.Model
	style string
	now   func() time.Time

	width  int
	height int
	focus  int

	about      string
	aboutWidth int

	layout layout
}

// layout records where the last render put each control, in screen cells.
type layout struct {
	header  string
	panel   string
	toggle  ui.Rect
	panelAt ui.Rect
	bodyTop int
	cards   []span
	modal   string
	dismiss ui.Rect
}

type hitKind int

const (
	hitNone hitKind = iota
	hitToggle
	hitCard
	hitDismiss
)

// New returns a model over a freshly mounted page.
func New(opts Options) Model {
	if opts.Style == "" {
		opts.Style = "dark"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	page := ui.NewPage()
	page.Mount()
	return Model{
		page:  page,
		keys:  defaultKeyMap(),
		help:  help.New(),
		body:  viewport.New(0, 0),
		style: opts.Style,
		now:   opts.Now,
	}
}

// Page returns the page state the model renders.
func (m Model) Page() *ui.Page { return m.page }

// Close releases the page's document listeners.
func (m Model) Close() {
	m.page.Unmount()
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(catalog.OwnerName)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return m, tea.Quit
	}

	if m.page.Modal.Open() {
		if key.Matches(msg, m.keys.Dismiss) {
			m.page.DismissModal()
			m.relayout()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.page.ToggleDropdown()
	case key.Matches(msg, m.keys.Dismiss):
		m.page.Dropdown.Close()
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Open):
		if err := m.page.SelectProject(m.focus); err != nil {
			return m, nil
		}
	case key.Matches(msg, m.keys.PageUp):
		m.body.SetYOffset(m.body.YOffset - m.body.Height/2)
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.body.SetYOffset(m.body.YOffset + m.body.Height/2)
		return m, nil
	default:
		return m, nil
	}
	m.relayout()
	m.revealFocus()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !m.page.Modal.Open() {
			m.body.SetYOffset(m.body.YOffset - 3)
		}
		return m, nil
	case tea.MouseButtonWheelDown:
		if !m.page.Modal.Open() {
			m.body.SetYOffset(m.body.YOffset + 3)
		}
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	// Resolve against what is on screen before the press changes it.
	hit, index := m.hitTest(msg.X, msg.Y)
	m.page.PointerDown(ui.Target{X: msg.X, Y: msg.Y})

	switch hit {
	case hitToggle:
		m.page.ToggleDropdown()
	case hitCard:
		m.focus = index
		_ = m.page.SelectProject(index)
	case hitDismiss:
		m.page.DismissModal()
	}
	m.relayout()
	return m, nil
}

func (m *Model) hitTest(x, y int) (hitKind, int) {
	t := ui.Target{X: x, Y: y}
	if m.page.Modal.Open() {
		// The modal covers the whole page.
		if m.layout.dismiss.Contains(t) {
			return hitDismiss, 0
		}
		return hitNone, 0
	}
	if m.layout.toggle.Contains(t) {
		return hitToggle, 0
	}
	if m.layout.panelAt.Contains(t) {
		return hitNone, 0
	}
	if y < m.layout.bodyTop || y >= m.layout.bodyTop+m.body.Height {
		return hitNone, 0
	}
	line := y - m.layout.bodyTop + m.body.YOffset
	for i, c := range m.layout.cards {
		if line >= c.start && line < c.end && x >= cardMargin && x < cardMargin+c.width {
			return hitCard, i
		}
	}
	return hitNone, 0
}

func (m *Model) moveFocus(delta int) {
	n := len(m.page.Projects())
	m.focus = (m.focus + delta + n) % n
}

// revealFocus scrolls the body so the focused card is visible.
func (m *Model) revealFocus() {
	if m.focus >= len(m.layout.cards) {
		return
	}
	c := m.layout.cards[m.focus]
	switch {
	case c.start < m.body.YOffset:
		m.body.SetYOffset(c.start)
	case c.end > m.body.YOffset+m.body.Height:
		m.body.SetYOffset(c.end - m.body.Height)
	}
}

// relayout re-renders every region and records their positions. The
// dropdown's hit areas follow the new layout.
func (m *Model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	header, toggle := m.renderHeader()
	l := layout{header: header, toggle: toggle}
	if m.page.Dropdown.Open() {
		l.panel, l.panelAt = m.renderPanel(toggle)
	}
	m.page.Dropdown.SetAreas(l.toggle, l.panelAt)

	l.bodyTop = headerHeight + l.panelAt.H
	content, cards := m.renderBody()
	l.cards = cards
	m.body.Width = m.width
	m.body.Height = max(m.height-l.bodyTop-helpHeight, 1)
	m.body.SetContent(content)

	if view, ok := m.page.ModalView(); ok {
		l.modal, l.dismiss = m.renderModal(view)
	}
	m.layout = l
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.page.Modal.Open() {
		return m.layout.modal + "\n" + m.help.ShortHelpView(m.keys.modalHelp())
	}

	parts := []string{m.layout.header}
	if m.layout.panel != "" {
		parts = append(parts, m.layout.panel)
	}
	parts = append(parts, m.body.View(), m.help.View(m.keys))
	return strings.Join(parts, "\n")
}
