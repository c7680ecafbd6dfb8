package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/prashanthm/portfolio/internal/catalog"
	"github.com/prashanthm/portfolio/internal/ui"
)

const (
	headerHeight = 2
	helpHeight   = 1
	cardMargin   = 2
	maxCardWidth = 72
	maxModalW    = 60
	minModalW    = 20
)

// span is a card's position in the body content, in lines.
type span struct {
	start, end int
	width      int
}

func (m *Model) renderHeader() (string, ui.Rect) {
	arrow := "▾"
	if m.page.Dropdown.Open() {
		arrow = "▴"
	}
	gap := "   "
	about := styleNav.Render("About")
	toggle := styleBadge.Render("Explore") + " " + styleNav.Render("GitHub "+arrow)
	contact := styleNav.Render("Contact")
	nav := about + gap + toggle + gap + contact

	left := " " + styleOwner.Render(catalog.OwnerName)
	pad := m.width - lipgloss.Width(left) - lipgloss.Width(nav) - 1
	if pad < 1 {
		pad = 1
	}

	toggleRect := ui.Rect{
		X: lipgloss.Width(left) + pad + lipgloss.Width(about+gap),
		Y: 0,
		W: lipgloss.Width(toggle),
		H: 1,
	}
	line := left + strings.Repeat(" ", pad) + nav
	rule := styleRule.Render(strings.Repeat("─", m.width))
	return line + "\n" + rule, toggleRect
}

// renderPanel draws the links panel right-aligned under the toggle.
func (m *Model) renderPanel(toggle ui.Rect) (string, ui.Rect) {
	var lines []string
	for _, l := range m.page.Links() {
		lines = append(lines, termenv.Hyperlink(l.URL, l.Label), styleMuted.Render(l.URL))
	}
	box := stylePanel.Render(strings.Join(lines, "\n"))

	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x := toggle.X + toggle.W - w
	if x < 0 {
		x = 0
	}
	return indent(box, x), ui.Rect{X: x, Y: headerHeight, W: w, H: h}
}

func (m *Model) renderBody() (string, []span) {
	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	hero := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center)
	add("")
	add(hero.Render(styleHeading.Render(catalog.Greeting)))
	add(hero.Render(collapse(catalog.Tagline)))

	add(m.renderAbout())

	add(indent(styleHeading.Render("Projects"), cardMargin))
	add("")
	cardW := min(m.width-cardMargin*2, maxCardWidth)
	var cards []span
	for i, p := range m.page.Projects() {
		style := styleCard
		if i == m.focus {
			style = styleCardFocused
		}
		card := style.Width(cardW - 2).Render(
			styleNav.Render(p.Title) + "\n" + styleMuted.Render(p.Summary),
		)
		start := len(lines)
		add(indent(card, cardMargin))
		cards = append(cards, span{start: start, end: len(lines), width: lipgloss.Width(card)})
	}

	add("")
	add(indent(styleHeading.Render("Contact"), cardMargin))
	add(indent("Email: "+catalog.ContactEmail, cardMargin))
	add(indent("LinkedIn: "+catalog.LinkedIn, cardMargin))
	add("")
	add(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styleMuted.Render(catalog.Footer(m.now()))))

	return strings.Join(lines, "\n"), cards
}

// renderAbout renders the about section as markdown, cached per width.
func (m *Model) renderAbout() string {
	if m.about != "" && m.aboutWidth == m.width {
		return m.about
	}
	md := "## About Me\n\n" + catalog.AboutMe
	out, err := renderMarkdown(md, m.style, m.width)
	if err != nil {
		out = indent(styleHeading.Render("About Me"), cardMargin) + "\n\n" +
			indent(lipgloss.NewStyle().Width(m.width-cardMargin*2).Render(collapse(catalog.AboutMe)), cardMargin)
	}
	m.about = strings.TrimRight(out, "\n")
	m.aboutWidth = m.width
	return m.about
}

func renderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-cardMargin*2),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// renderModal centers the project box on the screen above the help line
// and returns the screen and the dismiss control's area.
func (m *Model) renderModal(v ui.ModalView) (string, ui.Rect) {
	boxW := max(min(maxModalW, m.width-2), minModalW)
	inner := boxW - 2
	contentW := inner - 4

	dismiss := "[×]"
	title := styleHeading.Width(contentW - lipgloss.Width(dismiss)).Render(v.Title)
	row := lipgloss.JoinHorizontal(lipgloss.Top, title, styleDismiss.Render(dismiss))

	bullets := make([]string, len(v.Bullets))
	for i, b := range v.Bullets {
		bullets[i] = "• " + b
	}
	box := styleModal.Width(inner).Render(row + "\n\n" + strings.Join(bullets, "\n"))

	screenH := max(m.height-helpHeight, 1)
	left := max((m.width-lipgloss.Width(box))/2, 0)
	top := max((screenH-lipgloss.Height(box))/2, 0)

	lines := make([]string, 0, screenH)
	for range top {
		lines = append(lines, "")
	}
	lines = append(lines, strings.Split(indent(box, left), "\n")...)
	for len(lines) < screenH {
		lines = append(lines, "")
	}

	// border + left padding
	x := left + 1 + 2 + contentW - lipgloss.Width(dismiss)
	return strings.Join(lines, "\n"), ui.Rect{X: x, Y: top + 1, W: lipgloss.Width(dismiss), H: 1}
}

func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
