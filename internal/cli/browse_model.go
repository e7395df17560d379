package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/grapple/internal/cli/formatter"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultBrowseHeight = 20

type browseKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Filter   key.Binding
	Category key.Binding
	Open     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Category: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "category")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Category, k.Open, k.Quit}
}

// browseModel is a navigable, filterable view of the technique catalog.
type browseModel struct {
	records []domain.TechniqueRecord
	keys    browseKeyMap
	filter  textinput.Model

	filtering bool
	// category is an index into domain.Categories, or -1 for all.
	category int
	cursor   int
	offset   int
	height   int
	detail   *domain.TechniqueRecord
}

func newBrowseModel(records []domain.TechniqueRecord) *browseModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name or alias"
	ti.CharLimit = 40
	return &browseModel{
		records:  records,
		keys:     defaultBrowseKeys(),
		filter:   ti,
		category: -1,
		height:   defaultBrowseHeight,
	}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// header, filter line, blank and help take five rows
		m.height = max(3, msg.Height-5)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && (msg.String() == "ctrl+c" || !m.filtering) {
			return m, tea.Quit
		}
		switch {
		case m.detail != nil:
			return m.updateDetail(msg)
		case m.filtering:
			return m.updateFilter(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Open) {
		m.detail = nil
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.cursor, m.offset = 0, 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor, m.offset = 0, 0
	return m, cmd
}

func (m *browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visible()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Category):
		m.category++
		if m.category >= len(domain.Categories) {
			m.category = -1
		}
		m.cursor, m.offset = 0, 0
	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(visible) {
			rec := visible[m.cursor]
			m.detail = &rec
		}
	case key.Matches(msg, m.keys.Back):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor, m.offset = 0, 0
		}
	}
	m.clampCursor()
	return m, nil
}

func (m *browseModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m *browseModel) activeCategory() (domain.Category, bool) {
	if m.category < 0 || m.category >= len(domain.Categories) {
		return "", false
	}
	return domain.Categories[m.category], true
}

// visible applies the category and text filters, keeping catalog order.
func (m *browseModel) visible() []domain.TechniqueRecord {
	cat, byCategory := m.activeCategory()
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	var out []domain.TechniqueRecord
	for _, r := range m.records {
		if byCategory && r.Category != cat {
			continue
		}
		if query != "" && !recordMatches(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func recordMatches(r domain.TechniqueRecord, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, a := range r.Aliases {
		if strings.Contains(strings.ToLower(a), query) {
			return true
		}
	}
	return false
}

func (m *browseModel) View() string {
	if m.detail != nil {
		return formatter.RenderBox(m.detail.Name, formatter.FormatTechniqueDetail(*m.detail)) +
			formatter.Dim("esc back · q quit") + "\n"
	}

	var b strings.Builder
	label := "전체"
	if c, ok := m.activeCategory(); ok {
		label = c.Label()
	}
	visible := m.visible()
	b.WriteString(formatter.Header(fmt.Sprintf("Techniques · %s (%d)", label, len(visible))))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	if len(visible) == 0 {
		b.WriteString(formatter.Dim("  no matching techniques") + "\n")
	}
	end := min(len(visible), m.offset+m.height)
	for i := m.offset; i < end; i++ {
		r := visible[i]
		cursor := "  "
		name := r.Name
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
			name = formatter.Bold(name)
		}
		fmt.Fprintf(&b, "%s%s  %s %s\n", cursor, name, formatter.Dim(r.Category.Label()), formatter.TierStars(r.Difficulty))
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim(helpLine(m.keys.ShortHelp())))
	b.WriteString("\n")
	return b.String()
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
