package courses

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	scheduledto "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListCourses(ctx context.Context, mode string) (scheduledto.CatalogOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Catalog scheduledto.CatalogOutput
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type courseItem struct {
	program  string
	course   scheduledto.CourseOutput
	selected bool
	group    int
}

func (i courseItem) Title() string {
	box := "[ ]"
	if i.selected {
		box = "[x]"
	}
	return box + " " + i.course.Name
}

func (i courseItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.program, i.groupLabel(), i.course.GroupHint)
}

func (i courseItem) FilterValue() string { return i.course.Name }

func (i courseItem) groupLabel() string {
	for _, g := range i.course.Groups {
		if g.Value == i.group {
			return g.Label
		}
	}
	return "Tek"
}

// nextGroup cycles through the offered groups, wrapping at the end.
func (i courseItem) nextGroup() int {
	groups := i.course.Groups
	for idx, g := range groups {
		if g.Value == i.group {
			return groups[(idx+1)%len(groups)].Value
		}
	}
	if len(groups) > 0 {
		return groups[0].Value
	}
	return i.group
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model lists the courses visible in the current mode together with their
// checkbox and group state. The list is the selection store of the TUI.
type Model struct {
	port      CatalogPort
	mode      string
	modeTitle string
	term      string
	list      list.Model
	spinner   spinner.Model
	loading   bool
	width     int
	height    int
}

func New(port CatalogPort, mode string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Dersler"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, mode: mode, list: l, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Dersler: " + msg.Err.Error()
			return m, nil
		}
		m.mode = msg.Catalog.Mode
		m.modeTitle = msg.Catalog.ModeTitle
		m.term = msg.Catalog.Term
		m.list.Title = "Dersler · " + m.modeTitle
		var items []list.Item
		for _, p := range msg.Catalog.Programs {
			for _, c := range p.Courses {
				items = append(items, courseItem{program: p.Name, course: c, group: c.DefaultGroup})
			}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Ders kataloğu yükleniyor…")
	}
	return m.list.View()
}

// SetMode switches the visible programs. Reloading drops every checkbox and
// group choice, so a mode change always starts from an empty selection.
func (m *Model) SetMode(mode string) tea.Cmd {
	m.mode = mode
	m.loading = true
	m.list.ResetFilter()
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Mode() string { return m.mode }

func (m Model) ModeTitle() string { return m.modeTitle }

func (m Model) Term() string { return m.term }

// Toggle flips the checkbox of the highlighted course.
func (m *Model) Toggle() tea.Cmd {
	idx, item, ok := m.current()
	if !ok {
		return nil
	}
	item.selected = !item.selected
	return m.list.SetItem(idx, item)
}

// CycleGroup moves the highlighted course to its next group. Courses
// without a group choice are left alone.
func (m *Model) CycleGroup() tea.Cmd {
	idx, item, ok := m.current()
	if !ok || !item.course.GroupSelectable {
		return nil
	}
	item.group = item.nextGroup()
	return m.list.SetItem(idx, item)
}

// Choices returns the checked courses in catalog order.
func (m Model) Choices() []scheduledto.CourseChoice {
	var out []scheduledto.CourseChoice
	for _, it := range m.list.Items() {
		item, ok := it.(courseItem)
		if !ok || !item.selected {
			continue
		}
		out = append(out, scheduledto.CourseChoice{CourseID: item.course.ID, Group: item.group})
	}
	return out
}

// Apply writes resolved choices back so the checkboxes and groups show what
// the resolver settled on.
func (m *Model) Apply(choices []scheduledto.CourseChoice) tea.Cmd {
	byID := make(map[string]int, len(choices))
	for _, c := range choices {
		byID[c.CourseID] = c.Group
	}
	var cmds []tea.Cmd
	for idx, it := range m.list.Items() {
		item, ok := it.(courseItem)
		if !ok {
			continue
		}
		group, chosen := byID[item.course.ID]
		if !chosen || (item.selected && item.group == group) {
			continue
		}
		item.selected = true
		if group != 0 {
			item.group = group
		}
		cmds = append(cmds, m.list.SetItem(idx, item))
	}
	return tea.Batch(cmds...)
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) current() (int, courseItem, bool) {
	item, ok := m.list.SelectedItem().(courseItem)
	if !ok {
		return 0, courseItem{}, false
	}
	return m.list.GlobalIndex(), item, true
}

func (m Model) loadCmd() tea.Cmd {
	mode := m.mode
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{Err: fmt.Errorf("catalog adapter not configured")}
		}
		out, err := m.port.ListCourses(context.Background(), mode)
		return LoadedMsg{Catalog: out, Err: err}
	}
}
