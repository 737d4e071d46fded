package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	exportdto "github.com/mkarson1997/karatay-ders-program/internal/modules/export/dto"
	scheduledto "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/components"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/theme"
	coursesview "github.com/mkarson1997/karatay-ders-program/internal/ui/views/courses"
	historyview "github.com/mkarson1997/karatay-ders-program/internal/ui/views/history"
	previewview "github.com/mkarson1997/karatay-ders-program/internal/ui/views/preview"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type schedulePort interface {
	ListCourses(ctx context.Context, mode string) (scheduledto.CatalogOutput, error)
	Preview(ctx context.Context, mode string, selections []scheduledto.CourseChoice) (scheduledto.PreviewOutput, error)
	Render(preview scheduledto.PreviewOutput) string
}

type exportPort interface {
	Export(ctx context.Context, format, mode, student string, selections []exportdto.CourseChoice) (exportdto.ExportOutput, error)
	History(ctx context.Context, limit int) ([]exportdto.HistoryEntry, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabCourses tabID = iota
	tabPreview
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Dersler", "Önizleme", "Geçmiş"}

var modeCycle = []string{"y1", "y2", "mix"}

// ─── async messages ───────────────────────────────────────────────────────────

type exportedMsg struct {
	out exportdto.ExportOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Toggle  key.Binding
	Group   key.Binding
	Mode    key.Binding
	Preview key.Binding
	Export  key.Binding
	Student key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select course")),
		Group:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "next group")),
		Mode:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "switch mode")),
		Preview: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resolve + preview")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export pdf")),
		Student: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "student name")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle, k.Group, k.Mode},
		{k.Preview, k.Export, k.Student},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. The course list holds the selection;
// previews and exports read it and the resolver's choices are written back.
type Model struct {
	schedule schedulePort
	export   exportPort

	courseView  coursesview.Model
	previewView previewview.Model
	historyView historyview.Model

	student   string
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(schedule schedulePort, export exportPort, mode, student string) Model {
	if mode == "" {
		mode = modeCycle[0]
	}
	var historyV historyview.Model
	if export != nil {
		historyV = historyview.New(export)
	} else {
		historyV = historyview.New(nil)
	}
	return Model{
		schedule:    schedule,
		export:      export,
		courseView:  coursesview.New(schedule, mode),
		previewView: previewview.New(schedule),
		historyView: historyV,
		student:     student,
		activeTab:   tabCourses,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "hazır",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.courseView.Init(), m.historyView.Init())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case coursesview.LoadedMsg:
		if msg.Err != nil {
			m.status = "katalog: " + msg.Err.Error()
		} else {
			m.status = "mod: " + msg.Catalog.ModeTitle
		}
		var cmd tea.Cmd
		m.courseView, cmd = m.courseView.Update(msg)
		return m, cmd

	case previewview.ResolvedMsg:
		if msg.Err != nil {
			m.status = "önizleme: " + msg.Err.Error()
		} else {
			m.status = previewStatus(msg.Preview)
			cmds = append(cmds, m.courseView.Apply(msg.Preview.Choices))
			m.activeTab = tabPreview
		}
		var cmd tea.Cmd
		m.previewView, cmd = m.previewView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case exportedMsg:
		m.status = exportStatus(msg.out, msg.err)
		if msg.err == nil {
			cmds = append(cmds, m.historyView.Refresh())
		}
		return m, tea.Batch(cmds...)

	case historyview.LoadedMsg:
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "hazır"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the course list when its search filter is active.
		if m.activeTab == tabCourses && m.courseView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			cmd := m.palette.Open()
			return m, cmd
		case "n":
			cmd := m.palette.OpenWith("ogrenci ")
			return m, cmd
		case "m":
			cmd := m.switchMode(nextMode(m.courseView.Mode()))
			return m, cmd
		case "r":
			return m, m.previewView.Resolve(m.courseView.Mode(), m.courseView.Choices())
		case "e":
			return m, m.exportCmd("pdf")
		case " ":
			if m.activeTab == tabCourses {
				m.previewView.Reset()
				cmd := m.courseView.Toggle()
				return m, cmd
			}
		case "g":
			if m.activeTab == tabCourses {
				m.previewView.Reset()
				cmd := m.courseView.CycleGroup()
				return m, cmd
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabCourses:
		m.courseView, tabCmd = m.courseView.Update(msg)
	case tabPreview:
		m.previewView, tabCmd = m.previewView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabCourses:
		return m.courseView.View()
	case tabPreview:
		return m.previewView.View()
	case tabHistory:
		return m.historyView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "dersprog  " + strings.Join(parts, sep)
	return theme.TabBar.Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.student != "" {
		left = theme.Hot.Render("● "+m.student) + "  " + left
	}
	right := theme.Muted.Render("?:yardım  tab:sekme  :::komut  q:çıkış")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "ogrenci":
		m.student = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), parts[0]))
		if m.student == "" {
			m.status = "öğrenci adı temizlendi"
		} else {
			m.status = "öğrenci: " + m.student
		}
		return m, nil

	case "mod":
		if len(parts) < 2 {
			m.status = "kullanım: mod <y1|y2|mix>"
			return m, nil
		}
		cmd := m.switchMode(parts[1])
		return m, cmd

	case "aktar":
		format := "pdf"
		if len(parts) >= 2 {
			format = parts[1]
		}
		return m, m.exportCmd(format)

	case "onizle":
		return m, m.previewView.Resolve(m.courseView.Mode(), m.courseView.Choices())

	case "gecmis":
		m.activeTab = tabHistory
		return m, m.historyView.Refresh()

	default:
		m.status = "bilinmeyen komut: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) switchMode(mode string) tea.Cmd {
	m.previewView.Reset()
	m.activeTab = tabCourses
	m.status = "mod değişti, seçimler sıfırlandı"
	return m.courseView.SetMode(mode)
}

func nextMode(current string) string {
	for i, mode := range modeCycle {
		if mode == current {
			return modeCycle[(i+1)%len(modeCycle)]
		}
	}
	return modeCycle[0]
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.courseView, _ = m.courseView.Update(sz)
	m.previewView, _ = m.previewView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
}

func previewStatus(p scheduledto.PreviewOutput) string {
	switch {
	case len(p.Conflicts) > 0:
		return fmt.Sprintf("⚠️ %d çakışma kaldı", len(p.Conflicts))
	case len(p.Changes) > 0:
		return fmt.Sprintf("✅ %d otomatik düzeltme", len(p.Changes))
	default:
		return fmt.Sprintf("%d oturum, çakışma yok", len(p.Sessions))
	}
}

func exportStatus(out exportdto.ExportOutput, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("kaydedildi: %s (%d sayfa)", out.Path, out.Pages)
	case len(out.Failure) > 0:
		return strings.Join(out.Failure, " ")
	case len(out.Warnings) > 0:
		return firstConflictLine(out.Warnings)
	default:
		return "dışa aktarma: " + err.Error()
	}
}

func firstConflictLine(warnings []string) string {
	for _, w := range warnings {
		if strings.HasPrefix(w, "⚠️") {
			return w
		}
	}
	return warnings[0]
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) exportCmd(format string) tea.Cmd {
	mode := m.courseView.Mode()
	student := m.student
	var choices []exportdto.CourseChoice
	for _, c := range m.courseView.Choices() {
		choices = append(choices, exportdto.CourseChoice{CourseID: c.CourseID, Group: c.Group})
	}
	return func() tea.Msg {
		if m.export == nil {
			return exportedMsg{err: fmt.Errorf("export adapter not configured")}
		}
		out, err := m.export.Export(context.Background(), format, mode, student, choices)
		return exportedMsg{out: out, err: err}
	}
}
