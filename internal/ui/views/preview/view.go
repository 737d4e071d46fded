package preview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	scheduledto "github.com/mkarson1997/karatay-ders-program/internal/modules/schedule/dto"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PreviewPort interface {
	Preview(ctx context.Context, mode string, selections []scheduledto.CourseChoice) (scheduledto.PreviewOutput, error)
	Render(preview scheduledto.PreviewOutput) string
}

// ─── messages ────────────────────────────────────────────────────────────────

// ResolvedMsg carries a finished preview. The app model also reads it to
// copy the resolver's choices back into the course list.
type ResolvedMsg struct {
	Preview scheduledto.PreviewOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     PreviewPort
	viewport viewport.Model
	preview  scheduledto.PreviewOutput
	ready    bool
	width    int
	height   int
}

func New(port PreviewPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	vp.SetContent(theme.Muted.Render("Önizleme için r tuşuna bas."))
	return Model{port: port, viewport: vp}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		return m, nil

	case ResolvedMsg:
		if msg.Err != nil {
			m.viewport.SetContent(theme.Hot.Render("Önizleme başarısız: ") + msg.Err.Error())
			return m, nil
		}
		m.preview = msg.Preview
		m.ready = true
		m.viewport.SetContent(highlight(m.port.Render(msg.Preview)))
		m.viewport.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

// Resolve runs the resolver for the given choices and reports a ResolvedMsg.
func (m Model) Resolve(mode string, choices []scheduledto.CourseChoice) tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return ResolvedMsg{Err: fmt.Errorf("schedule adapter not configured")}
		}
		out, err := m.port.Preview(context.Background(), mode, choices)
		return ResolvedMsg{Preview: out, Err: err}
	}
}

// Current returns the last successful preview.
func (m Model) Current() (scheduledto.PreviewOutput, bool) {
	return m.preview, m.ready
}

// Reset clears the shown preview after the selection changed underneath it.
func (m *Model) Reset() {
	m.preview = scheduledto.PreviewOutput{}
	m.ready = false
	m.viewport.SetContent(theme.Muted.Render("Önizleme için r tuşuna bas."))
}

// highlight colors the resolver report: fixes green, leftover conflicts yellow.
func highlight(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "✅"):
			lines[i] = theme.Success.Render(line)
		case strings.HasPrefix(line, "⚠️"), strings.HasPrefix(line, "Çözüm:"):
			lines[i] = theme.Warning.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
