package history

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	exportdto "github.com/mkarson1997/karatay-ders-program/internal/modules/export/dto"
	"github.com/mkarson1997/karatay-ders-program/internal/ui/theme"
)

const pageSize = 50

type HistoryPort interface {
	History(ctx context.Context, limit int) ([]exportdto.HistoryEntry, error)
}

type LoadedMsg struct {
	Entries []exportdto.HistoryEntry
	Err     error
}

// Model shows the most recent exports, newest first.
type Model struct {
	port  HistoryPort
	table table.Model
	err   error
}

func New(port HistoryPort) Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true).
		Foreground(theme.Sapphire).
		Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Base).Background(theme.Lavender)
	t.SetStyles(styles)
	return Model{port: port, table: t}
}

func columns(width int) []table.Column {
	fixed := 20 + 6 + 8 + 6 + 6
	file := width - fixed - 12
	if file < 16 {
		file = 16
	}
	return []table.Column{
		{Title: "Tarih", Width: 20},
		{Title: "Biçim", Width: 6},
		{Title: "Mod", Width: 8},
		{Title: "Ders", Width: 6},
		{Title: "Sayfa", Width: 6},
		{Title: "Dosya", Width: file},
	}
}

func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetColumns(columns(msg.Width))
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 2)
		return m, nil

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		rows := make([]table.Row, 0, len(msg.Entries))
		for _, e := range msg.Entries {
			rows = append(rows, table.Row{
				e.CreatedAt,
				e.Format,
				e.Mode,
				fmt.Sprintf("%d", e.Courses),
				fmt.Sprintf("%d", e.Pages),
				filepath.Base(e.Path),
			})
		}
		m.table.SetRows(rows)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Hot.Render("Geçmiş okunamadı: ") + m.err.Error()
	}
	if len(m.table.Rows()) == 0 {
		return theme.Muted.Render("Henüz dışa aktarma yok.")
	}
	return m.table.View()
}

func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{}
		}
		entries, err := m.port.History(context.Background(), pageSize)
		return LoadedMsg{Entries: entries, Err: err}
	}
}
