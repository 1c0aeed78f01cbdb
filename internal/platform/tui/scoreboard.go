package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/consulting-chaos/internal/highscore"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the board list sidebar
	sidebarWidth       = 20 // Width of the board list sidebar
)

// board is one page of the scoreboard.
type board int

const (
	boardLeaderboard board = iota
	boardBests
)

var boardTitles = []string{"Leaderboard", "Personal Bests"}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("29")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("35")).
			MarginBottom(1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	record      highscore.Record
	board       board
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard over a loaded record.
func NewScoreboardModel(rec highscore.Record, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		record:      rec.Clone(),
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a table with columns for the current board.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	var columns []table.Column
	switch m.board {
	case boardBests:
		columns = []table.Column{
			{Title: "Stage", Width: 20},
			{Title: "Best", Width: 10},
		}
	default:
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Name", Width: 14},
			{Title: "Title", Width: 14},
			{Title: "Total", Width: 9},
			{Title: "Date", Width: 12},
		}
		// Give spare width to the text columns.
		if spare := tableWidth - 53 - 10; spare > 0 {
			columns[1].Width += min(spare/2, 10)
			columns[2].Width += min(spare/2, 10)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("29")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// rows returns the table rows of the current board.
func (m ScoreboardModel) rows() []table.Row {
	switch m.board {
	case boardBests:
		return bestRows(m.record)
	default:
		return leaderboardRows(m.record)
	}
}

func leaderboardRows(rec highscore.Record) []table.Row {
	rows := make([]table.Row, len(rec.Leaderboard))
	for i, e := range rec.Leaderboard {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			e.Title,
			fmt.Sprintf("%.2fs", e.Total),
			e.Date.Local().Format("Jan 02 2006"),
		}
	}
	return rows
}

func bestRows(rec highscore.Record) []table.Row {
	var rows []table.Row
	if rec.BestTotal != nil {
		rows = append(rows, table.Row{"Total", fmt.Sprintf("%.2fs", *rec.BestTotal)})
	}
	stages := make([]string, 0, len(rec.BestStage))
	for name := range rec.BestStage {
		stages = append(stages, name)
	}
	sort.Strings(stages)
	for _, name := range stages {
		rows = append(rows, table.Row{name, fmt.Sprintf("%.2fs", rec.BestStage[name])})
	}
	return rows
}

// updateTableRows refreshes the table from the record.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

// switchBoard moves to another board and rebuilds the table.
func (m *ScoreboardModel) switchBoard(delta int) {
	n := len(boardTitles)
	m.board = board((int(m.board) + delta + n) % n)
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBoard):
			m.switchBoard(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard):
			m.switchBoard(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "CONSULTING CHAOS - " + strings.ToUpper(boardTitles[m.board])
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a board list sidebar.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := panelStyle.Width(sidebarWidth)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for i, title := range boardTitles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if board(i) == m.board {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + title))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", panelStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with board tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabs := make([]string, len(boardTitles))
	for i, title := range boardTitles {
		if board(i) == m.board {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = footerStyle.Render(" " + title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.table.Rows()) == 0 {
		return footerStyle.Italic(true).Padding(2, 4).Render("No runs recorded yet.\nFinish a run to make the board!")
	}
	return m.table.View()
}

// centerText centers a single-line string in width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// RunScoreboard runs the leaderboard screen until the player quits.
func RunScoreboard(rec highscore.Record, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(rec, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
