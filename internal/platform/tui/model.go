package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/scene"
)

// footerHeight is the number of rows reserved for the help footer.
const footerHeight = 1

// Model is the Bubble Tea model driving a scene machine.
type Model struct {
	machine  *scene.Machine
	screen   *core.Screen
	clock    *core.Clock
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a Bubble Tea model around machine. The machine must
// already have a current scene.
func NewModel(machine *scene.Machine, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = machine.Context().Config.Clock.TickRate
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		machine: machine,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerHeight)),
		clock:   core.NewClock(cfg.TickRate, machine.Context().Config.Clock.MaxDelta),
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.machine.Update(m.clock.Tick(time.Time(msg)))
		if m.machine.Quitting() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Snapshot):
		m.saveScreenshot()
		return m, nil
	}

	ev, ok := m.keys.Translate(msg)
	if !ok {
		return m, nil
	}
	m.machine.HandleKey(ev)
	if m.machine.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.machine.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.machine.Context().Logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".chaos", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.machine.Context().Logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.machine.Current().Kind(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.machine.Context().Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.machine.Context().Notify("Screenshot saved")
}

// Quitting reports whether the program is shutting down.
func (m Model) Quitting() bool { return m.quitting }

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.machine.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(machine *scene.Machine, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(machine, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
