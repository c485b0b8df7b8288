// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-launchview/internal/astro"
	"github.com/litescript/ls-launchview/internal/state"
	"github.com/litescript/ls-launchview/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// DataUpdateMsg signals a freshly evaluated batch is available.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a load or evaluation error.
	ErrorMsg struct {
		Error error
	}

	// OpenLaunchMsg requests the detail view for a launch.
	OpenLaunchMsg struct {
		LaunchID string
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode ViewMode
	width    int
	height   int
	ready    bool
	now      time.Time

	list   ListModel
	detail DetailModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	now := time.Now()
	return Model{
		state:    stateMgr,
		viewMode: ViewList,
		now:      now,
		list:     NewListModel().SetNow(now),
		detail:   NewDetailModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "l":
			m.viewMode = ViewList
		case "2", "d":
			m.openSelected()
		case "esc":
			m.viewMode = ViewList
		case "tab":
			if m.viewMode == ViewList {
				m.openSelected()
			} else {
				m.viewMode = ViewList
			}

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header is 3 lines, footer 2
		contentHeight := msg.Height - 6
		m.list = m.list.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		m.now = time.Time(msg)
		m.list = m.list.SetNow(m.now)
		if m.state != nil {
			m.applySnapshot(m.state.Snapshot())
		}

	case DataUpdateMsg:
		m.applySnapshot(msg.Snapshot)

	case OpenLaunchMsg:
		if msg.LaunchID != "" {
			m.detail = m.detail.SetLaunch(msg.LaunchID)
			m.viewMode = ViewDetail
		}

	case ErrorMsg:
		m.list = m.list.SetError(msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.list = m.list.UpdateData(snap)
	m.detail = m.detail.UpdateData(snap)
}

func (m *Model) openSelected() {
	if a, ok := m.list.Selected(); ok {
		m.detail = m.detail.SetLaunch(a.Record.ID)
		m.viewMode = ViewDetail
	}
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewList:
		content = m.list.View()
	case ViewDetail:
		content = m.detail.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	var b strings.Builder

	title := "LS-LAUNCHVIEW"
	runes := []rune(title)
	b.WriteString("  ")
	for col, r := range runes {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(gradientColor(col, len(runes))))
		b.WriteString(style.Render(string(r)))
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  launch visibility from %s · v%s", astro.Bermuda.Name, version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the title gradient,
// running from dusk orange to deep blue.
func gradientColor(col, width int) string {
	if width <= 1 {
		return "#F97316"
	}
	t := float64(col) / float64(width-1)

	// #F97316 -> #3B82F6
	r := 249 + t*(59-249)
	g := 115 + t*(130-115)
	b := 22 + t*(246-22)

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	i := int(v)
	if i > 255 {
		return 255
	}
	if i < 0 {
		return 0
	}
	return i
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Launches", "[2] Detail"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var status string
	switch {
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case !m.snapshot.LastEval.IsZero():
		status = dimStyle.Render(fmt.Sprintf("Evaluated %d launches at %s (%v)",
			len(m.snapshot.Launches),
			m.snapshot.LastEval.Local().Format("15:04:05"),
			m.snapshot.EvalDuration.Round(time.Millisecond)))
		if n := len(m.snapshot.Failures); n > 0 {
			status += errorStyle.Render(fmt.Sprintf("  %d skipped", n))
		}
	default:
		status = dimStyle.Render("Loading...")
	}

	help := dimStyle.Render("[q]uit [tab]switch [enter]open [f]ilter [esc]back")
	return status + "\n" + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
