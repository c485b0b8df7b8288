package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-launchview/internal/report"
	"github.com/litescript/ls-launchview/internal/state"
	"github.com/litescript/ls-launchview/internal/visibility"
)

// Styles shared by the list and detail views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	badgeStyles = map[visibility.Likelihood]lipgloss.Style{
		visibility.LikelihoodNone:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		visibility.LikelihoodLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		visibility.LikelihoodMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		visibility.LikelihoodHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	}
)

// LikelihoodBadge renders a colored likelihood label.
func LikelihoodBadge(l visibility.Likelihood) string {
	style, ok := badgeStyles[l]
	if !ok {
		style = badgeStyles[visibility.LikelihoodNone]
	}
	return style.Render(fmt.Sprintf("%-8s", report.Badge(l)))
}

// ListModel is the upcoming launches table.
type ListModel struct {
	width    int
	height   int
	cursor   int
	min      visibility.Likelihood
	now      time.Time
	snapshot state.Snapshot
	launches []visibility.Assessment // after the likelihood filter
	lastErr  error
}

// NewListModel creates a new list model.
func NewListModel() ListModel {
	return ListModel{}
}

// SetSize updates the viewport size.
func (m ListModel) SetSize(width, height int) ListModel {
	m.width = width
	m.height = height
	return m
}

// SetNow sets the reference time used for countdowns.
func (m ListModel) SetNow(now time.Time) ListModel {
	m.now = now
	return m
}

// SetError sets the last error for display.
func (m ListModel) SetError(err error) ListModel {
	m.lastErr = err
	return m
}

// UpdateData updates the model with new data.
func (m ListModel) UpdateData(snapshot state.Snapshot) ListModel {
	m.snapshot = snapshot
	if snapshot.LastError == nil {
		m.lastErr = nil
	}
	return m.refilter()
}

// MinLikelihood returns the active filter.
func (m ListModel) MinLikelihood() visibility.Likelihood {
	return m.min
}

func (m ListModel) refilter() ListModel {
	m.launches = m.launches[:0:0]
	for _, a := range m.snapshot.Launches {
		if a.Result.Likelihood >= m.min {
			m.launches = append(m.launches, a)
		}
	}
	if m.cursor >= len(m.launches) {
		m.cursor = len(m.launches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// Update handles messages.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.launches)-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if len(m.launches) > 0 {
				m.cursor = len(m.launches) - 1
			}
		case "f":
			m.min = (m.min + 1) % visibility.Likelihood(len(visibility.Likelihoods))
			m = m.refilter()
		case "enter":
			if a, ok := m.Selected(); ok {
				id := a.Record.ID
				return m, func() tea.Msg { return OpenLaunchMsg{LaunchID: id} }
			}
		}
	}

	return m, nil
}

// Selected returns the launch under the cursor, if any.
func (m ListModel) Selected() (visibility.Assessment, bool) {
	if m.cursor < 0 || m.cursor >= len(m.launches) {
		return visibility.Assessment{}, false
	}
	return m.launches[m.cursor], true
}

// View renders the list.
func (m ListModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if m.snapshot.LastEval.IsZero() && m.lastErr == nil {
		b.WriteString("Waiting for launch data...\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Upcoming Launches (min %s)", m.min)))
	b.WriteString("\n")

	header := fmt.Sprintf("%-12s %-16s %-32s %-6s %-21s %-4s %-8s",
		"T-", "Local", "Launch", "Orbit", "Sky", "Dir", "Chance")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.launches) == 0 {
		b.WriteString("  No launches match\n")
		return b.String()
	}

	maxRows := m.height - 6
	if maxRows < 5 {
		maxRows = 5
	}

	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := startIdx + maxRows
	if endIdx > len(m.launches) {
		endIdx = len(m.launches)
	}

	for i := startIdx; i < endIdx; i++ {
		a := m.launches[i]

		row := fmt.Sprintf("%-12s %-16s %-32s %-6s %-21s %-4s ",
			m.countdown(a),
			a.LocalTime.Format("Jan 02 15:04 MST"),
			truncate(a.Record.Name, 32),
			truncate(a.Record.OrbitClass, 6),
			a.Result.Twilight,
			a.Trajectory.Direction,
		)

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString(LikelihoodBadge(a.Result.Likelihood))
		b.WriteString("\n")
	}

	if len(m.launches) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d launches", startIdx+1, endIdx, len(m.launches)))
	}

	return b.String()
}

func (m ListModel) countdown(a visibility.Assessment) string {
	if m.now.IsZero() {
		return ""
	}
	d := a.Record.Time.Sub(m.now)
	if d < 0 {
		return "launched"
	}
	return "T-" + report.FormatCountdown(d)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
