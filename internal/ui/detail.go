package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-launchview/internal/astro"
	"github.com/litescript/ls-launchview/internal/report"
	"github.com/litescript/ls-launchview/internal/state"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	activeLevelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	dimLevelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// DetailModel shows a single launch assessment.
type DetailModel struct {
	width    int
	height   int
	id       string
	snapshot state.Snapshot
}

// NewDetailModel creates a new detail model.
func NewDetailModel() DetailModel {
	return DetailModel{}
}

// SetSize updates the viewport size.
func (m DetailModel) SetSize(width, height int) DetailModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DetailModel) UpdateData(snapshot state.Snapshot) DetailModel {
	m.snapshot = snapshot
	return m
}

// SetLaunch selects the launch to show.
func (m DetailModel) SetLaunch(id string) DetailModel {
	m.id = id
	return m
}

// LaunchID returns the selected launch ID.
func (m DetailModel) LaunchID() string {
	return m.id
}

func (m DetailModel) index() int {
	for i, a := range m.snapshot.Launches {
		if a.Record.ID == m.id {
			return i
		}
	}
	return -1
}

// Update handles messages. Up and down step through launches in time order.
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		idx := m.index()
		if idx < 0 {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if idx > 0 {
				m.id = m.snapshot.Launches[idx-1].Record.ID
			}
		case "down", "j":
			if idx < len(m.snapshot.Launches)-1 {
				m.id = m.snapshot.Launches[idx+1].Record.ID
			}
		}
	}
	return m, nil
}

// View renders the detail view.
func (m DetailModel) View() string {
	idx := m.index()
	if idx < 0 {
		return "No launch selected. Press [1] and [enter] on a launch.\n"
	}
	a := m.snapshot.Launches[idx]

	var card strings.Builder
	report.WriteCard(&card, a)

	var b strings.Builder
	b.WriteString(cardStyle.Render(strings.TrimRight(card.String(), "\n")))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Sky"))
	b.WriteString("\n  ")
	b.WriteString(renderTwilightScale(a.Result.Twilight))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Verdict"))
	b.WriteString("\n  ")
	b.WriteString(LikelihoodBadge(a.Result.Likelihood))
	b.WriteString("\n")

	if events := m.launchEvents(a.Record.ID); len(events) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("History"))
		b.WriteString("\n")
		var log strings.Builder
		report.WriteEvents(&log, events, 5)
		for _, line := range strings.Split(strings.TrimRight(log.String(), "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

func (m DetailModel) launchEvents(id string) []state.Event {
	var out []state.Event
	for _, e := range m.snapshot.Events {
		if e.LaunchID == id {
			out = append(out, e)
		}
	}
	return out
}

// renderTwilightScale draws the twilight levels brightest to darkest with
// the current one highlighted.
func renderTwilightScale(current astro.TwilightLevel) string {
	parts := make([]string, len(astro.TwilightLevels))
	for i, level := range astro.TwilightLevels {
		label := strings.TrimSuffix(level.String(), " Twilight")
		if level == current {
			parts[i] = activeLevelStyle.Render(" " + label + " ")
		} else {
			parts[i] = dimLevelStyle.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, "›")
}
