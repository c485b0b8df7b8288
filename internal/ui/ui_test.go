package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-launchview/internal/launch"
	"github.com/litescript/ls-launchview/internal/state"
	"github.com/litescript/ls-launchview/internal/visibility"
)

func testSnapshot(t *testing.T) state.Snapshot {
	t.Helper()

	records := []launch.Record{
		{
			ID:         "gto",
			Name:       "Falcon 9 Block 5 | Nusantara Lima",
			OrbitClass: "GTO",
			Time:       time.Date(2025, 8, 12, 23, 59, 0, 0, time.UTC),
		},
		{
			ID:         "leo",
			Name:       "Falcon 9 Block 5 | Bandwagon-4",
			OrbitClass: "LEO",
			Time:       time.Date(2025, 8, 7, 14, 1, 0, 0, time.UTC),
		},
	}

	m := state.NewManager(state.DefaultConfig())
	m.Update(visibility.NewEvaluator().EvaluateAll(records), time.Millisecond, nil)
	return m.Snapshot()
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModel_ViewBeforeReady(t *testing.T) {
	m := New(nil)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q, want Initializing...", got)
	}
}

func TestModel_DataUpdateAndNavigation(t *testing.T) {
	m := New(nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, DataUpdateMsg{Snapshot: testSnapshot(t)})

	if !strings.Contains(m.View(), "Nusantara") {
		t.Error("list view should show the GTO launch")
	}

	m = update(t, m, OpenLaunchMsg{LaunchID: "gto"})
	if m.viewMode != ViewDetail {
		t.Fatalf("viewMode = %v, want ViewDetail", m.viewMode)
	}
	if m.detail.LaunchID() != "gto" {
		t.Errorf("detail launch = %q, want gto", m.detail.LaunchID())
	}
	if !strings.Contains(m.View(), "[HIGH]") {
		t.Error("detail view should show the HIGH verdict")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.viewMode != ViewList {
		t.Errorf("esc should return to list, got %v", m.viewMode)
	}

	// Cursor starts on the earliest launch.
	m = update(t, m, keyRune('2'))
	if m.viewMode != ViewDetail || m.detail.LaunchID() != "leo" {
		t.Errorf("open selected: mode=%v id=%q, want detail/leo", m.viewMode, m.detail.LaunchID())
	}
}

func TestModel_OpenWithoutData(t *testing.T) {
	m := New(nil)
	m = update(t, m, keyRune('2'))
	if m.viewMode != ViewList {
		t.Errorf("opening with no launches should stay on list, got %v", m.viewMode)
	}
	m = update(t, m, OpenLaunchMsg{})
	if m.viewMode != ViewList {
		t.Errorf("empty OpenLaunchMsg should be ignored, got %v", m.viewMode)
	}
}

func TestModel_ErrorMsg(t *testing.T) {
	m := New(nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m = update(t, m, ErrorMsg{Error: errors.New("listing unreadable")})

	if !strings.Contains(m.View(), "listing unreadable") {
		t.Error("view should surface the error")
	}
}

func TestModel_TickWithoutState(t *testing.T) {
	m := New(nil)
	at := time.Date(2025, 8, 12, 20, 0, 0, 0, time.UTC)
	next, cmd := m.Update(TickMsg(at))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := next.(Model).now; !got.Equal(at) {
		t.Errorf("now = %v, want %v", got, at)
	}
}

func TestModel_TickPullsSnapshot(t *testing.T) {
	mgr := state.NewManager(state.DefaultConfig())
	m := New(mgr)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	records := []launch.Record{{ID: "a", Name: "Alpha", Time: time.Date(2025, 8, 12, 23, 59, 0, 0, time.UTC)}}
	mgr.Update(visibility.NewEvaluator().EvaluateAll(records), time.Millisecond, nil)

	m = update(t, m, TickMsg(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)))
	if !strings.Contains(m.View(), "Alpha") {
		t.Error("tick should refresh the list from the state manager")
	}
}

func TestGradientColor(t *testing.T) {
	tests := []struct {
		col, width int
		want       string
	}{
		{0, 10, "#F97316"},
		{9, 10, "#3B82F6"},
		{0, 1, "#F97316"},
	}

	for _, tt := range tests {
		if got := gradientColor(tt.col, tt.width); got != tt.want {
			t.Errorf("gradientColor(%d, %d) = %s, want %s", tt.col, tt.width, got, tt.want)
		}
	}
}
