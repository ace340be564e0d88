package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duckshoot/internal/config"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return s, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel(SessionOptions{
		GameID: stubID,
		Store:  openTestStore(t),
		Player: "alice",
	}, testRuntime())
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("entering a game should start its tick loop, not quit")
	}
	if m.opts.Preset != config.DifficultyNormal {
		t.Errorf("preset = %q, want normal", m.opts.Preset)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("session should render the game")
	}

	m, _ = sessionSend(t, m, runeKey("b"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after back", m.screen)
	}
	if m.quitting {
		t.Error("back should not end the session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores || isQuit(cmd) {
		t.Fatal("tab should open the scoreboard inside the session")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view expected")
	}

	m, cmd = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || isQuit(cmd) {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	tests := []struct {
		name  string
		setup []tea.Msg
	}{
		{"from menu", nil},
		{"from game", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}},
		{"from scores", []tea.Msg{tea.KeyMsg{Type: tea.KeyTab}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestSession(t)
			for _, msg := range tt.setup {
				m, _ = sessionSend(t, m, msg)
			}
			m, cmd := sessionSend(t, m, runeKey("q"))
			if !m.quitting || !isQuit(cmd) {
				t.Error("q should end the session")
			}
			if m.View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestSessionResizeCarriesToGame(t *testing.T) {
	m := newTestSession(t)
	m, _ = sessionSend(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if w, h := m.gameModel.screen.Width(), m.gameModel.screen.Height(); w != 120 || h != 40 {
		t.Errorf("game screen = %dx%d, want 120x40", w, h)
	}
}

func TestSessionUnknownGame(t *testing.T) {
	m := NewSessionModel(SessionOptions{GameID: "no-such-game"}, testRuntime())
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenMenu {
		t.Error("a game that cannot be created should leave the menu up")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Error("the error should be shown")
	}
}
