package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rad-runner/internal/config"
	"github.com/vovakirdan/rad-runner/internal/core"
	"github.com/vovakirdan/rad-runner/internal/runner"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Runner:  config.DefaultRunnerConfig(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPrimary},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionPrimary},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionPrimary},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPrimary},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	press := tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	if got := MapMouse(press); got != core.ActionPrimary {
		t.Errorf("left press = %v, want Primary", got)
	}

	release := tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
	if got := MapMouse(release); got != core.ActionNone {
		t.Errorf("left release = %v, want None", got)
	}

	right := tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}
	if got := MapMouse(right); got != core.ActionNone {
		t.Errorf("right press = %v, want None", got)
	}
}

func TestModelInstructionsScreen(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	view := m.View()
	hud := config.DefaultRunnerConfig().HUD
	for _, want := range []string{hud.Title, hud.StartPrompt, "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// Ticks before the first action must not start the game.
	m, _ = update(t, m, TickMsg{})
	if m.Game().State().Started {
		t.Error("game started without input")
	}
}

func TestModelActionRouting(t *testing.T) {
	m := newTestModel(t)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m, _ = update(t, m, space)
	if !m.Game().State().Started {
		t.Fatal("space did not start the game")
	}

	for i := 0; i < 30; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if got := m.Game().State().Ticks; got != 30 {
		t.Errorf("Ticks = %d, want 30", got)
	}

	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.Game().Player().Jumping {
		t.Error("click did not jump")
	}

	for i := 0; i < 2000 && !m.Game().State().Halted; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	if !m.Game().State().Halted {
		t.Fatal("run never ended")
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Error("View() missing game over screen")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	st := m.Game().State()
	if st.GameOver || st.Ticks != 0 {
		t.Errorf("after restart state = %+v", st)
	}
	if got := m.Game().Stats().Runs; got != 2 {
		t.Errorf("Runs = %d, want 2", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty while quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 10; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 41})
	if got := m.Game().State().Ticks; got != 10 {
		t.Errorf("resize reset the run: Ticks = %d", got)
	}
	if w, h := m.renderer.Size(); w != 960 || h != 640 {
		t.Errorf("viewport = (%v, %v), want (960, 640)", w, h)
	}
}

func TestModelConfigReload(t *testing.T) {
	m := newTestModel(t)
	cfg := config.DefaultRunnerConfig()
	cfg.HUD.Title = "Reloaded"

	m, cmd := update(t, m, configReloadedMsg{cfg: cfg})
	if cmd != nil {
		t.Error("expected no follow-up command without a watcher")
	}
	if !strings.Contains(m.View(), "Reloaded") {
		t.Error("instructions not redrawn with reloaded config")
	}
}

func TestBell(t *testing.T) {
	b := NewBell()

	b.Play(runner.CueJump)
	if b.Take() {
		t.Error("jump rang the bell")
	}

	b.Play(runner.CueCollision)
	if !b.Take() {
		t.Error("collision did not ring the bell")
	}
	if b.Take() {
		t.Error("Take did not reset the bell")
	}

	var nilBell *Bell
	if nilBell.Take() {
		t.Error("nil bell rang")
	}
}

func TestModelBellRingsThroughView(t *testing.T) {
	m := NewModel(Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Runner:  config.DefaultRunnerConfig(),
		Bell:    true,
	})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	rings := 0
	for i := 0; i < 2000 && !m.Game().State().Halted; i++ {
		m, _ = update(t, m, TickMsg{})
		if strings.HasPrefix(m.View(), "\a") {
			rings++
		}
	}
	if !m.Game().State().Halted {
		t.Fatal("run never ended")
	}
	if rings != 1 {
		t.Errorf("frames with BEL = %d, want 1", rings)
	}

	m, _ = update(t, m, TickMsg{})
	if strings.Contains(m.View(), "\a") {
		t.Error("BEL repeated after the collision frame")
	}
}

func TestModelWithoutBellNeverRings(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 2000 && !m.Game().State().Halted; i++ {
		m, _ = update(t, m, TickMsg{})
		if strings.Contains(m.View(), "\a") {
			t.Fatal("BEL in view without a bell")
		}
	}
}
