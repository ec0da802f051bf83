package render

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func launcherFixture(t *testing.T) Launcher {
	t.Helper()
	entries := []MenuEntry{
		{System: "double_pendulum", Preset: "chaotic", Detail: "30s"},
		{System: "two_body", Preset: "heavy_primary", Detail: "30s"},
	}
	build := func(e MenuEntry) (Player, error) {
		if e.System == "two_body" {
			return Player{}, errors.New("boom")
		}
		return playerFixture(t), nil
	}
	return NewLauncher(entries, build)
}

func launcherUpdate(t *testing.T, l Launcher, msg tea.Msg) Launcher {
	t.Helper()
	m, _ := l.Update(msg)
	return m.(Launcher)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLauncherNavigation(t *testing.T) {
	l := launcherFixture(t)
	if l.Cursor() != 0 {
		t.Fatalf("initial cursor = %d, want 0", l.Cursor())
	}

	l = launcherUpdate(t, l, keyMsg("j"))
	if l.Cursor() != 1 {
		t.Errorf("cursor after j = %d, want 1", l.Cursor())
	}

	// Clamps at the last entry.
	l = launcherUpdate(t, l, keyMsg("j"))
	if l.Cursor() != 1 {
		t.Errorf("cursor ran past the end: %d", l.Cursor())
	}

	l = launcherUpdate(t, l, keyMsg("k"))
	if l.Cursor() != 0 {
		t.Errorf("cursor after k = %d, want 0", l.Cursor())
	}
}

func TestLauncherLaunchAndReturn(t *testing.T) {
	l := launcherFixture(t)

	l = launcherUpdate(t, l, tea.KeyMsg{Type: tea.KeyEnter})
	view := l.View()
	if !strings.Contains(view, "DOUBLE_PENDULUM") {
		t.Errorf("playback view missing the system header:\n%s", view)
	}
	if !strings.Contains(view, "ESC:Menu") {
		t.Errorf("playback view missing the return hint:\n%s", view)
	}

	l = launcherUpdate(t, l, tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(l.View(), "MECHSIM") {
		t.Errorf("esc did not return to the menu:\n%s", l.View())
	}
}

func TestLauncherBuildErrorStaysOnMenu(t *testing.T) {
	l := launcherFixture(t)
	l = launcherUpdate(t, l, keyMsg("j"))
	l = launcherUpdate(t, l, tea.KeyMsg{Type: tea.KeyEnter})

	view := l.View()
	if !strings.Contains(view, "boom") {
		t.Errorf("build error not surfaced:\n%s", view)
	}
	if !strings.Contains(view, "MECHSIM") {
		t.Errorf("launcher left the menu after a failed build:\n%s", view)
	}
}

func TestLauncherQuit(t *testing.T) {
	l := launcherFixture(t)
	_, cmd := l.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q should quit, got %T", cmd())
	}
}
