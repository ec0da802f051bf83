package render

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuEntry is one launchable scenario in the interactive menu.
type MenuEntry struct {
	System string
	Preset string
	Detail string
}

// BuildFunc integrates the chosen entry and returns its player. It runs
// synchronously on selection.
type BuildFunc func(e MenuEntry) (Player, error)

const (
	launcherMenu = iota
	launcherPlayback
)

// Launcher is the screen shown when the binary starts without a
// subcommand: pick a preset, watch it play, esc back to the list.
type Launcher struct {
	entries []MenuEntry
	build   BuildFunc
	cursor  int
	state   int
	status  string
	player  Player
}

func NewLauncher(entries []MenuEntry, build BuildFunc) Launcher {
	return Launcher{entries: entries, build: build}
}

func (l Launcher) Init() tea.Cmd { return nil }

func (l Launcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if l.state == launcherPlayback {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			l.state = launcherMenu
			return l, nil
		}
		next, cmd := l.player.Update(msg)
		l.player = next.(Player)
		return l, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return l, tea.Quit
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.entries)-1 {
			l.cursor++
		}
	case "enter", " ":
		if len(l.entries) == 0 {
			return l, nil
		}
		player, err := l.build(l.entries[l.cursor])
		if err != nil {
			l.status = err.Error()
			return l, nil
		}
		l.player = player
		l.state = launcherPlayback
		l.status = ""
		return l, l.player.Init()
	}
	return l, nil
}

// Cursor exposes the menu position, mainly for tests.
func (l Launcher) Cursor() int { return l.cursor }

func (l Launcher) View() string {
	if l.state == launcherPlayback {
		return l.player.View() + "\n" + helpStyle.Render("ESC:Menu")
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("MECHSIM") + "\n")
	b.WriteString("  " + menuDim.Render("lagrangian mechanics lab") + "\n\n")

	for i, e := range l.entries {
		line := fmt.Sprintf("%-16s %-14s %s", e.System, e.Preset, e.Detail)
		if i == l.cursor {
			b.WriteString("  " + menuActive.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + menuDim.Render("  "+line) + "\n")
		}
	}

	if l.status != "" {
		b.WriteString("\n  " + menuError.Render(l.status) + "\n")
	}
	b.WriteString("\n  " + helpStyle.Render("j/k: move  enter: run  q: quit") + "\n")
	return b.String()
}
