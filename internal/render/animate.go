package render

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jackwarfield/5300-final-project/internal/mech"
	"github.com/jackwarfield/5300-final-project/internal/physics"
)

const (
	playerWidth  = 80
	playerHeight = 24
	graphWindow  = 600
)

type TickMsg time.Time

// PlayerOptions tunes trajectory playback.
type PlayerOptions struct {
	FPS    int // display frames per second, default 30
	Stride int // trajectory points consumed per frame, default 1
	Trail  int // path points drawn behind the moving bodies, default 300
}

func (o PlayerOptions) withDefaults() PlayerOptions {
	if o.FPS <= 0 {
		o.FPS = 30
	}
	if o.Stride <= 0 {
		o.Stride = 1
	}
	if o.Trail == 0 {
		o.Trail = 300
	}
	return o
}

// Player replays a computed trajectory in the terminal. It never
// integrates; the only mutable state is where in the trajectory the
// playback stands and what is on the canvas.
type Player struct {
	sys     mech.System
	traj    *mech.Trajectory
	opts    PlayerOptions
	canvas  *Canvas
	bounds  Bounds
	energy  []float64
	frame   int
	playing bool
}

func NewPlayer(sys mech.System, traj *mech.Trajectory, opts PlayerOptions) Player {
	p := Player{
		sys:     sys,
		traj:    traj,
		opts:    opts.withDefaults(),
		canvas:  NewCanvas(playerWidth, playerHeight),
		playing: true,
	}
	switch s := sys.(type) {
	case *physics.DoublePendulum:
		p.bounds = PendulumBounds(s)
	case *physics.TwoBody:
		p.bounds = OrbitBounds(s, traj.States)
	}
	if h, ok := sys.(mech.Hamiltonian); ok {
		p.energy = make([]float64, traj.Len())
		for i, x := range traj.States {
			p.energy[i] = h.Energy(x)
		}
	}
	return p
}

func (p Player) Init() tea.Cmd { return p.tick() }

func (p Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.opts.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.playing = !p.playing
		case "r":
			p.frame = 0
			p.playing = true
		case "[":
			p.playing = false
			p.seek(p.frame - p.opts.Stride)
		case "]":
			p.playing = false
			p.seek(p.frame + p.opts.Stride)
		}
	case TickMsg:
		if p.playing {
			p.seek(p.frame + p.opts.Stride)
			if p.frame == p.traj.Len()-1 {
				p.playing = false
			}
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) seek(frame int) {
	last := p.traj.Len() - 1
	if frame < 0 {
		frame = 0
	}
	if frame > last {
		frame = last
	}
	p.frame = frame
}

// Frame exposes the playback position, mainly for tests.
func (p Player) Frame() int { return p.frame }

func (p Player) View() string {
	p.canvas.Clear()
	switch s := p.sys.(type) {
	case *physics.DoublePendulum:
		DrawPendulum(p.canvas, p.bounds, s, p.traj.States, p.frame, p.opts.Trail)
	case *physics.TwoBody:
		DrawOrbit(p.canvas, p.bounds, s, p.traj.States, p.frame, p.opts.Trail)
	}

	last := p.traj.Len() - 1
	status := statusRunning.Render("PLAYING")
	switch {
	case p.frame == last:
		status = statusDone.Render("END")
	case !p.playing:
		status = statusPaused.Render("PAUSED")
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(p.sys.Name())) + "\n")
	s.WriteString(status + "\n\n")

	if len(p.energy) > 1 {
		lo := 0
		if p.frame+1 > graphWindow {
			lo = p.frame + 1 - graphWindow
		}
		if window := p.energy[lo : p.frame+1]; len(window) > 1 {
			s.WriteString(graphStyle.Render(SeriesPlot(window, 30, 4, "Energy")) + "\n\n")
		}
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", p.traj.Times[p.frame])) + "\n")
	if len(p.energy) > 0 {
		s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.6f", p.energy[p.frame])) + "\n")
	}
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d/%d", p.frame+1, p.traj.Len())) + "\n")

	fraction := 1.0
	if last > 0 {
		fraction = float64(p.frame) / float64(last)
	}
	s.WriteString("\n" + progressBar(fraction, 30) + "\n")
	s.WriteString(helpStyle.Render("SP:Pause R:Restart [ ]:Step Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(p.canvas.String()),
		statsStyle.Render(s.String()))
}
