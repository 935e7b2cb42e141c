// Interactive terminal sandbox: walk the player out of the ring maze past the pursuers.
//
// Keys: arrows move, s sprint, c cloak, r reshuffle portals, a autopilot,
// Enter retries after capture or escape, Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/devlikebear/gamehub-sub000/config"
	"github.com/devlikebear/gamehub-sub000/maze"
	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/session"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

const (
	hudRows      = 3
	moveHoldTime = 180 * time.Millisecond
)

var configFlag = flag.String("config", "", "YAML config file")

type Game struct {
	screen        tcell.Screen
	width, height int

	cfg     config.Config
	sess    *session.Session
	cues    *Cues
	started time.Time

	// Input state; terminals report key presses only, so movement holds briefly
	move      vmath.Vec2
	moveUntil time.Time
	sprint    bool
	cloaked   bool
	reshuffle bool
	autopilot bool
}

func NewGame(cfg config.Config) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	g := &Game{
		screen:  screen,
		cfg:     cfg,
		cues:    NewCues(cfg.Audio),
		started: time.Now(),
	}
	g.width, g.height = screen.Size()

	opts := cfg.SessionOptions()
	opts.EventSink = g.onEvent
	opts.EventLimit = 256
	g.sess = session.New(opts)

	return g, nil
}

func (g *Game) onEvent(e session.Event) {
	log.Println(e)
	g.cues.OnEvent(e)
}

func (g *Game) input() session.Input {
	reshuffle := g.reshuffle
	g.reshuffle = false

	if g.autopilot {
		in := session.Autopilot{}.Decide(g.sess)
		in.Reshuffle = in.Reshuffle || reshuffle
		return in
	}

	in := session.Input{Sprint: g.sprint, Cloaked: g.cloaked, Reshuffle: reshuffle}
	if time.Now().Before(g.moveUntil) {
		in.Move = g.move
	}
	return in
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.hold(vmath.V(0, -1))
		case tcell.KeyDown:
			g.hold(vmath.V(0, 1))
		case tcell.KeyLeft:
			g.hold(vmath.V(-1, 0))
		case tcell.KeyRight:
			g.hold(vmath.V(1, 0))
		case tcell.KeyEnter:
			if g.sess.Outcome() != session.Running {
				g.sess.Retry(time.Since(g.started))
				g.started = time.Now()
				log.Printf("retry: attempt %s seed %d", g.sess.ID(), g.sess.Seed())
				logMaze(g.sess.Maze())
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 's':
				g.sprint = !g.sprint
			case 'c':
				g.cloaked = !g.cloaked
			case 'r':
				g.reshuffle = true
			case 'a':
				g.autopilot = !g.autopilot
			case 'q':
				return false
			}
		}

	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) hold(dir vmath.Vec2) {
	g.move = dir
	g.moveUntil = time.Now().Add(moveHoldTime)
}

// --- Rendering ---

// cell maps maze coordinates onto the screen area above the HUD
func (g *Game) cell(p vmath.Vec2) (int, int) {
	m := g.sess.Maze()
	w := float64(g.width - 1)
	h := float64(g.height - hudRows - 1)
	return int(math.Round(p.X / m.Width * w)), int(math.Round(p.Y / m.Height * h))
}

func (g *Game) put(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height-hudRows {
		g.screen.SetContent(x, y, r, nil, style)
	}
}

func (g *Game) drawEdge(a, b vmath.Vec2, style tcell.Style) {
	x0, y0 := g.cell(a)
	x1, y1 := g.cell(b)
	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		g.put(x0+int(math.Round(float64(x1-x0)*t)), y0+int(math.Round(float64(y1-y0)*t)), '·', style)
	}
}

func (g *Game) draw() {
	g.screen.Clear()
	m := g.sess.Maze()

	edgeStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, layer := range m.Layers {
		for _, n := range layer.Nodes {
			for _, id := range n.Neighbors() {
				// Draw each undirected edge once
				if id < n.ID {
					continue
				}
				if other, ok := m.Node(id); ok {
					g.drawEdge(n.Position, other.Position, edgeStyle)
				}
			}
		}
	}

	outer := len(m.Layers) - 1
	for li, layer := range m.Layers {
		for _, n := range layer.Nodes {
			x, y := g.cell(n.Position)
			switch {
			case n.IsPortal && li == outer:
				g.put(x, y, '◎', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true))
			case n.IsPortal:
				g.put(x, y, '◌', tcell.StyleDefault.Foreground(tcell.ColorTeal))
			default:
				g.put(x, y, 'o', tcell.StyleDefault.Foreground(tcell.ColorSilver))
			}
		}
	}

	for _, p := range g.sess.Pursuers() {
		x, y := g.cell(p.Position)
		g.put(x, y, pursuerGlyph(p.Archetype), bandStyle(p.Band()))
	}

	px, py := g.cell(g.sess.Player())
	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	if g.cloaked {
		playerStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	}
	g.put(px, py, '@', playerStyle)

	g.drawHUD()
	g.screen.Show()
}

func (g *Game) drawHUD() {
	meter := g.sess.Meter()
	top := g.height - hudRows

	g.text(0, top, tcell.StyleDefault, fmt.Sprintf("threat %s  vis %s  heat %s  detect %3.0f%%",
		bar(meter.Threat), bar(meter.Visibility), bar(meter.Heat), g.sess.DetectionProbability()*100))

	mode := "walk"
	if g.sprint {
		mode = "sprint"
	}
	if g.cloaked {
		mode += "+cloak"
	}
	if g.autopilot {
		mode = "autopilot"
	}
	g.text(0, top+1, tcell.StyleDefault.Foreground(tcell.ColorGray),
		fmt.Sprintf("level %d  seed %d  tick %d  %s  portals %d", g.sess.Level(), g.sess.Seed(), g.sess.Ticks(), mode, len(g.sess.Maze().ActivePortals)))

	status, style := "arrows move  s sprint  c cloak  r reshuffle  a autopilot  esc quit", tcell.StyleDefault.Foreground(tcell.ColorGray)
	switch g.sess.Outcome() {
	case session.Captured:
		status, style = "CAPTURED - enter to retry", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case session.Escaped:
		status, style = "ESCAPED - enter to retry", tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	}
	g.text(0, top+2, style, status)
}

func (g *Game) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		if x >= g.width {
			return
		}
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func bar(v float64) string {
	const width = 10
	n := int(math.Round(vmath.Clamp01(v) * width))
	out := make([]rune, width)
	for i := range out {
		out[i] = '░'
		if i < n {
			out[i] = '█'
		}
	}
	return string(out)
}

func pursuerGlyph(a pursuer.Archetype) rune {
	switch a {
	case pursuer.Seeker:
		return 'S'
	case pursuer.Warden:
		return 'W'
	default:
		return 'K'
	}
}

func bandStyle(b pursuer.Band) tcell.Style {
	switch b {
	case pursuer.Hunting:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case pursuer.Suspicious:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// --- Loop ---

func (g *Game) run() {
	tick := g.cfg.TickInterval()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if g.sess.Outcome() == session.Running {
				g.sess.Tick(tick, g.input())
			}
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.cues.Close()
	g.screen.Fini()
}

// logMaze records the layout so a seed can be replayed from the log
func logMaze(m maze.State) {
	for _, l := range m.Layers {
		log.Printf("layer %s: %d nodes, portals %v, rotation %v", l.ID, len(l.Nodes), l.PortalIndices(), l.PortalRotation)
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	game, err := NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			game.screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSTEALTH SANDBOX CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer game.cleanup()

	logMaze(game.sess.Maze())
	game.run()
}
