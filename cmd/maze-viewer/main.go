// Windowed viewer for a running attempt. Starts on autopilot.
//
// Keys: P toggles autopilot, arrows/WASD move, Shift sprints, C cloaks,
// R reshuffles portals, Enter retries after the attempt ends.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/devlikebear/gamehub-sub000/config"
	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/session"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

const (
	screenW = 960
	screenH = 680
	margin  = 40
	hudH    = 60
)

var (
	colBackground = color.RGBA{R: 12, G: 14, B: 18, A: 255}
	colEdge       = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	colNode       = color.RGBA{R: 140, G: 150, B: 170, A: 255}
	colPortal     = color.RGBA{R: 60, G: 200, B: 200, A: 255}
	colExit       = color.RGBA{R: 90, G: 255, B: 120, A: 255}
	colPlayer     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colCloaked    = color.RGBA{R: 90, G: 140, B: 160, A: 255}
	colBarBack    = color.RGBA{R: 40, G: 40, B: 48, A: 255}
)

var bandColors = map[pursuer.Band]color.RGBA{
	pursuer.Unaware:    {R: 80, G: 120, B: 255, A: 255},
	pursuer.Suspicious: {R: 255, G: 210, B: 60, A: 255},
	pursuer.Hunting:    {R: 255, G: 60, B: 60, A: 255},
}

type Game struct {
	sess      *session.Session
	dt        time.Duration
	started   time.Time
	autopilot bool
	prevKeys  map[ebiten.Key]bool
}

func newGame(cfg config.Config) *Game {
	opts := cfg.SessionOptions()
	opts.EventLimit = 128
	opts.EventSink = func(e session.Event) { log.Println(e) }
	return &Game{
		sess:      session.New(opts),
		dt:        cfg.TickInterval(),
		started:   time.Now(),
		autopilot: true,
		prevKeys:  make(map[ebiten.Key]bool),
	}
}

// pressed reports a key that went down this update
func (g *Game) pressed(k ebiten.Key, current map[ebiten.Key]bool) bool {
	current[k] = ebiten.IsKeyPressed(k)
	return current[k] && !g.prevKeys[k]
}

func (g *Game) Update() error {
	current := map[ebiten.Key]bool{}

	if g.pressed(ebiten.KeyP, current) {
		g.autopilot = !g.autopilot
	}
	if g.pressed(ebiten.KeyEnter, current) && g.sess.Outcome() != session.Running {
		g.sess.Retry(time.Since(g.started))
		g.started = time.Now()
	}
	reshuffle := g.pressed(ebiten.KeyR, current)
	g.prevKeys = current

	if g.sess.Outcome() != session.Running {
		return nil
	}

	in := session.Autopilot{}.Decide(g.sess)
	if !g.autopilot {
		in = manualInput()
	}
	in.Reshuffle = in.Reshuffle || reshuffle
	g.sess.Tick(g.dt, in)
	return nil
}

func manualInput() session.Input {
	var move vmath.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}
	return session.Input{
		Move:    move,
		Sprint:  ebiten.IsKeyPressed(ebiten.KeyShift),
		Cloaked: ebiten.IsKeyPressed(ebiten.KeyC),
	}
}

// toScreen maps maze coordinates into the drawing area above the HUD
func (g *Game) toScreen(p vmath.Vec2) (float32, float32) {
	m := g.sess.Maze()
	w := float64(screenW - 2*margin)
	h := float64(screenH - hudH - 2*margin)
	return float32(margin + p.X/m.Width*w), float32(margin + p.Y/m.Height*h)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	m := g.sess.Maze()

	for _, layer := range m.Layers {
		for _, n := range layer.Nodes {
			x0, y0 := g.toScreen(n.Position)
			for _, id := range n.Neighbors() {
				if id < n.ID {
					continue
				}
				if other, ok := m.Node(id); ok {
					x1, y1 := g.toScreen(other.Position)
					vector.StrokeLine(screen, x0, y0, x1, y1, 1.0, colEdge, true)
				}
			}
		}
	}

	outer := len(m.Layers) - 1
	for li, layer := range m.Layers {
		for _, n := range layer.Nodes {
			x, y := g.toScreen(n.Position)
			switch {
			case n.IsPortal && li == outer:
				vector.FillCircle(screen, x, y, 7, colExit, true)
			case n.IsPortal:
				vector.StrokeCircle(screen, x, y, 6, 2, colPortal, true)
			default:
				vector.FillCircle(screen, x, y, 3, colNode, true)
			}
		}
	}

	for _, p := range g.sess.Pursuers() {
		x, y := g.toScreen(p.Position)
		col := bandColors[p.Band()]
		r := float32(p.Config.DetectionRadius / m.Width * float64(screenW-2*margin))
		vector.StrokeCircle(screen, x, y, r, 1, color.RGBA{R: col.R, G: col.G, B: col.B, A: 70}, true)
		vector.FillCircle(screen, x, y, 6, col, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.2f", p.ID, p.Awareness), int(x)+8, int(y)-8)
	}

	px, py := g.toScreen(g.sess.Player())
	playerCol := colPlayer
	if g.autopilot {
		if in := (session.Autopilot{}).Decide(g.sess); in.Cloaked {
			playerCol = colCloaked
		}
	} else if ebiten.IsKeyPressed(ebiten.KeyC) {
		playerCol = colCloaked
	}
	vector.FillCircle(screen, px, py, 5, playerCol, true)

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	top := float32(screenH - hudH)
	meter := g.sess.Meter()
	bars := []struct {
		label string
		value float64
	}{
		{"threat", meter.Threat},
		{"visibility", meter.Visibility},
		{"heat", meter.Heat},
		{"detection", g.sess.DetectionProbability()},
	}
	for i, b := range bars {
		x := float32(margin + i*220)
		ebitenutil.DebugPrintAt(screen, b.label, int(x), int(top))
		vector.FillRect(screen, x, top+18, 180, 10, colBarBack, false)
		vector.FillRect(screen, x, top+18, float32(180*vmath.Clamp01(b.value)), 10, bandColors[pursuer.BandOf(b.value)], false)
	}

	mode := "manual"
	if g.autopilot {
		mode = "autopilot"
	}
	status := fmt.Sprintf("level %d  seed %d  tick %d  %s  %s", g.sess.Level(), g.sess.Seed(), g.sess.Ticks(), mode, g.sess.Outcome())
	if g.sess.Outcome() != session.Running {
		status += "  (enter to retry)"
	}
	ebitenutil.DebugPrintAt(screen, status, margin, int(top)+36)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	g := newGame(cfg)
	ebiten.SetTPS(max(1, int(time.Second/g.dt)))
	ebiten.SetWindowTitle("Stealth Maze Viewer")
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
