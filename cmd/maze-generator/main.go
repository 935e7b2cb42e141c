package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/devlikebear/gamehub-sub000/maze"
	"github.com/devlikebear/gamehub-sub000/parameter"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== LAYERED RING MAZE GENERATOR ===")

		w := getInt(reader, fmt.Sprintf("Width (default %v): ", parameter.SessionDefaultWidth), parameter.SessionDefaultWidth)
		h := getInt(reader, fmt.Sprintf("Height (default %v): ", parameter.SessionDefaultHeight), parameter.SessionDefaultHeight)
		seed := getInt(reader, fmt.Sprintf("Seed (default %d): ", parameter.SessionDefaultSeed), parameter.SessionDefaultSeed)
		portals := getInt(reader, fmt.Sprintf("Portals per layer (default %d): ", parameter.SessionDefaultPortalsPerLayer), parameter.SessionDefaultPortalsPerLayer)
		simSecs := getFloat(reader, "Simulate portal rotation for N seconds (default 0): ", 0)

		fmt.Println("\nGenerating...")
		startT := time.Now()
		state := maze.Create(float64(w), float64(h), int64(seed), portals)
		dur := time.Since(startT)

		fmt.Printf("Done in %v\n", dur)
		if err := maze.Validate(state); err != nil {
			fmt.Printf("Status: %v\n", err)
		}
		summarize(state)

		if simSecs > 0 {
			simulate(state, time.Duration(simSecs*float64(time.Second)))
		}

		draw(state)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func summarize(s maze.State) {
	edges := 0
	for _, l := range s.Layers {
		for _, n := range l.Nodes {
			edges += n.Connections.Size()
		}
		fmt.Printf("%-3s %2d nodes  rotation %-6v portals %v\n", l.ID, len(l.Nodes), l.PortalRotation, l.PortalIndices())
	}
	fmt.Printf("Edges: %d  Active portals: %d\n", edges/2, len(s.ActivePortals))
}

// simulate steps the portal timers at the session tick rate and reports every rotation
func simulate(s maze.State, span time.Duration) {
	var elapsed time.Duration
	for elapsed < span {
		next := maze.Step(s, parameter.SessionTickInterval, maze.StepOptions{})
		elapsed += parameter.SessionTickInterval
		for _, id := range maze.Reconfigured(s, next) {
			l, _ := next.Layer(id)
			fmt.Printf("  t=%-7v %s -> %v\n", elapsed, id, l.PortalIndices())
		}
		s = next
	}
}

func draw(s maze.State) {
	cols := int(math.Round(s.Width)) * 2
	rows := int(math.Round(s.Height))
	if cols <= 0 || rows <= 0 {
		return
	}

	grid := make([][]rune, rows+1)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cols+1))
	}
	plot := func(x, y float64, r rune) {
		cx := int(math.Round(x / s.Width * float64(cols)))
		cy := int(math.Round(y / s.Height * float64(rows)))
		if cy >= 0 && cy <= rows && cx >= 0 && cx <= cols {
			grid[cy][cx] = r
		}
	}

	c := s.Center()
	plot(c.X, c.Y, '+')
	for li, l := range s.Layers {
		for _, n := range l.Nodes {
			r := rune('0' + li%10)
			if n.IsPortal {
				r = 'P'
			}
			plot(n.Position.X, n.Position.Y, r)
		}
	}

	for _, row := range grid {
		fmt.Println(strings.TrimRight(string(row), " "))
	}
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}
