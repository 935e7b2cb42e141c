package session

import (
	"github.com/devlikebear/gamehub-sub000/maze"
	"github.com/devlikebear/gamehub-sub000/pursuer"
	"github.com/devlikebear/gamehub-sub000/stealth"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

// PursuerView is the read-only part of a pursuer a renderer needs
type PursuerView struct {
	ID        string            `yaml:"id"`
	Archetype pursuer.Archetype `yaml:"archetype"`
	Position  vmath.Vec2        `yaml:"position,flow"`
	Awareness float64           `yaml:"awareness"`
	Band      pursuer.Band      `yaml:"band"`
}

// Snapshot is a copy of the observable attempt state after a tick
type Snapshot struct {
	AttemptID string           `yaml:"attempt_id"`
	Seed      int64            `yaml:"seed"`
	Level     int              `yaml:"level"`
	Tick      int              `yaml:"tick"`
	ElapsedMs int64            `yaml:"elapsed_ms"`
	Outcome   Outcome          `yaml:"outcome"`
	Player    vmath.Vec2       `yaml:"player,flow"`
	Meter     stealth.Meter    `yaml:"meter,flow"`
	Detection float64          `yaml:"detection"`
	Pursuers  []PursuerView    `yaml:"pursuers"`
	Portals   []maze.PortalRef `yaml:"portals,flow"`
}

// Snapshot captures the current state
func (s *Session) Snapshot() Snapshot {
	views := make([]PursuerView, len(s.roster))
	for i, p := range s.roster {
		views[i] = PursuerView{
			ID:        p.ID,
			Archetype: p.Archetype,
			Position:  p.Position,
			Awareness: p.Awareness,
			Band:      p.Band(),
		}
	}

	return Snapshot{
		AttemptID: s.id.String(),
		Seed:      s.seed,
		Level:     s.opts.Level,
		Tick:      s.ticks,
		ElapsedMs: s.elapsed.Milliseconds(),
		Outcome:   s.outcome,
		Player:    s.player,
		Meter:     s.meter,
		Detection: s.meter.DetectionProbability(),
		Pursuers:  views,
		Portals:   append([]maze.PortalRef(nil), s.maze.ActivePortals...),
	}
}
