package pursuer

import (
	"fmt"
	"strings"

	"github.com/devlikebear/gamehub-sub000/parameter"
)

// Archetype selects a fixed pursuer configuration preset
type Archetype uint8

const (
	Stalker Archetype = iota
	Seeker
	Warden
)

// Archetypes lists every preset in declaration order
var Archetypes = []Archetype{Stalker, Seeker, Warden}

// Config holds the movement and perception tuning of one pursuer.
// Awareness rates are per second, speed in grid units per second.
type Config struct {
	Speed              float64 `yaml:"speed"`
	DetectionRadius    float64 `yaml:"detection_radius"`
	PatrolRadius       float64 `yaml:"patrol_radius"`
	AwarenessGainRate  float64 `yaml:"awareness_gain_rate"`
	AwarenessDecayRate float64 `yaml:"awareness_decay_rate"`
}

var archetypeConfigs = [...]Config{
	Stalker: {
		Speed:              parameter.StalkerSpeed,
		DetectionRadius:    parameter.StalkerDetectionRadius,
		PatrolRadius:       parameter.StalkerPatrolRadius,
		AwarenessGainRate:  parameter.StalkerAwarenessGain,
		AwarenessDecayRate: parameter.StalkerAwarenessDecay,
	},
	Seeker: {
		Speed:              parameter.SeekerSpeed,
		DetectionRadius:    parameter.SeekerDetectionRadius,
		PatrolRadius:       parameter.SeekerPatrolRadius,
		AwarenessGainRate:  parameter.SeekerAwarenessGain,
		AwarenessDecayRate: parameter.SeekerAwarenessDecay,
	},
	Warden: {
		Speed:              parameter.WardenSpeed,
		DetectionRadius:    parameter.WardenDetectionRadius,
		PatrolRadius:       parameter.WardenPatrolRadius,
		AwarenessGainRate:  parameter.WardenAwarenessGain,
		AwarenessDecayRate: parameter.WardenAwarenessDecay,
	},
}

// ConfigFor returns the preset for a; unknown values fall back to Stalker
func ConfigFor(a Archetype) Config {
	if int(a) >= len(archetypeConfigs) {
		return archetypeConfigs[Stalker]
	}
	return archetypeConfigs[a]
}

func (a Archetype) String() string {
	switch a {
	case Stalker:
		return "stalker"
	case Seeker:
		return "seeker"
	case Warden:
		return "warden"
	default:
		return fmt.Sprintf("archetype(%d)", a)
	}
}

// ParseArchetype maps a case-insensitive name to its archetype
func ParseArchetype(name string) (Archetype, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stalker":
		return Stalker, nil
	case "seeker":
		return Seeker, nil
	case "warden":
		return Warden, nil
	}
	return 0, fmt.Errorf("unknown archetype %q", name)
}

// MarshalYAML encodes the archetype by name
func (a Archetype) MarshalYAML() (any, error) {
	return a.String(), nil
}
