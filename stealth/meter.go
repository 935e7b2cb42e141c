// Package stealth models how detectable the player is.
// Three decaying channels feed one detection probability shared by every pursuer.
package stealth

import (
	"time"

	"github.com/devlikebear/gamehub-sub000/parameter"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

// Meter holds the threat, visibility and heat channels, each in [0,1]
type Meter struct {
	Threat     float64 `yaml:"threat"`
	Visibility float64 `yaml:"visibility"`
	Heat       float64 `yaml:"heat"`
}

// Action is the noise and exposure one player action generates, each in [0,1]
type Action struct {
	Noise      float64
	Visibility float64
}

// DecayOptions controls a decay step
type DecayOptions struct {
	Cloaked bool
}

// New returns a meter at ambient risk
func New() Meter {
	return Meter{
		Threat:     parameter.StealthDefaultThreat,
		Visibility: parameter.StealthDefaultVisibility,
		Heat:       parameter.StealthDefaultHeat,
	}
}

// ApplyAction folds one action into the meter.
// Threat and heat accumulate; visibility is smoothed toward the new observation.
func (m Meter) ApplyAction(a Action) Meter {
	noise := vmath.Clamp01(a.Noise)
	vis := vmath.Clamp01(a.Visibility)
	m = m.Clamped()

	return Meter{
		Threat:     vmath.Clamp01(m.Threat + noise*parameter.StealthThreatNoiseWeight + vis*parameter.StealthThreatVisibilityWeight),
		Visibility: vmath.Clamp01(m.Visibility*parameter.StealthVisibilityRetain + vis*(1-parameter.StealthVisibilityRetain)),
		Heat:       vmath.Clamp01(m.Heat + noise*parameter.StealthHeatNoiseWeight + vis*parameter.StealthHeatVisibilityWeight),
	}
}

// Decay bleeds threat and heat linearly over dt, faster while cloaked.
// Visibility shrinks by a fixed factor per call regardless of dt.
func (m Meter) Decay(dt time.Duration, opts DecayOptions) Meter {
	if dt < 0 {
		dt = 0
	}
	ms := float64(dt) / float64(time.Millisecond)
	m = m.Clamped()

	threatRate, heatRate, visFactor := parameter.StealthThreatDecayOpen, parameter.StealthHeatDecayOpen, parameter.StealthVisibilityDecayOpen
	if opts.Cloaked {
		threatRate, heatRate, visFactor = parameter.StealthThreatDecayCloaked, parameter.StealthHeatDecayCloaked, parameter.StealthVisibilityDecayCloaked
	}

	return Meter{
		Threat:     vmath.Clamp01(m.Threat - threatRate*ms),
		Visibility: vmath.Clamp01(m.Visibility * visFactor),
		Heat:       vmath.Clamp01(m.Heat - heatRate*ms),
	}
}

// DetectionProbability is the weighted blend of the three channels, in [0,1]
func (m Meter) DetectionProbability() float64 {
	m = m.Clamped()
	return vmath.Clamp01(m.Threat*parameter.DetectionThreatWeight +
		m.Visibility*parameter.DetectionVisibilityWeight +
		m.Heat*parameter.DetectionHeatWeight)
}

// Clamped forces every channel into [0,1]
func (m Meter) Clamped() Meter {
	return Meter{
		Threat:     vmath.Clamp01(m.Threat),
		Visibility: vmath.Clamp01(m.Visibility),
		Heat:       vmath.Clamp01(m.Heat),
	}
}
