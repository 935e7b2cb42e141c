package parameter

// Stealth Meter Defaults
// Ambient risk: the player is never fully silent or invisible
const (
	StealthDefaultThreat     = 0.12
	StealthDefaultVisibility = 0.25
	StealthDefaultHeat       = 0.0
)

// Stealth Action Weights
const (
	// StealthThreatNoiseWeight is threat added per unit of noise
	StealthThreatNoiseWeight = 0.65

	// StealthThreatVisibilityWeight is threat added per unit of visibility (0.45 * 0.6)
	StealthThreatVisibilityWeight = 0.45 * 0.6

	// StealthVisibilityRetain is the smoothing weight kept from the previous visibility
	StealthVisibilityRetain = 0.7

	// StealthHeatNoiseWeight and StealthHeatVisibilityWeight feed the heat channel
	StealthHeatNoiseWeight      = 0.5
	StealthHeatVisibilityWeight = 0.15
)

// Stealth Decay, per millisecond unless noted
const (
	StealthThreatDecayCloaked = 0.00145
	StealthHeatDecayCloaked   = 0.001
	StealthThreatDecayOpen    = 0.0006
	StealthHeatDecayOpen      = 0.0004

	// Visibility decays per call, not per millisecond
	StealthVisibilityDecayCloaked = 0.92
	StealthVisibilityDecayOpen    = 0.98
)

// Detection Probability Weights
const (
	DetectionThreatWeight     = 0.5
	DetectionVisibilityWeight = 0.35
	DetectionHeatWeight       = 0.25
)
