package parameter

import (
	"time"
)

// Session Defaults
const (
	SessionDefaultWidth           = 28.0
	SessionDefaultHeight          = 18.0
	SessionDefaultPortalsPerLayer = 3
	SessionDefaultSeed            = 42

	// SessionTickInterval is the fixed simulation step used by the sandboxes
	SessionTickInterval = 50 * time.Millisecond
)

// Player Movement, grid units per second
const (
	PlayerWalkSpeed   = 2.2
	PlayerSprintSpeed = 3.6

	// PlayerCloakSpeedFactor slows movement while cloaked
	PlayerCloakSpeedFactor = 0.75

	// PortalReachRadius is how close the player must get to an exit portal
	PortalReachRadius = 0.6
)

// Stealth Actions
const (
	// StealthActionInterval is the cadence of noise/visibility reports while moving
	StealthActionInterval = 250 * time.Millisecond
)

// Stealth action tables: noise and visibility per movement gait
const (
	NoiseWalkCloaked      = 0.04
	VisibilityWalkCloaked = 0.05
	NoiseWalkOpen         = 0.12
	VisibilityWalkOpen    = 0.35

	NoiseSprintCloaked      = 0.25
	VisibilitySprintCloaked = 0.2
	NoiseSprintOpen         = 0.55
	VisibilitySprintOpen    = 0.8
)

// Autopilot
const (
	// AutopilotCloakRadiusFactor cloaks when a pursuer is within factor * detection radius
	AutopilotCloakRadiusFactor = 1.5
)

// Retry seeding
const (
	// SeedLevelStride separates seeds of consecutive levels
	SeedLevelStride = 7919
)
