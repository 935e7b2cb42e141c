package parameter

// Pursuer Awareness
const (
	// PursuerHuntingAwareness is the awareness above which pursuit displacement kicks in
	PursuerHuntingAwareness = 0.6

	// PursuerUnawareEpsilon is the awareness below which a pursuer counts as unaware
	PursuerUnawareEpsilon = 0.001

	// CaptureAwareness is the terminal threshold checked by the orchestrator
	CaptureAwareness = 0.98

	// PursuerProximityFloor keeps edge-of-radius detection contributing
	PursuerProximityFloor = 0.2

	// PursuerProximityCeiling caps gain at point blank range
	PursuerProximityCeiling = 1.4
)

// Pursuer Movement
const (
	// PursuerTimeScaleMin and PursuerTimeScaleMax bound the caller time scale
	PursuerTimeScaleMin = 0.1
	PursuerTimeScaleMax = 1.5

	// PursuerPursuitShare caps pursuit displacement as a fraction of the patrol step
	PursuerPursuitShare = 0.35
)

// Stalker: slow, long patrol loop, strong awareness growth
const (
	StalkerSpeed           = 1.6
	StalkerDetectionRadius = 4.4
	StalkerPatrolRadius    = 7.0
	StalkerAwarenessGain   = 0.55
	StalkerAwarenessDecay  = 0.12
)

// Seeker: fastest, widest detection, fastest awareness growth
const (
	SeekerSpeed           = 2.4
	SeekerDetectionRadius = 5.2
	SeekerPatrolRadius    = 4.5
	SeekerAwarenessGain   = 0.75
	SeekerAwarenessDecay  = 0.16
)

// Warden: slowest, moderate detection, holds awareness longest
const (
	WardenSpeed           = 1.1
	WardenDetectionRadius = 4.6
	WardenPatrolRadius    = 3.5
	WardenAwarenessGain   = 0.40
	WardenAwarenessDecay  = 0.05
)
