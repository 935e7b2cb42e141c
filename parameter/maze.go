package parameter

import (
	"time"
)

// Maze Topology
const (
	// MazeLayerCount is the number of concentric rings, index 0 innermost
	MazeLayerCount = 3

	// MazeBaseNodeCount is the node count of the innermost ring
	MazeBaseNodeCount = 6

	// MazeNodesPerLayer is added to the node count for every ring outward
	MazeNodesPerLayer = 3

	// MazeLayerRadiusBase is the innermost ring radius as a fraction of the half extents
	MazeLayerRadiusBase = 0.3

	// MazeLayerRadiusStep is the radius fraction added per ring outward
	MazeLayerRadiusStep = 0.3

	// MazeAngularJitter is the jitter half-range as a fraction of one angular slot
	// 0.35 keeps neighbours from crossing while still breaking the symmetry
	MazeAngularJitter = 0.35
)

// Maze Portals
const (
	// MazePortalRotationBase is the rotation period of the innermost ring
	MazePortalRotationBase = 4500 * time.Millisecond

	// MazePortalRotationStep is added to the period per ring outward
	MazePortalRotationStep = 1500 * time.Millisecond

	// MazePortalReconfigureRatio sizes a rotated portal set relative to the ring
	MazePortalReconfigureRatio = 0.2

	// MazePortalDrawAttemptsPerNode bounds seeded draws: attempts = factor * nodeCount
	MazePortalDrawAttemptsPerNode = 4
)
