package maze

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/devlikebear/gamehub-sub000/invariant"
	"github.com/devlikebear/gamehub-sub000/parameter"
	"github.com/devlikebear/gamehub-sub000/vmath"
)

// Create builds a layered ring maze from seed.
// Identical arguments always produce identical states.
func Create(width, height float64, seed int64, portalCountPerLayer int) State {
	// 1. RNG Setup (non-positive seeds normalize to 1)
	rng := vmath.NewRand(seed)

	if portalCountPerLayer < 1 {
		portalCountPerLayer = 1
	}

	s := State{
		Width:  width,
		Height: height,
		Layers: make([]Layer, parameter.MazeLayerCount),
	}

	// 2. Place nodes ring by ring, innermost first so jitter draws stay in a fixed order
	center := s.Center()
	for i := range s.Layers {
		s.Layers[i] = placeLayer(i, center, width/2, height/2, &rng)
	}

	// 3. Topology: ring neighbours, then bridges to the next-inner ring
	for i := range s.Layers {
		linkRing(s.Layers[i].Nodes)
		if i > 0 {
			linkBridges(s.Layers[i].Nodes, s.Layers[i-1].Nodes)
		}
	}

	// 4. Initial portals, one independent draw per ring
	for i := range s.Layers {
		drawPortals(s.Layers[i].Nodes, portalCountPerLayer, &rng)
	}

	s.Rand = rng
	s.ActivePortals = collectPortals(s.Layers)

	if invariant.Enabled {
		invariant.CheckErr(Validate(s))
	}
	return s
}

// --- Core Algorithms ---

func placeLayer(index int, center vmath.Vec2, halfW, halfH float64, rng *vmath.Rand) Layer {
	n := LayerNodeCount(index)
	scale := parameter.MazeLayerRadiusBase + float64(index)*parameter.MazeLayerRadiusStep
	rx, ry := halfW*scale, halfH*scale
	slot := vmath.RingAngle(1, n)

	nodes := make([]Node, n)
	for k := 0; k < n; k++ {
		jitter := (rng.Next() - 0.5) * slot * parameter.MazeAngularJitter
		nodes[k] = Node{
			ID:          nodeID(index, k),
			Position:    vmath.EllipsePoint(center, rx, ry, vmath.RingAngle(k, n)+jitter),
			Connections: mapset.New[string](),
		}
	}

	return Layer{
		ID:             layerID(index),
		Nodes:          nodes,
		PortalRotation: parameter.MazePortalRotationBase + time.Duration(index)*parameter.MazePortalRotationStep,
	}
}

// linkRing connects every node to both angular neighbours
func linkRing(nodes []Node) {
	n := len(nodes)
	if n < 2 {
		return
	}
	for k := range nodes {
		next := (k + 1) % n
		connect(&nodes[k], &nodes[next])
	}
}

// linkBridges maps each outer ring index proportionally onto the inner ring
func linkBridges(outer, inner []Node) {
	if len(inner) == 0 {
		return
	}
	for k := range outer {
		j := k * len(inner) / len(outer)
		connect(&outer[k], &inner[j])
	}
}

func connect(a, b *Node) {
	if a.ID == b.ID {
		return
	}
	a.Connections.Put(b.ID)
	b.Connections.Put(a.ID)
}

// --- Helpers ---

// LayerNodeCount is the ring size of layer i
func LayerNodeCount(i int) int {
	return parameter.MazeBaseNodeCount + i*parameter.MazeNodesPerLayer
}
