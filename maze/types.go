package maze

import (
	"fmt"
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/devlikebear/gamehub-sub000/vmath"
)

// Node is one navigable point of a ring.
// Connections are fixed at creation and shared between successive states.
type Node struct {
	ID          string
	Position    vmath.Vec2
	Connections mapset.Set[string]
	IsPortal    bool
}

// Neighbors returns the connected node ids in sorted order
func (n Node) Neighbors() []string {
	out := make([]string, 0, n.Connections.Size())
	n.Connections.Each(func(id string) {
		out = append(out, id)
	})
	sort.Strings(out)
	return out
}

// Layer is one concentric ring with its own portal rotation timer
type Layer struct {
	ID             string
	Nodes          []Node
	PortalRotation time.Duration
	Elapsed        time.Duration
}

// PortalIndices returns the ring indices currently flagged as portals
func (l Layer) PortalIndices() []int {
	var out []int
	for i, n := range l.Nodes {
		if n.IsPortal {
			out = append(out, i)
		}
	}
	return out
}

// PortalRef addresses an active portal
type PortalRef struct {
	LayerID string `yaml:"layer"`
	NodeID  string `yaml:"node"`
}

// State is the complete maze at one tick. Layers[0] is the innermost ring.
type State struct {
	Width, Height float64
	Layers        []Layer
	ActivePortals []PortalRef
	Rand          vmath.Rand
}

// StepOptions controls a single Step
type StepOptions struct {
	// ForceReconfigure redraws every layer's portals regardless of timers
	ForceReconfigure bool
}

// Center is the shared centre of all rings
func (s State) Center() vmath.Vec2 {
	return vmath.V(s.Width/2, s.Height/2)
}

// Layer returns the layer with the given id
func (s State) Layer(id string) (Layer, bool) {
	for _, l := range s.Layers {
		if l.ID == id {
			return l, true
		}
	}
	return Layer{}, false
}

// Node looks a node up by id across all layers
func (s State) Node(id string) (Node, bool) {
	li, ni, ok := parseNodeID(id)
	if !ok || li >= len(s.Layers) || ni >= len(s.Layers[li].Nodes) {
		return Node{}, false
	}
	n := s.Layers[li].Nodes[ni]
	if n.ID != id {
		return Node{}, false
	}
	return n, true
}

// PortalNodes resolves ActivePortals into nodes, in ActivePortals order
func (s State) PortalNodes() []Node {
	out := make([]Node, 0, len(s.ActivePortals))
	for _, ref := range s.ActivePortals {
		if n, ok := s.Node(ref.NodeID); ok {
			out = append(out, n)
		}
	}
	return out
}

// Outermost returns the outermost ring
func (s State) Outermost() Layer {
	if len(s.Layers) == 0 {
		return Layer{}
	}
	return s.Layers[len(s.Layers)-1]
}

// Clone copies the mutable parts of the state. Connection sets stay shared.
func (s State) Clone() State {
	out := s
	out.Layers = make([]Layer, len(s.Layers))
	for i, l := range s.Layers {
		out.Layers[i] = l
		out.Layers[i].Nodes = append([]Node(nil), l.Nodes...)
	}
	out.ActivePortals = append([]PortalRef(nil), s.ActivePortals...)
	return out
}

func layerID(i int) string {
	return fmt.Sprintf("L%d", i)
}

func nodeID(layer, index int) string {
	return fmt.Sprintf("L%d:N%d", layer, index)
}

func parseNodeID(id string) (layer, index int, ok bool) {
	if _, err := fmt.Sscanf(id, "L%d:N%d", &layer, &index); err != nil {
		return 0, 0, false
	}
	if layer < 0 || index < 0 {
		return 0, 0, false
	}
	return layer, index, true
}
