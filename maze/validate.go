package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// ErrInvariant marks a structural violation reported by Validate
var ErrInvariant = errors.New("maze invariant violated")

// Validate checks the structural invariants of a state:
// portal refs resolve to flagged nodes and cover all of them, connections reference
// existing ids symmetrically, every node keeps both ring neighbours, and every
// non-innermost node bridges inward.
func Validate(s State) error {
	ids := mapset.New[string]()
	for _, l := range s.Layers {
		for _, n := range l.Nodes {
			ids.Put(n.ID)
		}
	}

	flagged := 0
	for li, l := range s.Layers {
		if l.Elapsed < 0 {
			return fmt.Errorf("%w: layer %s has negative elapsed %v", ErrInvariant, l.ID, l.Elapsed)
		}
		for _, n := range l.Nodes {
			if n.IsPortal {
				flagged++
			}
			if n.Connections.Size() < 2 && len(l.Nodes) > 2 {
				return fmt.Errorf("%w: node %s has %d connections", ErrInvariant, n.ID, n.Connections.Size())
			}

			var bad string
			bridged := false
			n.Connections.Each(func(id string) {
				if bad != "" {
					return
				}
				other, ok := s.Node(id)
				if !ok || !ids.Has(id) {
					bad = fmt.Sprintf("node %s references missing %s", n.ID, id)
					return
				}
				if !other.Connections.Has(n.ID) {
					bad = fmt.Sprintf("edge %s-%s is not mutual", n.ID, id)
					return
				}
				if ol, _, _ := parseNodeID(id); ol == li-1 {
					bridged = true
				}
			})
			if bad != "" {
				return fmt.Errorf("%w: %s", ErrInvariant, bad)
			}
			if li > 0 && !bridged {
				return fmt.Errorf("%w: node %s has no bridge to %s", ErrInvariant, n.ID, s.Layers[li-1].ID)
			}
		}
	}

	if flagged != len(s.ActivePortals) {
		return fmt.Errorf("%w: %d flagged portals, %d active refs", ErrInvariant, flagged, len(s.ActivePortals))
	}
	for _, ref := range s.ActivePortals {
		n, ok := s.Node(ref.NodeID)
		if !ok || !n.IsPortal {
			return fmt.Errorf("%w: active portal %s/%s is not a flagged node", ErrInvariant, ref.LayerID, ref.NodeID)
		}
		if li, _, _ := parseNodeID(ref.NodeID); li >= len(s.Layers) || s.Layers[li].ID != ref.LayerID {
			return fmt.Errorf("%w: active portal %s filed under %s", ErrInvariant, ref.NodeID, ref.LayerID)
		}
	}
	return nil
}
