package pursuer

import "github.com/devlikebear/gamehub-sub000/parameter"

// Band is the awareness state a pursuer is in, derived from awareness on read
type Band uint8

const (
	// Unaware pursuers patrol with awareness at rest
	Unaware Band = iota
	// Suspicious pursuers patrol while awareness rises or falls
	Suspicious
	// Hunting pursuers blend pursuit toward the target into patrol movement
	Hunting
)

// BandOf classifies an awareness value
func BandOf(awareness float64) Band {
	switch {
	case awareness > parameter.PursuerHuntingAwareness:
		return Hunting
	case awareness < parameter.PursuerUnawareEpsilon:
		return Unaware
	default:
		return Suspicious
	}
}

func (b Band) String() string {
	switch b {
	case Unaware:
		return "unaware"
	case Suspicious:
		return "suspicious"
	case Hunting:
		return "hunting"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the band by name
func (b Band) MarshalYAML() (any, error) {
	return b.String(), nil
}
