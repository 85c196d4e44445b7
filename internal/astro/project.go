package astro

import (
	"math"

	"github.com/litescript/ls-planets/planet"
)

// ProjectedPoint is a 2D top-down ecliptic position in normalized
// screen space, with the original orbit radius kept for labeling.
type ProjectedPoint struct {
	X float64 // Screen X (normalized, -1 to 1), toward vernal equinox
	Y float64 // Screen Y (normalized, -1 to 1)
	R float64 // Display orbit radius in AU
}

// ScaleMode defines how orbit radii are mapped to screen space.
type ScaleMode int

const (
	// ScaleLogR uses logarithmic scaling: r_display = log10(r_AU + 1)
	ScaleLogR ScaleMode = iota

	// ScaleInner uses linear scaling optimized for 0-5 AU
	ScaleInner
)

// String returns the scale mode name.
func (m ScaleMode) String() string {
	switch m {
	case ScaleLogR:
		return "log"
	case ScaleInner:
		return "inner"
	default:
		return "unknown"
	}
}

// ProjectLongitude maps an ecliptic longitude (degrees) and a display
// orbit radius (AU) to top-down screen coordinates. X points right
// (toward the vernal equinox), Y points up. The longitude may carry the
// core package's negative-remainder convention; trig absorbs it.
func ProjectLongitude(lonDeg, orbitAU float64, mode ScaleMode) ProjectedPoint {
	r := scaleRadius(orbitAU, mode)
	lon := lonDeg * planet.Rad

	return ProjectedPoint{
		X: r * math.Cos(lon),
		Y: r * math.Sin(lon),
		R: orbitAU,
	}
}

// scaleRadius applies the configured scaling mode to an orbit radius.
func scaleRadius(rAU float64, mode ScaleMode) float64 {
	switch mode {
	case ScaleInner:
		// Linear for the inner system, outer planets clamp to the edge
		if rAU > 5 {
			return 5
		}
		return rAU
	default:
		// log10(r + 1): 0 at origin, ~0.78 at 5 AU, ~1.49 at 30 AU
		return math.Log10(rAU + 1)
	}
}
