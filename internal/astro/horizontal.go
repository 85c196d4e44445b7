// Package astro builds observer-relative sky math on top of the planet
// formula chain: horizontal coordinates, angular separation, the orrery
// projection, and the observer's daylight window.
package astro

import (
	"math"
	"time"

	"github.com/litescript/ls-planets/planet"
)

// SkyCoord represents celestial coordinates with both equatorial (RA/Dec)
// and horizontal (Az/El) components.
type SkyCoord struct {
	RAdeg  float64 // Right Ascension in degrees
	DecDeg float64 // Declination in degrees

	AzDeg float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	ElDeg float64 // Elevation in degrees (0=horizon, 90=zenith)
}

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// earth is resolved once at init; the table always contains it.
var earth = mustLookup("Earth")

func mustLookup(name string) planet.Planet {
	p, err := planet.Lookup(name)
	if err != nil {
		panic(err)
	}
	return p
}

// LocalSiderealTime returns the observer's local sidereal time in
// degrees, normalized to [0,360). The core sidereal-time formula takes
// west-positive longitude, so the observer's east-positive longitude is
// negated on the way in.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalize360(earth.SiderealTime(t, -lonDeg))
}

// EquatorialToHorizontal converts equatorial coordinates (RA/Dec) to
// horizontal coordinates (Az/El) for a given observer and time. The
// input RA/Dec values are preserved and Az/El populated.
func EquatorialToHorizontal(eq SkyCoord, obs Observer, t time.Time) SkyCoord {
	lat := eq2rad(obs.LatDeg)
	ra := eq2rad(eq.RAdeg)
	dec := eq2rad(eq.DecDeg)

	lst := LocalSiderealTime(t, obs.LonDeg)
	ha := eq2rad(lst) - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	// Clamp to handle floating point errors at the poles
	if cosAz > 1 {
		cosAz = 1
	} else if cosAz < -1 {
		cosAz = -1
	}

	az := math.Acos(cosAz)
	// Positive hour angle puts the object west of south
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return SkyCoord{
		RAdeg:  eq.RAdeg,
		DecDeg: eq.DecDeg,
		AzDeg:  az / planet.Rad,
		ElDeg:  alt / planet.Rad,
	}
}

// AngularSeparation calculates the angular separation between two points
// on the celestial sphere. All coordinates in degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	dRA := eq2rad(ra2 - ra1)
	dDec := eq2rad(dec2 - dec1)

	a := math.Sin(dDec/2)*math.Sin(dDec/2) +
		math.Cos(eq2rad(dec1))*math.Cos(eq2rad(dec2))*math.Sin(dRA/2)*math.Sin(dRA/2)
	if a > 1 {
		a = 1
	}

	return 2 * math.Asin(math.Sqrt(a)) / planet.Rad
}

func eq2rad(deg float64) float64 {
	return deg * planet.Rad
}

// normalize360 wraps an angle into [0,360) for display purposes. The
// core planet package deliberately does not wrap; callers that need
// display angles do it here.
func normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
