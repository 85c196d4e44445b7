// Package planet computes low-precision positions for the eight major
// planets: mean anomaly, equation of center, ecliptic longitude,
// equatorial coordinates, and local sidereal time. All quantities are
// degrees, rounded to 4 decimal places, derived from a compiled-in
// constant table and a days-since-J2000 time base.
package planet

import (
	"errors"
	"fmt"
)

// ErrUnknownPlanet is returned when a name does not match any of the
// eight defined planets.
var ErrUnknownPlanet = errors.New("unknown planet")

// Planet holds the orbital constants for one planet. All angular fields
// are plain degrees (not pre-wrapped); rates are degrees per day.
type Planet struct {
	Name string

	// Mean anomaly: M = M0 + M1*d
	M0 float64
	M1 float64

	// Sidereal time: theta = Theta0 + Theta1*d - lw
	Theta0 float64
	Theta1 float64

	// Obliquity of the planet's equator to its orbital plane.
	Eps float64

	// Equation-of-center coefficients, harmonics 1-6 of the mean anomaly.
	C1, C2, C3, C4, C5, C6 float64

	// Ecliptic longitude of perihelion.
	P float64
}

// Planets is the canonical constant table, in order of distance from
// the Sun. Values follow the low-precision planet-position tables
// published by Astronomy Answers (aa.quae.nl), referred to J2000.0.
var Planets = []Planet{
	{
		Name: "Mercury",
		M0:   174.7948, M1: 4.09233445,
		Theta0: 132.3282, Theta1: 6.1385025,
		Eps: 0.0351,
		C1:  23.4400, C2: 2.9818, C3: 0.5255, C4: 0.1058, C5: 0.0241, C6: 0.0055,
		P: 230.3265,
	},
	{
		Name: "Venus",
		M0:   50.4161, M1: 1.60213034,
		Theta0: 104.9067, Theta1: -1.4813688,
		Eps: 2.6376,
		C1:  0.7758, C2: 0.0033,
		P: 73.7576,
	},
	{
		Name: "Earth",
		M0:   357.5291, M1: 0.98560028,
		Theta0: 280.1470, Theta1: 360.9856235,
		Eps: 23.4393,
		C1:  1.9148, C2: 0.0200, C3: 0.0003,
		P: 102.9373,
	},
	{
		Name: "Mars",
		M0:   19.3730, M1: 0.52402068,
		Theta0: 313.3827, Theta1: 350.89198226,
		Eps: 25.1918,
		C1:  10.6912, C2: 0.6228, C3: 0.0503, C4: 0.0046, C5: 0.0005,
		P: 71.0041,
	},
	{
		Name: "Jupiter",
		M0:   20.0202, M1: 0.08308529,
		Theta0: 145.9722, Theta1: 870.5360000,
		Eps: 3.1189,
		C1:  5.5549, C2: 0.1683, C3: 0.0071, C4: 0.0003,
		P: 237.1015,
	},
	{
		Name: "Saturn",
		M0:   317.0207, M1: 0.03344414,
		Theta0: 174.3508, Theta1: 810.7939024,
		Eps: 26.7285,
		C1:  6.3585, C2: 0.2204, C3: 0.0106, C4: 0.0006,
		P: 99.4587,
	},
	{
		Name: "Uranus",
		M0:   141.0498, M1: 0.01172834,
		Theta0: 29.8036, Theta1: -501.1600928,
		Eps: 82.2298,
		C1:  5.3042, C2: 0.1534, C3: 0.0062, C4: 0.0003,
		P: 5.4634,
	},
	{
		Name: "Neptune",
		M0:   256.2250, M1: 0.00598103,
		Theta0: 205.5709, Theta1: 536.3128492,
		Eps: 27.8477,
		C1:  1.0302, C2: 0.0058,
		P: 182.2100,
	},
}

// planetsByName maps names to table entries for O(1) lookup.
var planetsByName = func() map[string]Planet {
	m := make(map[string]Planet, len(Planets))
	for _, p := range Planets {
		m[p.Name] = p
	}
	return m
}()

// Lookup returns the Planet record for name. The only failure mode is
// ErrUnknownPlanet for names outside the eight defined entries.
func Lookup(name string) (Planet, error) {
	p, ok := planetsByName[name]
	if !ok {
		return Planet{}, fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
	}
	return p, nil
}

// Names returns the planet names in table order.
func Names() []string {
	names := make([]string, len(Planets))
	for i, p := range Planets {
		names[i] = p.Name
	}
	return names
}
