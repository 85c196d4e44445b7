package planet

import (
	"math"
	"time"
)

// Rad converts degrees to radians.
const Rad = math.Pi / 180

// j2000 is the Julian date of the reference epoch, 2000-01-01T12:00:00 UTC.
const j2000 = 2451545.0

// ToDays returns fractional days elapsed from the J2000.0 epoch to t.
// Negative for dates before the epoch. The conversion goes through the
// Julian-date formula rather than time.Sub, so dates outside the
// Duration range still produce finite results.
func ToDays(t time.Time) float64 {
	return julianDate(t) - j2000
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Treat January/February as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// round4 rounds to 4 decimal places, the precision of every quantity
// returned by this package.
func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}

// MeanAnomaly returns the planet's mean anomaly in degrees at t,
// reduced modulo 360 with truncated-remainder semantics: the result
// keeps the sign of M0 + M1*d and is NOT wrapped into [0,360).
// Downstream formulas depend on this convention; do not normalize here.
func (p Planet) MeanAnomaly(t time.Time) float64 {
	return round4(math.Mod(p.M0+p.M1*ToDays(t), 360))
}

// EquationOfCenter returns the equation of center in degrees at t: a
// six-term Fourier series in the mean anomaly. The series input is the
// rounded mean anomaly, not the raw value; the compounding is
// intentional and keeps outputs reproducible against reference data.
func (p Planet) EquationOfCenter(t time.Time) float64 {
	m := p.MeanAnomaly(t) * Rad
	eq := p.C1*math.Sin(m) +
		p.C2*math.Sin(2*m) +
		p.C3*math.Sin(3*m) +
		p.C4*math.Sin(4*m) +
		p.C5*math.Sin(5*m) +
		p.C6*math.Sin(6*m)
	return round4(eq)
}

// EclipticLongitude returns the planet's ecliptic longitude in degrees
// at t, modulo 360 with the same truncated-remainder convention as
// MeanAnomaly.
func (p Planet) EclipticLongitude(t time.Time) float64 {
	lng := p.MeanAnomaly(t) + p.P + 180 + p.EquationOfCenter(t)
	return round4(math.Mod(lng, 360))
}

// EquatorialCoordinates returns right ascension and declination in
// degrees at t. Right ascension lies in (-180,180], declination in
// [-90,90]; no additional wrapping is applied.
func (p Planet) EquatorialCoordinates(t time.Time) (ra, dec float64) {
	lng := p.EclipticLongitude(t) * Rad
	eps := p.Eps * Rad
	ra = round4(math.Atan2(math.Sin(lng)*math.Cos(eps), math.Cos(lng)) / Rad)
	dec = round4(math.Asin(math.Sin(lng)*math.Sin(eps)) / Rad)
	return ra, dec
}

// SiderealTime returns the local sidereal time in degrees at t for an
// observer at longitude lw (degrees, west positive). lw is passed
// through unvalidated; the result uses the truncated-remainder modulo.
func (p Planet) SiderealTime(t time.Time, lw float64) float64 {
	theta := p.Theta0 + p.Theta1*ToDays(t) - lw
	return round4(math.Mod(theta, 360))
}

// GetMeanAnomaly computes the mean anomaly for a planet by name.
func GetMeanAnomaly(name string, t time.Time) (float64, error) {
	p, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return p.MeanAnomaly(t), nil
}

// GetEquationOfCenter computes the equation of center for a planet by name.
func GetEquationOfCenter(name string, t time.Time) (float64, error) {
	p, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return p.EquationOfCenter(t), nil
}

// GetEclipticalCoordinates computes the ecliptic longitude for a planet
// by name.
func GetEclipticalCoordinates(name string, t time.Time) (float64, error) {
	p, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return p.EclipticLongitude(t), nil
}

// GetEquatorialCoordinates computes right ascension and declination for
// a planet by name.
func GetEquatorialCoordinates(name string, t time.Time) (ra, dec float64, err error) {
	p, err := Lookup(name)
	if err != nil {
		return 0, 0, err
	}
	ra, dec = p.EquatorialCoordinates(t)
	return ra, dec, nil
}

// GetSiderealTime computes the local sidereal time for a planet by name
// and an observer longitude lw (degrees, west positive).
func GetSiderealTime(name string, t time.Time, lw float64) (float64, error) {
	p, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return p.SiderealTime(t, lw), nil
}
