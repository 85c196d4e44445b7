package astro

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// DaylightWindow returns sunrise and sunset for the observer on the UTC
// calendar day containing t. ok is false during polar day or polar
// night, when the sun does not cross the horizon.
func DaylightWindow(obs Observer, t time.Time) (rise, set time.Time, ok bool) {
	y, m, d := t.UTC().Date()
	rise, set = sunrise.SunriseSunset(obs.LatDeg, obs.LonDeg, y, m, d)
	if rise.IsZero() || set.IsZero() {
		return rise, set, false
	}
	return rise, set, true
}

// IsDaylight reports whether the sun is up for the observer at t.
// Returns false when there is no horizon crossing that day.
func IsDaylight(obs Observer, t time.Time) bool {
	rise, set, ok := DaylightWindow(obs, t)
	if !ok {
		return false
	}
	return !t.Before(rise) && t.Before(set)
}
