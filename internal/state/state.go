// Package state provides thread-safe state management for the application:
// the simulated observation clock, the observer site, and snapshot
// production over the planet formula chain.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-planets/internal/astro"
	"github.com/litescript/ls-planets/planet"
)

// PlanetRow holds one planet's derived quantities at a snapshot instant.
// Angular values carry the core package's conventions: 4 decimal places,
// truncated-remainder modulo (mean anomaly, ecliptic longitude and
// sidereal time may be negative).
type PlanetRow struct {
	Name    string
	OrbitAU float64 // display orbit radius, not used in any formula

	MeanAnomaly       float64
	EquationOfCenter  float64
	EclipticLongitude float64
	RightAscension    float64
	Declination       float64
	SiderealTime      float64 // local to the observer

	Sky astro.SkyCoord // horizontal coordinates for the observer
}

// orbitAU holds approximate semi-major axes for the orrery view.
var orbitAU = map[string]float64{
	"Mercury": 0.387,
	"Venus":   0.723,
	"Earth":   1.000,
	"Mars":    1.524,
	"Jupiter": 5.203,
	"Saturn":  9.537,
	"Uranus":  19.19,
	"Neptune": 30.07,
}

// Snapshot is an immutable view of the application state. Rows are
// recomputed fresh from the constant table on every call; nothing
// astronomical is cached between snapshots.
type Snapshot struct {
	At       time.Time
	Observer astro.Observer
	Rows     []PlanetRow

	// Observer daylight window for the snapshot's UTC day.
	SunriseAt  time.Time
	SunsetAt   time.Time
	DaylightOK bool
}

// Row returns the row for a planet name, or nil if absent.
func (s Snapshot) Row(name string) *PlanetRow {
	for i := range s.Rows {
		if s.Rows[i].Name == name {
			return &s.Rows[i]
		}
	}
	return nil
}

// Config holds configuration for the state manager.
type Config struct {
	Observer        astro.Observer
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Observer:        astro.Observer{LatDeg: 51.4769, LonDeg: 0, Name: "Greenwich"},
		RefreshInterval: 1 * time.Second,
	}
}

// Manager handles all shared application state with thread-safe access.
// The observation clock either follows the wall clock with an adjustable
// offset, or is pinned to a fixed instant.
type Manager struct {
	mu sync.RWMutex

	observer astro.Observer

	pinned   bool
	pinnedAt time.Time
	offset   time.Duration

	refreshInterval time.Duration
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	interval := cfg.RefreshInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Manager{
		observer:        cfg.Observer,
		refreshInterval: interval,
	}
}

// At returns the current simulated observation time.
func (m *Manager) At() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.at()
}

func (m *Manager) at() time.Time {
	if m.pinned {
		return m.pinnedAt
	}
	return time.Now().UTC().Add(m.offset)
}

// Step advances (or rewinds, for negative d) the observation clock.
func (m *Manager) Step(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pinned {
		m.pinnedAt = m.pinnedAt.Add(d)
		return
	}
	m.offset += d
}

// SetTime pins the observation clock to a fixed instant.
func (m *Manager) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pinned = true
	m.pinnedAt = t.UTC()
}

// ResetTime unpins the clock and clears any accumulated offset.
func (m *Manager) ResetTime() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pinned = false
	m.offset = 0
}

// Pinned reports whether the clock is pinned to a fixed instant.
func (m *Manager) Pinned() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pinned
}

// SetObserver updates the observer site.
func (m *Manager) SetObserver(obs astro.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observer = obs
}

// Observer returns the current observer site.
func (m *Manager) Observer() astro.Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.observer
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// Snapshot computes a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	at := m.at()
	obs := m.observer
	m.mu.RUnlock()

	return Compute(at, obs)
}

// Compute builds a snapshot for an arbitrary instant and observer.
func Compute(at time.Time, obs astro.Observer) Snapshot {
	snap := Snapshot{
		At:       at,
		Observer: obs,
		Rows:     make([]PlanetRow, 0, len(planet.Planets)),
	}

	// Sidereal time takes west-positive longitude.
	lw := -obs.LonDeg

	for _, p := range planet.Planets {
		ra, dec := p.EquatorialCoordinates(at)
		row := PlanetRow{
			Name:              p.Name,
			OrbitAU:           orbitAU[p.Name],
			MeanAnomaly:       p.MeanAnomaly(at),
			EquationOfCenter:  p.EquationOfCenter(at),
			EclipticLongitude: p.EclipticLongitude(at),
			RightAscension:    ra,
			Declination:       dec,
			SiderealTime:      p.SiderealTime(at, lw),
			Sky: astro.EquatorialToHorizontal(
				astro.SkyCoord{RAdeg: ra, DecDeg: dec}, obs, at),
		}
		snap.Rows = append(snap.Rows, row)
	}

	snap.SunriseAt, snap.SunsetAt, snap.DaylightOK = astro.DaylightWindow(obs, at)
	return snap
}
