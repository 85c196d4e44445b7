package state

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/litescript/ls-planets/planet"
)

// SnapshotExport is the JSON-serializable representation of a snapshot.
type SnapshotExport struct {
	At       time.Time      `json:"at"`
	Observer ObserverExport `json:"observer"`
	Planets  []PlanetExport `json:"planets"`
	Sunrise  *time.Time     `json:"sunrise,omitempty"`
	Sunset   *time.Time     `json:"sunset,omitempty"`
}

// ObserverExport is a JSON-friendly observer representation.
type ObserverExport struct {
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// PlanetExport is a JSON-friendly planet row. All angles in degrees.
type PlanetExport struct {
	Name              string  `json:"name"`
	MeanAnomaly       float64 `json:"mean_anomaly"`
	EquationOfCenter  float64 `json:"equation_of_center"`
	EclipticLongitude float64 `json:"ecliptic_longitude"`
	RightAscension    float64 `json:"right_ascension"`
	Declination       float64 `json:"declination"`
	SiderealTime      float64 `json:"sidereal_time"`
	Azimuth           float64 `json:"azimuth"`
	Elevation         float64 `json:"elevation"`
}

// ExportSnapshot converts a snapshot to its exportable form.
func ExportSnapshot(snap Snapshot) *SnapshotExport {
	export := &SnapshotExport{
		At: snap.At,
		Observer: ObserverExport{
			Name: snap.Observer.Name,
			Lat:  snap.Observer.LatDeg,
			Lon:  snap.Observer.LonDeg,
		},
	}
	if snap.DaylightOK {
		rise, set := snap.SunriseAt, snap.SunsetAt
		export.Sunrise = &rise
		export.Sunset = &set
	}

	for _, row := range snap.Rows {
		export.Planets = append(export.Planets, PlanetExport{
			Name:              row.Name,
			MeanAnomaly:       row.MeanAnomaly,
			EquationOfCenter:  row.EquationOfCenter,
			EclipticLongitude: row.EclipticLongitude,
			RightAscension:    row.RightAscension,
			Declination:       row.Declination,
			SiderealTime:      row.SiderealTime,
			Azimuth:           row.Sky.AzDeg,
			Elevation:         row.Sky.ElDeg,
		})
	}
	return export
}

// WriteJSON writes the export as indented JSON.
func (e *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummaryTable writes a plain-text table of all planet rows.
func WriteSummaryTable(w io.Writer, snap Snapshot) {
	fmt.Fprintf(w, "Planet positions at %s (%s %.4f, %.4f)\n\n",
		snap.At.UTC().Format(time.RFC3339),
		snap.Observer.Name, snap.Observer.LatDeg, snap.Observer.LonDeg)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLANET\tMEAN ANOM\tEQ CENTER\tECL LNG\tRA\tDEC\tSIDEREAL")
	for _, row := range snap.Rows {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			row.Name, row.MeanAnomaly, row.EquationOfCenter,
			row.EclipticLongitude, row.RightAscension, row.Declination,
			row.SiderealTime)
	}
	tw.Flush()
}

// WritePlanetCard writes a single planet's derived quantities. Returns
// the lookup error for names outside the table.
func WritePlanetCard(w io.Writer, snap Snapshot, name string) error {
	if _, err := planet.Lookup(name); err != nil {
		return err
	}
	row := snap.Row(name)
	if row == nil {
		return fmt.Errorf("%w: %q", planet.ErrUnknownPlanet, name)
	}

	fmt.Fprintf(w, "%s at %s\n", row.Name, snap.At.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "  mean anomaly        %10.4f deg\n", row.MeanAnomaly)
	fmt.Fprintf(w, "  equation of center  %10.4f deg\n", row.EquationOfCenter)
	fmt.Fprintf(w, "  ecliptic longitude  %10.4f deg\n", row.EclipticLongitude)
	fmt.Fprintf(w, "  right ascension     %10.4f deg\n", row.RightAscension)
	fmt.Fprintf(w, "  declination         %10.4f deg\n", row.Declination)
	fmt.Fprintf(w, "  sidereal time       %10.4f deg\n", row.SiderealTime)
	fmt.Fprintf(w, "  azimuth/elevation   %10.4f / %.4f deg\n", row.Sky.AzDeg, row.Sky.ElDeg)
	return nil
}
