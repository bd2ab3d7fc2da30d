package landtrendr

import "time"

// Disturbances derives the ordered list of Disturbance events from a
// Trendline's vertices: one Disturbance per pair of adjacent vertices. It
// is a free function rather than a Trendline method so that Trendline
// itself stays a pure value with no dependency on disturbance-derivation
// logic.
func Disturbances(tl Trendline) []Disturbance {
	vertices := tl.Vertices()
	if len(vertices) < 2 {
		return nil
	}

	out := make([]Disturbance, 0, len(vertices)-1)
	left := vertices[0]
	for _, right := range vertices[1:] {
		startYear := yearOf(left.IndexDate)
		endYear := yearOf(right.IndexDate)
		out = append(out, Disturbance{
			OnsetYear:  startYear,
			InitialVal: left.ValFit,
			Magnitude:  left.ValFit - right.ValFit,
			Duration:   endYear - startYear,
		})
		left = right
	}
	return out
}

// yearOf extracts the calendar year from an IndexDate string. IndexDate is
// always a value NewDaySeries already validated as YYYY-MM-DD, so a parse
// failure here would mean an internal invariant broke upstream.
func yearOf(indexDate string) int {
	t, err := time.Parse(dateLayout, indexDate)
	if err != nil {
		panic("landtrendr: invalid IndexDate reached Disturbances: " + indexDate)
	}
	return t.Year()
}
