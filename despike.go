package landtrendr

import "github.com/usefulrisk/landtrendr/internal/rstats"

// Despike flags transient single-point outliers in s, returning a copy with
// updated Marks (the input is not modified). A point is flagged MarkSpike
// when it breaks the local monotone run AND its jump away from both
// neighbors exceeds one population standard deviation of the whole series,
// AND it does not repeat the most recently kept value.
//
// The first and last points are never flagged, so a trendline's endpoints
// stay anchored to observed values.
func Despike(s DaySeries) (DaySeries, error) {
	out := DaySeries{
		Dates:      append([]string(nil), s.Dates...),
		DayOffsets: append([]int(nil), s.DayOffsets...),
		Vals:       append([]float64(nil), s.Vals...),
		Marks:      make([]Mark, s.Len()),
	}

	if s.Len() == 0 {
		return out, nil
	}

	sigma, err := rstats.StdDev(s.Vals)
	if err != nil {
		// StdDev fails only on empty input, which returned above; nothing
		// to flag.
		out.Marks[0] = MarkOK
		return out, nil
	}

	out.Marks[0] = MarkOK
	if s.Len() == 1 {
		return out, nil
	}
	out.Marks[s.Len()-1] = MarkOK

	lastKept := s.Vals[0]
	for i := 1; i < s.Len()-1; i++ {
		x, y, z := s.Vals[i-1], s.Vals[i], s.Vals[i+1]
		monotone := (x <= y && y <= z) || (x >= y && y >= z)

		switch {
		case monotone:
			out.Marks[i] = MarkOK
			lastKept = y
		case absDiff(y, x) > sigma && absDiff(y, z) > sigma && y != lastKept:
			out.Marks[i] = MarkSpike
		default:
			out.Marks[i] = MarkOK
			lastKept = y
		}
	}

	return out, nil
}

func absDiff(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
