package landtrendr

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// NewDaySeries builds a DaySeries from a pixel's observation list: it
// parses each date, and maps the sequence to integer day offsets from the
// first date. Observations must already be sorted by date; NewDaySeries
// validates strict ordering as it goes rather than sorting for the caller.
//
// Every point starts out Marked MarkOK; despiking happens separately, in
// Despike.
func NewDaySeries(obs []Observation) (DaySeries, error) {
	if len(obs) == 0 {
		return DaySeries{}, ErrNoObservations
	}

	parsed := make([]time.Time, len(obs))
	for i, o := range obs {
		t, err := time.Parse(dateLayout, o.Date)
		if err != nil {
			return DaySeries{}, fmt.Errorf("%w: %q", ErrInvalidDate, o.Date)
		}
		parsed[i] = t
	}

	first := parsed[0]
	out := DaySeries{
		Dates:      make([]string, len(obs)),
		DayOffsets: make([]int, len(obs)),
		Vals:       make([]float64, len(obs)),
		Marks:      make([]Mark, len(obs)),
	}

	prevOffset := -1
	for i, o := range obs {
		offset := int(parsed[i].Sub(first).Hours() / 24)
		if offset <= prevOffset {
			return DaySeries{}, fmt.Errorf("%w: %q is not strictly after the previous observation", ErrDuplicateDate, o.Date)
		}
		prevOffset = offset

		out.Dates[i] = o.Date
		out.DayOffsets[i] = offset
		out.Vals[i] = o.Val
		out.Marks[i] = MarkOK
	}

	return out, nil
}
