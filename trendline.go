package landtrendr

// Analyze is the per-pixel synchronous entry point composing the whole
// core pipeline: it parses dates into day offsets, despikes the series,
// runs the Segmenter's Bellman DP to choose a vertex set, and reconstructs
// a full Trendline from it. It is a pure function of its inputs, with no
// shared state and no I/O - callers may invoke it directly, or fan it out
// across pixels with RunBatch.
//
// Analyze returns ErrNoObservations for an empty observation list,
// ErrInvalidDate/ErrDuplicateDate from date parsing, ErrInvalidLineCost for
// a non-positive lineCost, and ErrInsufficientData if fewer than two
// non-spike observations survive despiking.
func Analyze(observations []Observation, lineCost float64) (Trendline, error) {
	series, err := NewDaySeries(observations)
	if err != nil {
		return nil, err
	}

	despiked, err := Despike(series)
	if err != nil {
		return nil, err
	}

	vertices, err := Segment(despiked, lineCost)
	if err != nil {
		return nil, err
	}

	return Reconstruct(despiked, vertices)
}
