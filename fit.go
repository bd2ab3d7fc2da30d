package landtrendr

// FitResult is the outcome of an ordinary-least-squares fit over a
// contiguous day-offset subsequence: the fitted line plus its residual sum
// of squared errors, which the Segmenter's DP uses as a segment's cost.
type FitResult struct {
	Eqn      LineEq
	Residual float64
}

// FitLeastSquares fits a line to the points named by idx (indices into s,
// typically a contiguous run of non-spike indices produced by
// DaySeries.NonSpikeIndices). It returns ErrEmptySegment if idx is empty.
//
// A single-point segment is a degenerate fit: the line is flat through that
// point (zero slope) and its residual is zero.
func FitLeastSquares(s DaySeries, idx []int) (FitResult, error) {
	n := len(idx)
	if n == 0 {
		return FitResult{}, ErrEmptySegment
	}
	if n == 1 {
		y := s.Vals[idx[0]]
		return FitResult{Eqn: LineEq{Slope: 0, Intercept: y}}, nil
	}

	var sx, sy, sxx, sxy float64
	for _, i := range idx {
		x := float64(s.DayOffsets[i])
		y := s.Vals[i]
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}
	nf := float64(n)
	denom := nf*sxx - sx*sx
	var slope, intercept float64
	if denom == 0 {
		// All x values coincide; fall back to a flat line through the mean.
		slope = 0
		intercept = sy / nf
	} else {
		slope = (nf*sxy - sx*sy) / denom
		intercept = (sy - slope*sx) / nf
	}

	eqn := LineEq{Slope: slope, Intercept: intercept}
	var residual float64
	for _, i := range idx {
		x := float64(s.DayOffsets[i])
		y := s.Vals[i]
		d := y - eqn.At(x)
		residual += d * d
	}

	return FitResult{Eqn: eqn, Residual: residual}, nil
}
