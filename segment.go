package landtrendr

// Segmenter picks the vertex set - the indices that best partition a
// despiked series into straight-line segments - by dynamic programming. It
// is the Bellman-style "segmented least squares" recurrence: OPT(j) is the
// cheapest way to cover the first j+1 non-spike points, where the last
// segment [i..j] costs its fit residual plus lineCost, and everything
// before it costs OPT(i-1). Paying lineCost once per segment discourages
// over-segmenting.
//
// The reported vertices are each chosen segment's first point plus the
// final point, in ascending order, as indices into s.
//
// Segment fills the OPT table and a traceback (choice) array with explicit
// loops, following a Bellman DP's table-then-backtrack shape rather than
// recursion. Segment residuals come from running prefix sums, so each
// candidate (i, j) pair costs O(1) and the whole DP stays O(n²).
func Segment(s DaySeries, lineCost float64) ([]int, error) {
	idx := s.NonSpikeIndices()
	m := len(idx)
	if m < 2 {
		return nil, ErrInsufficientData
	}
	if lineCost <= 0 {
		return nil, ErrInvalidLineCost
	}

	// Prefix sums over the non-spike points, indexed so that the sums over
	// idx[a..b] are p[b+1]-p[a].
	sx := make([]float64, m+1)
	sy := make([]float64, m+1)
	sxx := make([]float64, m+1)
	sxy := make([]float64, m+1)
	syy := make([]float64, m+1)
	for k, i := range idx {
		x := float64(s.DayOffsets[i])
		y := s.Vals[i]
		sx[k+1] = sx[k] + x
		sy[k+1] = sy[k] + y
		sxx[k+1] = sxx[k] + x*x
		sxy[k+1] = sxy[k] + x*y
		syy[k+1] = syy[k] + y*y
	}

	// sse is the least-squares residual over idx[a..b], in closed form from
	// the prefix sums. Rounding can push a near-zero residual slightly
	// negative; clamp it.
	sse := func(a, b int) float64 {
		n := float64(b - a + 1)
		sumX := sx[b+1] - sx[a]
		sumY := sy[b+1] - sy[a]
		sumXX := sxx[b+1] - sxx[a]
		sumXY := sxy[b+1] - sxy[a]
		sumYY := syy[b+1] - syy[a]

		denom := n*sumXX - sumX*sumX
		var r float64
		if denom == 0 {
			// All x coincide; the best flat line is the mean.
			r = sumYY - sumY*sumY/n
		} else {
			slope := (n*sumXY - sumX*sumY) / denom
			intercept := (sumY - slope*sumX) / n
			r = sumYY - slope*sumXY - intercept*sumY
		}
		if r < 0 {
			r = 0
		}
		return r
	}

	// opt[k] is OPT(k-1), so opt[0] is the empty prefix. choice[j] is the
	// start of the last segment in the optimal cover of [0..j].
	opt := make([]float64, m+1)
	choice := make([]int, m)

	for j := 0; j < m; j++ {
		best := -1.0
		bestI := -1
		for i := 0; i <= j; i++ {
			v := opt[i] + sse(i, j) + lineCost
			// Strict less-than keeps the first (leftmost i) minimum found,
			// implementing the documented leftmost tie-break.
			if bestI == -1 || v < best {
				best = v
				bestI = i
			}
		}
		opt[j+1] = best
		choice[j] = bestI
	}

	// Trace segment starts back from the final point.
	vertices := []int{idx[m-1]}
	j := m - 1
	for {
		i := choice[j]
		if i == 0 {
			break
		}
		if idx[i] != vertices[len(vertices)-1] {
			vertices = append(vertices, idx[i])
		}
		j = i - 1
	}
	if vertices[len(vertices)-1] != idx[0] {
		vertices = append(vertices, idx[0])
	}

	// Reverse into ascending day-index order.
	for l, r := 0, len(vertices)-1; l < r; l, r = l+1, r-1 {
		vertices[l], vertices[r] = vertices[r], vertices[l]
	}

	return vertices, nil
}
