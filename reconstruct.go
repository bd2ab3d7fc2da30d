package landtrendr

// Reconstruct turns a vertex set into a full Trendline covering every point
// in s, spikes included. Each segment between two adjacent vertices is
// refit independently over its non-spike points; every point in that range
// inherits the segment's equation as EqnRight, and, for ordinary points, as
// EqnFit/ValFit too.
//
// A non-terminal vertex sits in two segments at once. Its EqnRight is
// always the segment to its right (or, at the final vertex, the last
// segment, there being no segment further right). Its EqnFit/ValFit instead
// pick whichever neighboring segment fits the raw value more closely;
// a tie is broken in favor of the right segment.
func Reconstruct(s DaySeries, vertices []int) (Trendline, error) {
	if len(vertices) < 2 {
		return nil, ErrInsufficientData
	}
	nSeg := len(vertices) - 1

	fits := make([]FitResult, nSeg)
	for k := 0; k < nSeg; k++ {
		left, right := vertices[k], vertices[k+1]
		var segIdx []int
		for i := left; i <= right; i++ {
			if s.Marks[i] == MarkOK {
				segIdx = append(segIdx, i)
			}
		}
		fit, err := FitLeastSquares(s, segIdx)
		if err != nil {
			return nil, err
		}
		fits[k] = fit
	}

	vertexPos := make(map[int]int, len(vertices))
	for k, v := range vertices {
		vertexPos[v] = k
	}

	segmentOf := func(i int) int {
		for k := 0; k < nSeg; k++ {
			if i >= vertices[k] && i <= vertices[k+1] {
				return k
			}
		}
		return nSeg - 1
	}

	tl := make(Trendline, s.Len())
	for i := 0; i < s.Len(); i++ {
		x := float64(s.DayOffsets[i])
		p := TrendlinePoint{
			ValRaw:    s.Vals[i],
			IndexDate: s.Dates[i],
			IndexDay:  s.DayOffsets[i],
			Spike:     s.Marks[i] == MarkSpike,
		}

		k, isVertex := vertexPos[i]
		switch {
		case isVertex && k == 0:
			eqn := fits[0].Eqn
			p.Vertex = true
			p.EqnFit, p.EqnRight = eqn, eqn
			p.ValFit = eqn.At(x)

		case isVertex && k == nSeg:
			eqn := fits[nSeg-1].Eqn
			p.Vertex = true
			p.EqnFit, p.EqnRight = eqn, eqn
			p.ValFit = eqn.At(x)

		case isVertex:
			leftEqn, rightEqn := fits[k-1].Eqn, fits[k].Eqn
			leftVal, rightVal := leftEqn.At(x), rightEqn.At(x)
			p.Vertex = true
			p.EqnRight = rightEqn
			if absDiff(p.ValRaw, leftVal) < absDiff(p.ValRaw, rightVal) {
				p.EqnFit, p.ValFit = leftEqn, leftVal
			} else {
				p.EqnFit, p.ValFit = rightEqn, rightVal
			}

		default:
			eqn := fits[segmentOf(i)].Eqn
			p.EqnFit, p.EqnRight = eqn, eqn
			p.ValFit = eqn.At(x)
		}

		tl[i] = p
	}

	return tl, nil
}
