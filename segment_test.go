package landtrendr

import (
	"errors"
	"reflect"
	"testing"
)

func TestSegmentMonotoneSeries(t *testing.T) {
	s := daySeriesFromVals([]float64{1, 2, 3, 4, 5, 7, 9, 11, 13, 15})
	vertices, err := Segment(s, 2)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	want := []int{0, 4, 9}
	if !reflect.DeepEqual(vertices, want) {
		t.Errorf("Segment() = %v, want %v", vertices, want)
	}
}

func TestSegmentInsufficientData(t *testing.T) {
	s := daySeriesFromVals([]float64{1})
	_, err := Segment(s, 2)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestSegmentAllSpiked(t *testing.T) {
	s := daySeriesFromVals([]float64{1, 2, 3})
	s.Marks[0] = MarkSpike
	s.Marks[1] = MarkSpike
	s.Marks[2] = MarkSpike
	_, err := Segment(s, 2)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestSegmentInvalidLineCost(t *testing.T) {
	s := daySeriesFromVals([]float64{1, 2, 3})
	_, err := Segment(s, 0)
	if !errors.Is(err, ErrInvalidLineCost) {
		t.Errorf("error = %v, want ErrInvalidLineCost", err)
	}
	_, err = Segment(s, -1)
	if !errors.Is(err, ErrInvalidLineCost) {
		t.Errorf("error = %v, want ErrInvalidLineCost", err)
	}
}

// segmentCost prices one partition of s into the contiguous segments given
// by their start indices: per-segment fit residual plus lineCost each.
func segmentCost(t *testing.T, s DaySeries, starts []int, lineCost float64) float64 {
	t.Helper()
	cost := 0.0
	for k, start := range starts {
		end := s.Len() - 1
		if k+1 < len(starts) {
			end = starts[k+1] - 1
		}
		idx := make([]int, 0, end-start+1)
		for i := start; i <= end; i++ {
			idx = append(idx, i)
		}
		fit, err := FitLeastSquares(s, idx)
		if err != nil {
			t.Fatalf("FitLeastSquares(%v) error = %v", idx, err)
		}
		cost += fit.Residual + lineCost
	}
	return cost
}

func TestSegmentCostIsOptimalByBruteForce(t *testing.T) {
	s := daySeriesFromVals([]float64{2, 3.1, 4.2, 9.5, 9.4, 9.9, 4.4, 1.2})
	const lineCost = 1.5
	n := s.Len()

	vertices, err := Segment(s, lineCost)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	starts := vertices[:len(vertices)-1]
	if vertices[len(vertices)-1] != n-1 {
		t.Fatalf("last vertex = %d, want %d", vertices[len(vertices)-1], n-1)
	}
	got := segmentCost(t, s, starts, lineCost)

	// Enumerate every partition: each bit of mask puts a segment start at
	// interior index i+1.
	best := -1.0
	for mask := 0; mask < 1<<(n-1); mask++ {
		alt := []int{0}
		for i := 0; i < n-1; i++ {
			if mask&(1<<i) != 0 {
				alt = append(alt, i+1)
			}
		}
		cost := segmentCost(t, s, alt, lineCost)
		if best < 0 || cost < best {
			best = cost
		}
	}

	if got > best+1e-9 {
		t.Errorf("Segment() cost = %v, brute-force optimum = %v", got, best)
	}
}

func TestSegmentTwoPoints(t *testing.T) {
	s := daySeriesFromVals([]float64{1, 5})
	vertices, err := Segment(s, 2)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if !reflect.DeepEqual(vertices, []int{0, 1}) {
		t.Errorf("Segment() = %v, want [0 1]", vertices)
	}
}
