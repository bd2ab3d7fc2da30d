package landtrendr

import (
	"math"

	"github.com/usefulrisk/landtrendr/internal/rstats"
)

// Summary holds descriptive statistics for one pixel's trendline, for
// end-of-run reporting and sanity checks on a batch.
type Summary struct {
	Len      int
	Spikes   int
	Vertices int
	RawMin   float64
	RawMax   float64
	RawMean  float64
	RawMed   float64
	RawStd   float64
	FitRMSE  float64
}

// Summarize computes a Summary over tl. Spiked points are excluded from
// the raw-value statistics and from the fit error, the same way they are
// excluded from segmentation.
func Summarize(tl Trendline) Summary {
	s := Summary{Len: len(tl)}
	if len(tl) == 0 {
		return s
	}

	var raw []float64
	var sqErr float64
	s.RawMin, s.RawMax = math.Inf(1), math.Inf(-1)
	for _, p := range tl {
		if p.Vertex {
			s.Vertices++
		}
		if p.Spike {
			s.Spikes++
			continue
		}
		raw = append(raw, p.ValRaw)
		if p.ValRaw < s.RawMin {
			s.RawMin = p.ValRaw
		}
		if p.ValRaw > s.RawMax {
			s.RawMax = p.ValRaw
		}
		d := p.ValRaw - p.ValFit
		sqErr += d * d
	}
	if len(raw) == 0 {
		s.RawMin, s.RawMax = 0, 0
		return s
	}

	s.RawMean, _ = rstats.Mean(raw)
	s.RawMed, _ = rstats.Percentile(raw, 50)
	s.RawStd, _ = rstats.StdDev(raw)
	s.FitRMSE = math.Sqrt(sqErr / float64(len(raw)))
	return s
}
