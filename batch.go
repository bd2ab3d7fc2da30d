package landtrendr

import (
	"context"
	"log"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Pixel is one unit of RunBatch input: an identifier plus its observation
// list. ID is opaque to the core - a caller typically uses a point WKT or
// pixel coordinate string.
type Pixel struct {
	ID           string
	Observations []Observation
}

// RunBatch fans Analyze+ChangeLabels out across pixels, bounded by
// opts.Concurrency workers (a non-positive value defaults to GOMAXPROCS).
// Scheduling is embarrassingly parallel across pixels and purely
// sequential within one: each pixel's PixelResult is independent, a
// failing pixel never aborts the batch, and cancellation is checked only
// between pixel dispatches, never injected into a pixel already running.
//
// The returned slice is in the same order as pixels, regardless of which
// worker finished first.
func RunBatch(ctx context.Context, pixels []Pixel, opts BatchOptions) ([]PixelResult, RunStats, error) {
	workers := opts.Concurrency
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	runID := uuid.New()
	results := make([]PixelResult, len(pixels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var analyzed, failed, cancelled atomic.Int64
	for i, px := range pixels {
		i, px := i, px
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = PixelResult{ID: px.ID, Err: gctx.Err()}
				cancelled.Add(1)
				return nil
			default:
			}

			tl, err := Analyze(px.Observations, opts.LineCost)
			if err != nil {
				log.Printf("landtrendr: run %s: pixel %s: %v", runID, px.ID, err)
				results[i] = PixelResult{ID: px.ID, Err: err}
				failed.Add(1)
				return nil
			}

			labels := ChangeLabels(tl, opts.Rules)
			results[i] = PixelResult{ID: px.ID, Trendline: tl, Labels: labels}
			analyzed.Add(1)
			return nil
		})
	}

	// Every goroutine above returns nil: a per-pixel error is recorded in
	// that pixel's PixelResult, never propagated as the batch error. The
	// only batch-level error is a cancellation of the caller's ctx.
	_ = g.Wait()
	stats := RunStats{
		Analyzed:  int(analyzed.Load()),
		Failed:    int(failed.Load()),
		Cancelled: int(cancelled.Load()),
	}
	if err := ctx.Err(); err != nil {
		return results, stats, err
	}

	log.Printf("landtrendr: run %s: analyzed=%d failed=%d cancelled=%d", runID, stats.Analyzed, stats.Failed, stats.Cancelled)
	return results, stats, nil
}
