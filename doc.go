// Package landtrendr recovers a piecewise-linear trendline from an irregular,
// per-pixel time series of a remotely-sensed index, and classifies the
// disturbances in that trendline against a caller-supplied set of label
// rules.
//
// The pipeline mirrors the LandTrendr algorithm: despike the raw
// observations, fit a small number of linear segments to what remains with
// a Bellman dynamic-programming segmented least squares, reconstruct a
// fitted value for every original observation, derive a disturbance per
// adjacent vertex pair, and pick a winning disturbance per label rule.
//
// Spiked observations are never represented with NaN; each point in a
// DaySeries carries an explicit Mark (MarkOK, MarkSpike), and each point
// in a Trendline an explicit Spike flag, so downstream code can branch on
// it safely.
//
// Key types:
//
//	type Observation   // one (date, value) input pair
//	type Trendline      // the fitted, per-point output of Analyze
//	type LabelRule      // a disturbance-matching rule
//	type LabelResult    // the rule-name -> match mapping ChangeLabels produces
//
// Typical usage:
//
//	trendline, err := landtrendr.Analyze(observations, lineCost)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	labels := landtrendr.ChangeLabels(trendline, rules)
package landtrendr
