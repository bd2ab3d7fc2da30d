package landtrendr

import "errors"

// Sentinel errors returned by the core. Each names the taxonomy entry it
// implements; callers should match with errors.Is, not string comparison.
var (
	// ErrInvalidDate means a date string failed to parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("landtrendr: invalid date")

	// ErrDuplicateDate means an observation's date is not strictly after
	// the previous one: two observations share a date, or they are out of
	// order.
	ErrDuplicateDate = errors.New("landtrendr: duplicate observation date")

	// ErrInvalidRule means a LabelRule was constructed with a missing
	// name/val, an unknown change_type, or a malformed filter pair.
	ErrInvalidRule = errors.New("landtrendr: invalid label rule")

	// ErrEmptySegment means the fitter was asked to fit a subsequence with
	// no non-missing points.
	ErrEmptySegment = errors.New("landtrendr: empty segment")

	// ErrInsufficientData means fewer than two non-spike observations
	// reached the segmenter.
	ErrInsufficientData = errors.New("landtrendr: insufficient data")

	// ErrInvalidLineCost means Segment was called with a non-positive
	// lineCost.
	ErrInvalidLineCost = errors.New("landtrendr: line cost must be positive")

	// ErrNoObservations means Analyze was called with zero observations.
	ErrNoObservations = errors.New("landtrendr: no observations")
)
