package landtrendr

import "fmt"

// NewLabelRule validates and constructs a LabelRule. Validation happens
// here, once, at construction time - never when the rule is later
// evaluated against a Trendline, per the documented "InvalidRule at
// construction" failure mode.
//
// onsetYear, duration, and preThreshold are each optional (pass nil to
// omit the filter); when present, their Qualifier must be one of the
// options documented on OnsetYearFilter, DurationFilter, and
// PreThresholdFilter respectively.
func NewLabelRule(name string, val int, changeType ChangeType, onsetYear *OnsetYearFilter, duration *DurationFilter, preThreshold *PreThresholdFilter) (LabelRule, error) {
	if name == "" {
		return LabelRule{}, fmt.Errorf("%w: name required", ErrInvalidRule)
	}
	if val == 0 {
		return LabelRule{}, fmt.Errorf("%w: val required", ErrInvalidRule)
	}

	switch changeType {
	case ChangeNone, ChangeFD, ChangeGD, ChangeLD:
	default:
		return LabelRule{}, fmt.Errorf("%w: unknown change_type %q", ErrInvalidRule, changeType)
	}

	if onsetYear != nil {
		switch onsetYear.Qualifier {
		case QualEQ, QualLE, QualGE:
		default:
			return LabelRule{}, fmt.Errorf("%w: invalid onset_year qualifier %q", ErrInvalidRule, onsetYear.Qualifier)
		}
	}

	if duration != nil {
		switch duration.Qualifier {
		case QualGT, QualLT:
		default:
			return LabelRule{}, fmt.Errorf("%w: invalid duration qualifier %q", ErrInvalidRule, duration.Qualifier)
		}
	}

	if preThreshold != nil {
		switch preThreshold.Qualifier {
		case QualGT, QualLT:
		default:
			return LabelRule{}, fmt.Errorf("%w: invalid pre_threshold qualifier %q", ErrInvalidRule, preThreshold.Qualifier)
		}
	}

	return LabelRule{
		Name:         name,
		Val:          val,
		ChangeType:   changeType,
		OnsetYear:    onsetYear,
		Duration:     duration,
		PreThreshold: preThreshold,
	}, nil
}
