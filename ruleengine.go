package landtrendr

// MatchRule evaluates rule against every disturbance derived from tl and
// returns the winning one, if any survives the rule's filters. found is
// false when no disturbance satisfies every present filter - "no match"
// is a normal outcome, not an error.
//
// A disturbance survives
// only if it satisfies every filter rule carries (onset_year, duration,
// pre_threshold - any combination of which may be nil/absent), and the
// winner among survivors is chosen by rule.ChangeType, with ties always
// going to the earlier (smaller onset year) disturbance.
func MatchRule(tl Trendline, rule LabelRule) (Disturbance, bool) {
	var winner Disturbance
	found := false

	for _, d := range Disturbances(tl) {
		if !passesFilters(d, rule) {
			continue
		}
		if !found {
			winner, found = d, true
			continue
		}
		if isBetter(d, winner, rule.ChangeType) {
			winner = d
		}
	}

	return winner, found
}

func passesFilters(d Disturbance, rule LabelRule) bool {
	if f := rule.OnsetYear; f != nil {
		switch f.Qualifier {
		case QualEQ:
			if d.OnsetYear != f.Year {
				return false
			}
		case QualLE:
			if d.OnsetYear > f.Year {
				return false
			}
		case QualGE:
			if d.OnsetYear < f.Year {
				return false
			}
		}
	}

	if f := rule.Duration; f != nil {
		switch f.Qualifier {
		case QualGT:
			if d.Duration <= f.Years {
				return false
			}
		case QualLT:
			if d.Duration >= f.Years {
				return false
			}
		}
	}

	if f := rule.PreThreshold; f != nil {
		switch f.Qualifier {
		case QualGT:
			if d.InitialVal <= f.Value {
				return false
			}
		case QualLT:
			if d.InitialVal >= f.Value {
				return false
			}
		}
	}

	return true
}

// isBetter reports whether candidate should replace current as the
// winner under the given selection policy. Only a strict improvement
// replaces the current winner; on exact ties the earlier-seen disturbance
// (which, by disturbance order, has the smaller or equal onset year)
// keeps its place, implementing the "earlier disturbance wins" tie-break.
func isBetter(candidate, current Disturbance, changeType ChangeType) bool {
	switch changeType {
	case ChangeFD:
		return candidate.OnsetYear < current.OnsetYear
	case ChangeGD:
		return candidate.Magnitude > current.Magnitude
	case ChangeLD:
		return candidate.Duration > current.Duration
	default:
		// ChangeNone: the first surviving disturbance wins outright.
		return false
	}
}
