package landtrendr

// ChangeLabels runs MatchRule against every rule in rules and assembles the
// resulting LabelResult. Rules are independent of one another and of their
// order in the slice; a rule whose Name collides with an earlier one
// silently replaces it in the result; duplicate names are the caller's
// responsibility to avoid.
func ChangeLabels(tl Trendline, rules []LabelRule) LabelResult {
	result := make(LabelResult, len(rules))
	for _, rule := range rules {
		d, found := MatchRule(tl, rule)
		if !found {
			continue
		}
		result[rule.Name] = LabelMatch{
			ClassVal:  rule.Val,
			OnsetYear: d.OnsetYear,
			Magnitude: d.Magnitude,
			Duration:  d.Duration,
		}
	}
	return result
}
