package landtrendr

import "fmt"

// PointAttrs lists the TrendlinePoint attributes FlattenPoints emits.
var PointAttrs = []string{
	"val_raw", "val_fit",
	"eqn_fit_slope", "eqn_fit_intercept",
	"eqn_right_slope", "eqn_right_intercept",
	"spike", "vertex",
}

// FlattenPoints produces the flattened `<date>_<attr> -> value` emission
// for map-building downstream of the core: one entry
// per TrendlinePoint per recognized attribute, with booleans coerced to
// 0/1. Unrecognized-attribute filtering isn't needed here since every
// TrendlinePoint carries exactly the attributes in PointAttrs.
func FlattenPoints(tl Trendline) map[string]float64 {
	out := make(map[string]float64, len(tl)*len(PointAttrs))
	for _, p := range tl {
		out[key(p.IndexDate, "val_raw")] = p.ValRaw
		out[key(p.IndexDate, "val_fit")] = p.ValFit
		out[key(p.IndexDate, "eqn_fit_slope")] = p.EqnFit.Slope
		out[key(p.IndexDate, "eqn_fit_intercept")] = p.EqnFit.Intercept
		out[key(p.IndexDate, "eqn_right_slope")] = p.EqnRight.Slope
		out[key(p.IndexDate, "eqn_right_intercept")] = p.EqnRight.Intercept
		out[key(p.IndexDate, "spike")] = boolToFloat(p.Spike)
		out[key(p.IndexDate, "vertex")] = boolToFloat(p.Vertex)
	}
	return out
}

// FlattenLabels produces the `<rule_name>_<key> -> value` emission for
// label map-building, one entry per
// (class_val, onset_year, magnitude, duration) field per matched rule.
func FlattenLabels(labels LabelResult) map[string]float64 {
	out := make(map[string]float64, len(labels)*4)
	for name, m := range labels {
		out[name+"_class_val"] = float64(m.ClassVal)
		out[name+"_onset_year"] = float64(m.OnsetYear)
		out[name+"_magnitude"] = m.Magnitude
		out[name+"_duration"] = float64(m.Duration)
	}
	return out
}

func key(date, attr string) string {
	return fmt.Sprintf("%s_%s", date, attr)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
