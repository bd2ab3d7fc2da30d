package landtrendr

import "testing"

func TestFlattenPoints(t *testing.T) {
	tl := Trendline{
		{
			IndexDate: "2010-01-01",
			ValRaw:    5, ValFit: 4.5,
			EqnFit:   LineEq{Slope: 1, Intercept: 2},
			EqnRight: LineEq{Slope: 1, Intercept: 2},
			Spike:    false,
			Vertex:   true,
		},
	}

	got := FlattenPoints(tl)
	want := map[string]float64{
		"2010-01-01_val_raw":             5,
		"2010-01-01_val_fit":             4.5,
		"2010-01-01_eqn_fit_slope":       1,
		"2010-01-01_eqn_fit_intercept":   2,
		"2010-01-01_eqn_right_slope":     1,
		"2010-01-01_eqn_right_intercept": 2,
		"2010-01-01_spike":               0,
		"2010-01-01_vertex":              1,
	}

	if len(got) != len(want) {
		t.Fatalf("len(FlattenPoints()) = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("FlattenPoints()[%q] = %v, want %v", k, got[k], v)
		}
	}
}

func TestFlattenLabels(t *testing.T) {
	labels := LabelResult{
		"fast_dist": {ClassVal: 2, OnsetYear: 2010, Magnitude: 6.4, Duration: 3},
	}
	got := FlattenLabels(labels)
	want := map[string]float64{
		"fast_dist_class_val":  2,
		"fast_dist_onset_year": 2010,
		"fast_dist_magnitude":  6.4,
		"fast_dist_duration":   3,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("FlattenLabels()[%q] = %v, want %v", k, got[k], v)
		}
	}
}
