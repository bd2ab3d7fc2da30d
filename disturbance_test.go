package landtrendr

import "testing"

func TestDisturbancesFromVertexPairs(t *testing.T) {
	tl := Trendline{
		{IndexDate: "2010-01-01", IndexDay: 0, ValFit: 10, Vertex: true},
		{IndexDate: "2012-01-01", IndexDay: 730, ValFit: 4, Vertex: false},
		{IndexDate: "2013-01-01", IndexDay: 1095, ValFit: 6, Vertex: true},
		{IndexDate: "2016-01-01", IndexDay: 2190, ValFit: 9, Vertex: true},
	}

	ds := Disturbances(tl)
	if len(ds) != 2 {
		t.Fatalf("len(Disturbances) = %d, want 2", len(ds))
	}

	first := ds[0]
	if first.OnsetYear != 2010 || first.InitialVal != 10 || first.Magnitude != 4 || first.Duration != 3 {
		t.Errorf("first disturbance = %+v, want {2010 10 4 3}", first)
	}

	second := ds[1]
	if second.OnsetYear != 2013 || second.InitialVal != 6 || second.Magnitude != -3 || second.Duration != 3 {
		t.Errorf("second disturbance = %+v, want {2013 6 -3 3}", second)
	}
}

func TestDisturbancesSignConventionPositiveIsDecrease(t *testing.T) {
	tl := Trendline{
		{IndexDate: "2000-01-01", ValFit: 100, Vertex: true},
		{IndexDate: "2005-01-01", ValFit: 40, Vertex: true},
	}
	ds := Disturbances(tl)
	if len(ds) != 1 || ds[0].Magnitude != 60 {
		t.Errorf("Disturbances() = %+v, want a single disturbance with magnitude 60 (a decrease)", ds)
	}
}

func TestDisturbancesFewerThanTwoVertices(t *testing.T) {
	tl := Trendline{{IndexDate: "2010-01-01", Vertex: true}}
	if ds := Disturbances(tl); ds != nil {
		t.Errorf("Disturbances() = %+v, want nil for fewer than two vertices", ds)
	}
}

func TestDisturbancesIgnoresNonVertexPoints(t *testing.T) {
	tl := Trendline{
		{IndexDate: "2010-01-01", ValFit: 5, Vertex: true},
		{IndexDate: "2011-01-01", ValFit: 99, Vertex: false},
		{IndexDate: "2012-01-01", ValFit: 3, Vertex: true},
	}
	ds := Disturbances(tl)
	if len(ds) != 1 {
		t.Fatalf("len(Disturbances) = %d, want 1", len(ds))
	}
	if ds[0].InitialVal != 5 || ds[0].Magnitude != 2 {
		t.Errorf("Disturbances() = %+v, want InitialVal=5 Magnitude=2", ds[0])
	}
}
