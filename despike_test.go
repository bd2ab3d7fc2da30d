package landtrendr

import "testing"

func daySeriesFromVals(vals []float64) DaySeries {
	s := DaySeries{
		Dates:      make([]string, len(vals)),
		DayOffsets: make([]int, len(vals)),
		Vals:       append([]float64(nil), vals...),
		Marks:      make([]Mark, len(vals)),
	}
	for i := range vals {
		s.DayOffsets[i] = i
	}
	return s
}

func marksOf(s DaySeries) []Mark { return s.Marks }

func TestDespikeSingleObviousSpike(t *testing.T) {
	in := daySeriesFromVals([]float64{1, 1, 1, 5, 1, 1, 1})
	out, err := Despike(in)
	if err != nil {
		t.Fatalf("Despike() error = %v", err)
	}
	want := []Mark{MarkOK, MarkOK, MarkOK, MarkSpike, MarkOK, MarkOK, MarkOK}
	assertMarks(t, marksOf(out), want)
}

func TestDespikeTwoSpikes(t *testing.T) {
	in := daySeriesFromVals([]float64{1, 3, 1, 5, 1, 1, 1})
	out, err := Despike(in)
	if err != nil {
		t.Fatalf("Despike() error = %v", err)
	}
	want := []Mark{MarkOK, MarkSpike, MarkOK, MarkSpike, MarkOK, MarkOK, MarkOK}
	assertMarks(t, marksOf(out), want)
}

func TestDespikeLargeOutlier(t *testing.T) {
	in := daySeriesFromVals([]float64{1, 2, 3, 4, 1000, 7, 9, 11, 13, 15})
	out, err := Despike(in)
	if err != nil {
		t.Fatalf("Despike() error = %v", err)
	}
	if out.Marks[4] != MarkSpike {
		t.Errorf("Marks[4] = %v, want MarkSpike", out.Marks[4])
	}
	for i, m := range out.Marks {
		if i == 4 {
			continue
		}
		if m != MarkOK {
			t.Errorf("Marks[%d] = %v, want MarkOK", i, m)
		}
	}
}

func TestDespikeMonotoneSeriesUnflagged(t *testing.T) {
	in := daySeriesFromVals([]float64{1, 2, 3, 4, 5, 7, 9, 11, 13, 15})
	out, err := Despike(in)
	if err != nil {
		t.Fatalf("Despike() error = %v", err)
	}
	for i, m := range out.Marks {
		if m != MarkOK {
			t.Errorf("Marks[%d] = %v, want MarkOK (monotone series)", i, m)
		}
	}
}

func TestDespikeDoesNotMutateInput(t *testing.T) {
	in := daySeriesFromVals([]float64{1, 1, 1, 5, 1, 1, 1})
	_, err := Despike(in)
	if err != nil {
		t.Fatalf("Despike() error = %v", err)
	}
	for _, m := range in.Marks {
		if m != MarkOK {
			t.Fatalf("input series was mutated: %v", in.Marks)
		}
	}
}

func assertMarks(t *testing.T, got, want []Mark) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len(marks) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Marks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
