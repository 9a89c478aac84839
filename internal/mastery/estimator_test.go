package mastery

import "testing"

func TestEstimate_Empty(t *testing.T) {
	got := Estimate(nil)
	if got != ColdStart {
		t.Errorf("Estimate(nil) = %f, want %f", got, ColdStart)
	}
	got = Estimate([]int{})
	if got != ColdStart {
		t.Errorf("Estimate([]) = %f, want %f", got, ColdStart)
	}
}

func TestEstimate_AllCorrect(t *testing.T) {
	got := Estimate([]int{1, 1, 1, 1})
	if got != 1.0 {
		t.Errorf("Estimate = %f, want 1.0", got)
	}
}

func TestEstimate_AllWrong(t *testing.T) {
	got := Estimate([]int{0, 0, 0})
	if got != 0.0 {
		t.Errorf("Estimate = %f, want 0.0", got)
	}
}

func TestEstimate_Mean(t *testing.T) {
	got := Estimate([]int{1, 0, 1, 0})
	if got != 0.5 {
		t.Errorf("Estimate = %f, want 0.5", got)
	}

	got = Estimate([]int{1, 1, 0})
	want := 2.0 / 3.0
	if got != want {
		t.Errorf("Estimate = %f, want %f", got, want)
	}
}

func TestEstimate_NormalizesEntries(t *testing.T) {
	// Values above 1 count as 1, negatives count as 0.
	got := Estimate([]int{3, -2, 1, 0})
	if got != 0.5 {
		t.Errorf("Estimate = %f, want 0.5", got)
	}
}

func TestEstimate_OrderIndependent(t *testing.T) {
	a := Estimate([]int{1, 1, 0, 0, 1})
	b := Estimate([]int{0, 1, 1, 1, 0})
	if a != b {
		t.Errorf("reordering changed estimate: %f vs %f", a, b)
	}
}

func TestEstimate_DoesNotMutateInput(t *testing.T) {
	in := []int{5, -1, 1}
	Estimate(in)
	if in[0] != 5 || in[1] != -1 || in[2] != 1 {
		t.Errorf("input slice was mutated: %v", in)
	}
}

func TestLog_AppendAndResults(t *testing.T) {
	var log Log
	log.Append(true)
	log.Append(false)
	log.AppendRound([]int{1, 1})

	got := log.Results()
	want := []int{1, 0, 1, 1}
	if len(got) != len(want) {
		t.Fatalf("Results length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Results[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Returned slice is a copy.
	got[0] = 99
	if log.Results()[0] == 99 {
		t.Error("Results() exposed internal slice")
	}

	if log.Len() != 4 {
		t.Errorf("Len = %d, want 4", log.Len())
	}
}
