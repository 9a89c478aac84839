package emotion

import "testing"

func TestParse(t *testing.T) {
	for _, l := range AllLabels() {
		if got := Parse(string(l)); got != l {
			t.Errorf("Parse(%q) = %q, want %q", l, got, l)
		}
	}

	for _, raw := range []string{"", "confused", "HAPPY", "Sad "} {
		if got := Parse(raw); got != LabelNone {
			t.Errorf("Parse(%q) = %q, want LabelNone", raw, got)
		}
	}
}

func TestIsNegative(t *testing.T) {
	negatives := map[Label]bool{Sad: true, Angry: true, Disgust: true, Fear: true}
	for _, l := range AllLabels() {
		if got := l.IsNegative(); got != negatives[l] {
			t.Errorf("%s.IsNegative() = %v, want %v", l, got, negatives[l])
		}
	}
	if LabelNone.IsNegative() {
		t.Error("LabelNone should not be negative")
	}
}

func TestIsPositive(t *testing.T) {
	positives := map[Label]bool{Happy: true, Surprise: true, Neutral: true}
	for _, l := range AllLabels() {
		if got := l.IsPositive(); got != positives[l] {
			t.Errorf("%s.IsPositive() = %v, want %v", l, got, positives[l])
		}
	}
	if LabelNone.IsPositive() {
		t.Error("LabelNone should not be positive")
	}
}

func TestString(t *testing.T) {
	if got := LabelNone.String(); got != "none" {
		t.Errorf("LabelNone.String() = %q, want none", got)
	}
	if got := Happy.String(); got != "happy" {
		t.Errorf("Happy.String() = %q, want happy", got)
	}
}
