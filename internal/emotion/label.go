package emotion

// Label is a detected facial emotion. The classifier produces one of a
// small closed set; everything else is treated as LabelNone.
type Label string

const (
	Angry    Label = "angry"
	Disgust  Label = "disgust"
	Fear     Label = "fear"
	Happy    Label = "happy"
	Neutral  Label = "neutral"
	Sad      Label = "sad"
	Surprise Label = "surprise"

	// LabelNone means no face was detected or no signal is available.
	LabelNone Label = ""
)

// AllLabels returns the closed label set, in classifier output order.
func AllLabels() []Label {
	return []Label{Angry, Disgust, Fear, Happy, Neutral, Sad, Surprise}
}

// Parse normalizes a raw classifier string to a Label.
// Strings outside the closed set map to LabelNone.
func Parse(s string) Label {
	switch Label(s) {
	case Angry, Disgust, Fear, Happy, Neutral, Sad, Surprise:
		return Label(s)
	}
	return LabelNone
}

// IsNegative reports whether the label belongs to the group that calls
// for a supportive, pace-reducing response.
func (l Label) IsNegative() bool {
	switch l {
	case Sad, Angry, Disgust, Fear:
		return true
	}
	return false
}

// IsPositive reports whether the label belongs to the positive-or-neutral
// group that permits raising the challenge.
func (l Label) IsPositive() bool {
	switch l {
	case Happy, Surprise, Neutral:
		return true
	}
	return false
}

// String returns the label text, or "none" for the absent signal.
func (l Label) String() string {
	if l == LabelNone {
		return "none"
	}
	return string(l)
}
