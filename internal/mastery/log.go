package mastery

// Log is an append-only record of per-question results for one session.
// The zero value is ready to use.
type Log struct {
	results []int
}

// Append records one answered question in answer order.
func (l *Log) Append(correct bool) {
	v := 0
	if correct {
		v = 1
	}
	l.results = append(l.results, v)
}

// AppendRound records a whole round of results at once.
func (l *Log) AppendRound(results []int) {
	for _, r := range results {
		l.Append(r >= 1)
	}
}

// Results returns a copy of the observation sequence.
func (l *Log) Results() []int {
	out := make([]int, len(l.results))
	copy(out, l.results)
	return out
}

// Len returns the number of recorded observations.
func (l *Log) Len() int {
	return len(l.results)
}
