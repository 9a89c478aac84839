// Package mastery converts correctness observations into a mastery score.
package mastery

// ColdStart is the mastery assumed for a learner with no history.
// Choosing the midpoint starts new learners at the B1/Medium bucket
// instead of bottoming them out at A1 (the "assume average" policy).
const ColdStart = 0.5

// Estimate returns a mastery score in [0,1] for an ordered sequence of
// correctness observations. The current estimator is the arithmetic mean,
// so ordering does not affect the result, but callers must still preserve
// answer order for future recency-weighted estimators.
//
// Entries are normalized to {0,1}: negatives count as 0, values above 1
// count as 1. An empty sequence returns ColdStart.
func Estimate(observations []int) float64 {
	if len(observations) == 0 {
		return ColdStart
	}
	sum := 0
	for _, o := range observations {
		if o >= 1 {
			sum++
		}
	}
	return float64(sum) / float64(len(observations))
}
