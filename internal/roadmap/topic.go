package roadmap

// Topic is one entry in the English curriculum roadmap.
type Topic struct {
	// Name uniquely identifies the topic. Lookup is by exact match.
	Name string

	// Tier is the roadmap stage the topic belongs to (A1 through C2).
	// Independent of the learner's current mastery.
	Tier string

	// Description is a short human-readable summary of the topic.
	Description string

	// Examples are practice phrases shown on the learning path.
	Examples []string
}

// FallbackTier, FallbackDescription are substituted by callers when a
// topic is not indexed, so a recommendation is always produced.
const (
	FallbackTier        = "A1"
	FallbackDescription = "Basics kickoff"
)

// Fallback returns the degraded curriculum entry for an unindexed topic.
func Fallback(name string) Topic {
	return Topic{
		Name:        name,
		Tier:        FallbackTier,
		Description: FallbackDescription,
	}
}
