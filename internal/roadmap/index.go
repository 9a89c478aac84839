package roadmap

import "fmt"

// index holds the curriculum with precomputed lookups.
// Built once at init from the seed and immutable afterwards.
type index struct {
	topics []Topic
	byName map[string]*Topic
	byTier map[string][]Topic
	tiers  []string
}

var idx *index

func init() {
	idx = buildIndex(seedTopics)
}

// buildIndex constructs the name and tier indices, preserving seed order.
func buildIndex(topics []Topic) *index {
	ix := &index{
		topics: topics,
		byName: make(map[string]*Topic, len(topics)),
		byTier: make(map[string][]Topic),
	}
	for i := range ix.topics {
		t := &ix.topics[i]
		ix.byName[t.Name] = t
		if _, seen := ix.byTier[t.Tier]; !seen {
			ix.tiers = append(ix.tiers, t.Tier)
		}
		ix.byTier[t.Tier] = append(ix.byTier[t.Tier], *t)
	}
	return ix
}

// Lookup returns the topic with the given name. Matching is exact and
// case-sensitive. ok is false when the topic is not indexed; callers are
// expected to degrade to Fallback rather than fail.
func Lookup(name string) (Topic, bool) {
	t, ok := idx.byName[name]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// AllTopics returns every topic in tier order.
func AllTopics() []Topic {
	out := make([]Topic, len(idx.topics))
	copy(out, idx.topics)
	return out
}

// Tiers returns the tier labels in curriculum order.
func Tiers() []string {
	out := make([]string, len(idx.tiers))
	copy(out, idx.tiers)
	return out
}

// TopicsForTier returns the topics of one tier in teaching order.
func TopicsForTier(tier string) []Topic {
	src := idx.byTier[tier]
	out := make([]Topic, len(src))
	copy(out, src)
	return out
}

// DefaultTopic is the starting topic for a fresh learner.
func DefaultTopic() Topic {
	return idx.topics[0]
}

// NextTopic returns the topic that follows name in curriculum order,
// wrapping to the first topic after the last. An error is returned when
// name is not indexed.
func NextTopic(name string) (Topic, error) {
	for i := range idx.topics {
		if idx.topics[i].Name == name {
			return idx.topics[(i+1)%len(idx.topics)], nil
		}
	}
	return Topic{}, fmt.Errorf("topic not in roadmap: %q", name)
}
