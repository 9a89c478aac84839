package roadmap

import "testing"

func TestLookup(t *testing.T) {
	topic, ok := Lookup("Daily Routines")
	if !ok {
		t.Fatal("Lookup(Daily Routines) not found")
	}
	if topic.Tier != "A2" {
		t.Errorf("tier = %q, want A2", topic.Tier)
	}
	if topic.Description == "" {
		t.Error("description should not be empty")
	}
	if len(topic.Examples) == 0 {
		t.Error("examples should not be empty")
	}
}

func TestLookup_IsCaseSensitive(t *testing.T) {
	if _, ok := Lookup("daily routines"); ok {
		t.Error("lowercase name should not match")
	}
	if _, ok := Lookup("No Such Topic"); ok {
		t.Error("unknown name should not match")
	}
}

func TestFallback(t *testing.T) {
	f := Fallback("Klingon Small Talk")
	if f.Name != "Klingon Small Talk" {
		t.Errorf("name = %q, want the requested name", f.Name)
	}
	if f.Tier != FallbackTier {
		t.Errorf("tier = %q, want %q", f.Tier, FallbackTier)
	}
	if f.Description != FallbackDescription {
		t.Errorf("description = %q, want %q", f.Description, FallbackDescription)
	}
}

func TestDefaultTopic(t *testing.T) {
	d := DefaultTopic()
	if d.Name != "Greetings and Introductions" {
		t.Errorf("default topic = %q, want Greetings and Introductions", d.Name)
	}
	if d.Tier != "A1" {
		t.Errorf("default tier = %q, want A1", d.Tier)
	}
}

func TestNextTopic(t *testing.T) {
	next, err := NextTopic("Greetings and Introductions")
	if err != nil {
		t.Fatalf("NextTopic: %v", err)
	}
	if next.Name != "Fundamentals" {
		t.Errorf("next = %q, want Fundamentals", next.Name)
	}
}

func TestNextTopic_WrapsAround(t *testing.T) {
	all := AllTopics()
	last := all[len(all)-1]
	next, err := NextTopic(last.Name)
	if err != nil {
		t.Fatalf("NextTopic(%q): %v", last.Name, err)
	}
	if next.Name != all[0].Name {
		t.Errorf("after last topic got %q, want %q", next.Name, all[0].Name)
	}
}

func TestNextTopic_Unknown(t *testing.T) {
	if _, err := NextTopic("No Such Topic"); err == nil {
		t.Error("expected error for unindexed topic")
	}
}

func TestTiers(t *testing.T) {
	tiers := Tiers()
	want := []string{"A1", "A2", "B1", "B2", "C1", "C2"}
	if len(tiers) != len(want) {
		t.Fatalf("len(tiers) = %d, want %d", len(tiers), len(want))
	}
	for i, tier := range want {
		if tiers[i] != tier {
			t.Errorf("tiers[%d] = %q, want %q", i, tiers[i], tier)
		}
	}
}

func TestTopicsForTier(t *testing.T) {
	for _, tier := range Tiers() {
		topics := TopicsForTier(tier)
		if len(topics) == 0 {
			t.Errorf("tier %q has no topics", tier)
		}
		for _, topic := range topics {
			if topic.Tier != tier {
				t.Errorf("topic %q in tier %q has tier %q", topic.Name, tier, topic.Tier)
			}
		}
	}
	if got := TopicsForTier("Z9"); len(got) != 0 {
		t.Errorf("unknown tier returned %d topics", len(got))
	}
}

func TestAllTopics_ReturnsCopy(t *testing.T) {
	a := AllTopics()
	a[0].Name = "mutated"
	b := AllTopics()
	if b[0].Name == "mutated" {
		t.Error("AllTopics should not expose internal state")
	}
}

func TestTopicNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, topic := range AllTopics() {
		if seen[topic.Name] {
			t.Errorf("duplicate topic name %q", topic.Name)
		}
		seen[topic.Name] = true
	}
}
