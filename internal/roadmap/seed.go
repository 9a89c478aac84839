package roadmap

// seedTopics is the static English curriculum, ordered by tier and then
// by teaching order within the tier. Loaded into the index at init.
var seedTopics = []Topic{
	// A1
	{
		Name:        "Greetings and Introductions",
		Tier:        "A1",
		Description: "Say hello, introduce yourself, and ask simple questions about others.",
		Examples: []string{
			"Hello! My name is Asha. What is your name?",
			"Nice to meet you.",
			"Where are you from?",
		},
	},
	{
		Name:        "Fundamentals",
		Tier:        "A1",
		Description: "The alphabet, numbers, days of the week, and core classroom phrases.",
		Examples: []string{
			"Today is Monday.",
			"Can you repeat that, please?",
			"I have two brothers and one sister.",
		},
	},
	{
		Name:        "Everyday Objects",
		Tier:        "A1",
		Description: "Name common objects at home, in school, and around town.",
		Examples: []string{
			"This is my backpack.",
			"The keys are on the table.",
		},
	},
	// A2
	{
		Name:        "Daily Routines",
		Tier:        "A2",
		Description: "Describe your day using the present simple and time expressions.",
		Examples: []string{
			"I wake up at seven and have breakfast with my family.",
			"She usually takes the bus to work.",
		},
	},
	{
		Name:        "Food and Ordering",
		Tier:        "A2",
		Description: "Order at a restaurant, talk about meals, and express likes and dislikes.",
		Examples: []string{
			"Could I have the tomato soup, please?",
			"I do not really like spicy food.",
		},
	},
	{
		Name:        "Past Experiences",
		Tier:        "A2",
		Description: "Talk about finished events with the past simple and common irregular verbs.",
		Examples: []string{
			"We went to the beach last weekend.",
			"Did you see the match yesterday?",
		},
	},
	// B1
	{
		Name:        "Grammar Expansion",
		Tier:        "B1",
		Description: "Perfect tenses, comparatives, and connectors for longer, clearer sentences.",
		Examples: []string{
			"I have lived here since 2019.",
			"The new library is much bigger than the old one.",
			"Although it was raining, we decided to walk.",
		},
	},
	{
		Name:        "Travel and Directions",
		Tier:        "B1",
		Description: "Plan a trip, ask for directions, and handle common travel situations.",
		Examples: []string{
			"How do I get to the railway station from here?",
			"We would like to check in, we booked a double room.",
		},
	},
	{
		Name:        "Opinions and Preferences",
		Tier:        "B1",
		Description: "Agree, disagree, and justify opinions politely.",
		Examples: []string{
			"In my opinion, the first plan makes more sense.",
			"I see your point, but I would rather wait.",
		},
	},
	// B2
	{
		Name:        "Storytelling",
		Tier:        "B2",
		Description: "Narrative tenses, sequencing, and keeping a listener engaged.",
		Examples: []string{
			"I had just closed the door when the phone rang.",
			"By the time we arrived, the show had already started.",
		},
	},
	{
		Name:        "Workplace English",
		Tier:        "B2",
		Description: "Meetings, emails, and reporting progress in a professional register.",
		Examples: []string{
			"I would like to schedule a quick call to discuss the draft.",
			"The report covers the main findings from the last quarter.",
		},
	},
	{
		Name:        "Conditionals and Hypotheticals",
		Tier:        "B2",
		Description: "Second and third conditionals for unreal and past-unreal situations.",
		Examples: []string{
			"If I had more time, I would learn to paint.",
			"If you had told me earlier, I could have helped.",
		},
	},
	// C1
	{
		Name:        "Debate and Persuasion",
		Tier:        "C1",
		Description: "Build an argument, concede points, and persuade with nuance.",
		Examples: []string{
			"While I concede the cost is high, the long-term benefits outweigh it.",
			"That argument rests on a questionable assumption.",
		},
	},
	{
		Name:        "Idioms and Collocations",
		Tier:        "C1",
		Description: "Natural-sounding word partnerships and common idiomatic expressions.",
		Examples: []string{
			"We need to bite the bullet and make a decision.",
			"The project is finally gaining momentum.",
		},
	},
	// C2
	{
		Name:        "Academic Writing",
		Tier:        "C2",
		Description: "Hedging, citation language, and cohesive academic paragraphs.",
		Examples: []string{
			"The evidence suggests a modest, though consistent, effect.",
			"This finding is broadly consistent with earlier work in the field.",
		},
	},
	{
		Name:        "Register and Nuance",
		Tier:        "C2",
		Description: "Shift tone across formal, neutral, and informal registers with precision.",
		Examples: []string{
			"Regrettably, we are unable to accommodate your request.",
			"No worries, it happens to the best of us.",
		},
	},
}
