package vocab

// Default returns a Store loaded with the built-in street-legacy catalog.
func Default() *Store {
	s, err := New(DefaultCatalog())
	if err != nil {
		// The built-in catalog is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return s
}

// DefaultCatalog returns the built-in catalog: the intents the in-game
// assistant understands plus the tables that drive normalization, typo
// matching and vectorization.
func DefaultCatalog() Catalog {
	return Catalog{
		Intents: []Intent{
			{
				ID:   "money_advice",
				Name: "Money Advice",
				Exemplars: []string{
					"how do i make money",
					"i need money fast",
					"best way to earn cash",
					"how can i get more paper",
					"need money right now",
					"i am broke and need cash",
					"what pays the most",
					"how do i get rich",
				},
				Keywords: map[string]float64{
					"money": 2, "cash": 2, "paper": 1.5, "bread": 1.5,
					"broke": 1.5, "earn": 1.5, "rich": 1.5, "pays": 1,
				},
			},
			{
				ID:   "crime_advice",
				Name: "Crime Advice",
				Exemplars: []string{
					"what crime should i do",
					"which job should i run",
					"best crime for a beginner",
					"is the heist worth it",
					"what crime pays the most",
					"should i rob the store",
					"easiest crime to pull off",
				},
				Keywords: map[string]float64{
					"crime": 2, "heist": 2, "rob": 2, "steal": 1.5,
					"crimes": 1.5, "robbery": 1.5,
				},
			},
			{
				ID:   "market_analysis",
				Name: "Market Analysis",
				Exemplars: []string{
					"what are the market prices",
					"how is the market today",
					"when should i sell my product",
					"are prices going up",
					"best time to buy supplies",
					"is product cheap right now",
					"should i hold or sell",
				},
				Keywords: map[string]float64{
					"market": 2, "prices": 2, "price": 2,
					"sell": 1.5, "buy": 1.5, "supplies": 1, "product": 1,
				},
			},
			{
				ID:   "heat_advice",
				Name: "Heat & Police",
				Exemplars: []string{
					"how do i lower my heat",
					"the cops are after me",
					"how do i avoid the police",
					"i am too hot right now",
					"how long until the heat drops",
					"police are watching me",
				},
				Keywords: map[string]float64{
					"heat": 2, "police": 2, "cops": 2,
					"wanted": 1.5, "jail": 1.5, "hide": 1,
				},
			},
			{
				ID:   "location_info",
				Name: "Locations",
				Exemplars: []string{
					"where should i go",
					"what is in the downtown area",
					"tell me about the docks",
					"which area is safest",
					"where can i find a dealer",
					"what spots are good for business",
				},
				Keywords: map[string]float64{
					"downtown": 2, "docks": 2, "area": 1.5,
					"where": 1, "spot": 1, "spots": 1, "place": 1,
				},
			},
			{
				ID:   "status_check",
				Name: "Status Check",
				Exemplars: []string{
					"how am i doing",
					"show me my stats",
					"what is my status",
					"what level am i",
					"how is my progress",
				},
				Keywords: map[string]float64{
					"stats": 2, "status": 2, "level": 1.5, "progress": 1.5,
				},
			},
			{
				ID:   "greeting",
				Name: "Greeting",
				Exemplars: []string{
					"hello",
					"hey there",
					"what is up",
					"yo",
					"good morning",
					"hey how is it going",
				},
				Keywords: map[string]float64{
					"hello": 2, "hey": 2, "yo": 2, "morning": 1, "sup": 2,
				},
			},
			{
				ID:   "help",
				Name: "Help",
				Exemplars: []string{
					"what can you do",
					"help me out",
					"how does this work",
					"what commands are there",
					"i do not understand",
				},
				Keywords: map[string]float64{
					"help": 2, "commands": 1.5, "work": 1, "understand": 1,
				},
			},
		},
		Clusters: map[string][]string{
			"money": {
				"money", "cash", "paper", "bread", "stack", "rich",
				"broke", "pays", "earn", "profit", "loot", "wealth",
			},
			"crime": {
				"crime", "crimes", "heist", "rob", "robbery", "steal",
				"job", "hustle", "scam", "beginner",
			},
			"police": {
				"police", "cops", "heat", "wanted", "jail", "arrest",
				"law", "hot",
			},
			"market": {
				"market", "price", "prices", "sell", "buy", "trade",
				"supplies", "product", "cheap", "hold",
			},
			"location": {
				"where", "area", "downtown", "docks", "place", "spot",
				"spots", "city", "street", "block", "business",
			},
			"time": {
				"now", "today", "soon", "when", "time", "fast", "quick",
				"long", "until",
			},
			"greeting": {
				"hello", "hey", "yo", "morning", "sup", "there",
			},
			"help": {
				"help", "commands", "work", "understand", "explain",
			},
			"status": {
				"stats", "status", "level", "progress", "rank", "doing",
			},
			"question": {
				"what", "how", "which", "who", "why", "should", "can",
			},
			"person": {
				"me", "my", "you", "dealer", "crew", "boss",
			},
			"action": {
				"make", "get", "find", "show", "tell", "go", "run",
				"need", "want", "avoid", "hide", "lower", "drops",
			},
			"degree": {
				"best", "most", "more", "good", "easy", "easiest",
				"safe", "safest", "worth",
			},
		},
		Importance: map[string]float64{
			// Domain-significant words.
			"heist": 2.5, "heat": 2.5,
			"crime": 2.2, "crimes": 2.2, "money": 2.2, "police": 2.2,
			"market": 2.2, "downtown": 2.0, "docks": 2.0,
			"cash": 2.0, "cops": 2.0, "rob": 2.0, "robbery": 2.0,
			"prices": 2.0, "price": 2.0, "stats": 2.0, "status": 2.0,
			"sell": 1.8, "buy": 1.8, "steal": 1.8, "broke": 1.8,
			"earn": 1.8, "wanted": 1.8, "hello": 1.8, "help": 1.8,
			"paper": 1.5, "bread": 1.5, "dealer": 1.5, "product": 1.5,
			"hey": 1.5, "yo": 1.5, "level": 1.5, "progress": 1.5,
			// Generic words are de-emphasized.
			"what": 0.4, "how": 0.4, "which": 0.4, "who": 0.4,
			"why": 0.4, "should": 0.4, "can": 0.4, "me": 0.3,
			"my": 0.3, "you": 0.3, "there": 0.3, "doing": 0.5,
		},
		Vocabulary: []string{
			// Common words come first: the typo corrector breaks distance
			// ties by first match, and these should win.
			"what", "how", "which", "who", "why", "should", "would",
			"could", "can", "do", "does", "did", "is", "are", "was",
			"the", "a", "an", "to", "for", "of", "and", "or", "not",
			"i", "am", "my", "me", "you", "your", "it", "this", "that",
			"right", "about", "with", "have", "out", "up", "going",
			"in", "on", "at", "by", "be", "if", "all", "too", "off",
			"way", "store", "pull", "after", "watching", "take", "know",
			"let", "will", "got", "everything", "secretly", "please",
			"thanks", "friend", "car", "home", "moment", "opinion",
			"before", "spend",
			// Cluster members are merged in automatically.
		},
		Slang: map[string]string{
			"dough":   "money",
			"guap":    "money",
			"cheddar": "money",
			"5-0":     "police",
			"popo":    "police",
			"po-po":   "police",
			"feds":    "police",
			"narc":    "police",
			"whip":    "car",
			"crib":    "home",
			"bro":     "friend",
			"fam":     "friend",
			"homie":   "friend",
			"cop":     "police",
		},
		Abbreviations: map[string]string{
			"rn":  "right now",
			"idk": "i do not know",
			"btw": "by the way",
			"u":   "you",
			"ur":  "your",
			"pls": "please",
			"plz": "please",
			"thx": "thanks",
			"atm": "at the moment",
			"wyd": "what are you doing",
			"lmk": "let me know",
			"imo": "in my opinion",
			"w":   "with",
			"b4":  "before",
		},
		Contractions: map[string]string{
			"can't":   "cannot",
			"won't":   "will not",
			"don't":   "do not",
			"didn't":  "did not",
			"doesn't": "does not",
			"isn't":   "is not",
			"ain't":   "is not",
			"i'm":     "i am",
			"i've":    "i have",
			"it's":    "it is",
			"what's":  "what is",
			"that's":  "that is",
			"there's": "there is",
			"you're":  "you are",
			"gonna":   "going to",
			"wanna":   "want to",
			"gotta":   "got to",
			"lemme":   "let me",
			"y'all":   "you all",
		},
		Idioms: []Idiom{
			{Phrase: "need that paper", Canonical: "need money"},
			{Phrase: "five finger discount", Canonical: "steal"},
			{Phrase: "lay low", Canonical: "hide"},
			{Phrase: "in the red", Canonical: "broke"},
			{Phrase: "heat is on", Canonical: "police are watching"},
			{Phrase: "make it rain", Canonical: "spend money"},
			{Phrase: "cash out", Canonical: "sell everything"},
			{Phrase: "what's good", Canonical: "hello"},
			{Phrase: "on the low", Canonical: "secretly"},
		},
	}
}
