// Package category infers an article category from free text by scoring
// it against a fixed keyword taxonomy.
package category

import "strings"

// Fallback is returned when no category scores above the threshold.
const Fallback = "General"

// minScore is the exclusive threshold a category must beat to win.
const minScore = 2

type entry struct {
	name     string
	keywords []string
}

// taxonomy is the fixed category table. Order matters: ties keep the
// earliest entry, so the slice order is part of the observable contract.
// Immutable after init; safe for unsynchronized concurrent reads.
var taxonomy = []entry{
	{"Technology", []string{
		"tech", "software", "code", "app", "ai", "machine learning", "data", "digital", "cyber",
		"algorithm", "programming", "developer", "website", "internet", "cloud", "server", "database",
		"api", "framework", "javascript", "python", "react", "node", "typescript", "frontend", "backend",
		"full stack", "devops", "kubernetes", "docker", "microservices", "automation", "integration",
		"mobile app", "ios", "android", "web development", "ux", "ui", "design system", "responsive",
		"gpu", "cpu", "processor", "hardware", "semiconductor", "chip", "computing", "quantum computing",
		"blockchain", "cryptocurrency", "web3", "nft", "smart contract", "solidity", "ethereum",
		"cybersecurity", "encryption", "hacking", "vulnerability", "security", "firewall", "vpn",
		"artificial intelligence", "neural network", "deep learning", "nlp", "computer vision",
		"robotics", "iot", "internet of things", "iot devices", "sensors",
		"startup", "venture capital", "funding", "seed round", "series a", "ipo",
		"gpu cluster", "training model", "inference", "transformer", "llm", "large language model",
	}},
	{"Business", []string{
		"business", "startup", "company", "market", "economy", "finance", "investment", "ceo",
		"entrepreneur", "corporate", "enterprise", "sales", "marketing", "revenue", "profit",
		"earnings", "stock", "shares", "shareholder", "acquisition", "merger", "m&a", "deal",
		"venture", "angel investor", "founder", "co-founder", "board member", "executive",
		"strategy", "business model", "monetization", "growth", "expansion", "scaling",
		"customer", "client", "contract", "negotiation", "partnership", "collaboration",
		"supply chain", "logistics", "manufacturing", "production", "operations", "efficiency",
		"leadership", "management", "team", "culture", "diversity", "inclusion",
		"bankruptcy", "debt", "loan", "credit", "financial health", "cash flow",
		"market share", "competitive advantage", "innovation", "disruption", "industry",
		"retail", "ecommerce", "consumer", "b2b", "b2c", "saas", "subscription",
	}},
	{"Science", []string{
		"science", "research", "study", "discovery", "experiment", "scientist", "biology",
		"physics", "chemistry", "mathematics", "journal", "peer review", "hypothesis",
		"data analysis", "methodology", "results", "conclusion", "findings", "evidence",
		"lab", "laboratory", "test", "trial", "observation", "measurement",
		"astronomy", "space", "planet", "star", "galaxy", "universe", "cosmos",
		"quantum", "relativity", "gravity", "energy", "particle", "atom", "molecule",
		"evolution", "genetics", "dna", "chromosome", "protein", "enzyme", "mutation",
		"ecology", "environment", "climate", "ecosystem", "species", "biodiversity",
		"geology", "earth", "rock", "mineral", "fossil", "paleontology", "tectonic",
		"neuroscience", "brain", "neurons", "cognition", "behavior", "psychology",
		"microbiology", "bacteria", "virus", "pathogen", "infection", "immunity",
		"pharmaceutical", "drug", "treatment", "clinical trial", "therapy", "cure",
	}},
	{"Politics", []string{
		"politics", "government", "election", "congress", "senate", "president", "policy",
		"vote", "voter", "campaign", "candidate", "political party", "democrat", "republican",
		"legislation", "law", "bill", "statute", "regulation", "rule", "judicial",
		"parliament", "minister", "prime minister", "parliament member", "mp", "representative",
		"diplomat", "embassy", "international", "treaty", "agreement", "negotiation",
		"sanctions", "tariff", "trade", "commerce", "border", "immigration",
		"justice", "court", "judge", "attorney", "legal", "trial", "verdict",
		"protest", "demonstration", "activist", "movement", "civil rights", "equality",
		"corruption", "scandal", "investigation", "accountability", "transparency",
		"healthcare policy", "education policy", "environmental policy", "tax policy",
		"geopolitics", "conflict", "war", "military", "defense", "alliance",
		"voter registration", "polling", "debate", "campaign finance", "lobbying",
	}},
	{"Health", []string{
		"health", "medical", "doctor", "disease", "medicine", "hospital", "wellness",
		"mental health", "depression", "anxiety", "therapy", "psychiatrist", "psychologist",
		"fitness", "exercise", "diet", "nutrition", "calories", "protein", "carbs",
		"weight loss", "weight gain", "metabolism", "obesity", "diabetes", "heart disease",
		"cancer", "treatment", "chemotherapy", "radiation", "surgery", "procedure",
		"vaccine", "vaccination", "immunization", "antibody", "immune system",
		"pandemic", "epidemic", "outbreak", "infection", "virus", "bacteria", "covid",
		"sleep", "insomnia", "fatigue", "energy", "stress",
		"addiction", "substance abuse", "recovery", "rehab", "treatment facility",
		"pregnancy", "birth", "prenatal", "postpartum", "pediatric", "children",
		"elderly", "aging", "dementia", "alzheimer", "parkinson", "stroke",
		"pain", "chronic pain", "arthritis", "inflammation", "autoimmune",
		"dermatology", "skin", "acne", "psoriasis", "eczema",
		"ophthalmology", "eye", "vision", "blindness", "laser", "glasses",
		"dentistry", "dental", "teeth", "cavity", "orthodontic", "braces",
	}},
	{"Sports", []string{
		"sports", "game", "team", "player", "coach", "championship", "season", "league",
		"football", "basketball", "baseball", "soccer", "hockey", "tennis", "golf",
		"rugby", "cricket", "volleyball", "badminton", "table tennis", "ping pong",
		"nfl", "nba", "mlb", "nhl", "mls", "nascar", "f1", "formula 1",
		"olympics", "paralympics", "world cup", "super bowl", "world series",
		"athlete", "professional", "amateur", "college", "high school", "youth",
		"injury", "recovery", "rehabilitation", "physical therapy", "training",
		"stats", "score", "win", "loss", "draw", "playoff", "tournament",
		"draft", "trade", "contract", "salary cap", "free agency", "roster",
		"fan", "supporter", "attendance", "ticket", "stadium", "arena",
		"esports", "gaming", "competitive", "streamer", "twitch",
		"boxing", "mma", "ufc", "wrestling", "martial arts", "karate", "judo",
		"track and field", "swimming", "diving", "gymnastics", "rhythmic", "figure skating",
		"skiing", "snowboarding", "ice skating", "curling", "winter sports",
	}},
	{"Entertainment", []string{
		"entertainment", "movie", "film", "cinema", "actor", "actress", "director",
		"television", "tv", "show", "episode", "series", "netflix", "hulu", "disney+",
		"music", "song", "album", "artist", "singer", "band", "concert", "festival",
		"celebrity", "hollywood", "bollywood", "blockbuster", "award", "oscars",
		"grammy", "emmy", "golden globe", "nomination", "comedy", "drama", "action",
		"thriller", "horror", "romance", "sci-fi", "animation", "anime", "cartoon",
		"cgi", "vfx", "special effects", "streaming", "download", "subscription",
		"review", "critic", "rating", "imdb", "rotten tomatoes", "metacritic",
		"podcast", "audio", "listener", "host", "guest", "interview",
		"gaming", "video game", "console", "pc", "playstation", "xbox", "nintendo",
		"esports", "streamer", "twitch", "youtube", "music video", "guitarist", "singer-songwriter",
	}},
	{"World", []string{
		"world", "international", "global", "news", "breaking news", "headline",
		"country", "nation", "state", "region", "continent", "geography",
		"asia", "europe", "america", "africa", "australia", "middle east",
		"united states", "united kingdom", "france", "germany", "russia", "china", "india", "japan",
		"culture", "tradition", "customs", "language", "religion", "belief",
		"humanitarian", "charity", "nonprofit", "aid", "disaster relief", "refugee",
		"environmental", "climate change", "global warming", "pollution", "sustainability",
		"crisis", "emergency", "disaster", "earthquake", "flood", "hurricane", "tsunami",
		"travel", "tourism", "destination", "hotel", "flight", "vacation", "resort",
		"immigration", "emigration", "visa", "border", "citizenship", "passport",
		"trade", "export", "import", "tariff", "economy", "commerce", "supply chain",
	}},
	{"Education", []string{
		"education", "school", "student", "teacher", "professor", "instructor",
		"university", "college", "academy", "institute", "campus", "classroom",
		"course", "class", "lesson", "curriculum", "subject", "major", "minor",
		"exam", "test", "quiz", "grade", "gpa", "transcript", "diploma",
		"degree", "bachelor", "master", "phd", "doctorate", "certification",
		"scholarship", "grant", "loan", "financial aid", "tuition", "fee",
		"online learning", "distance education", "e-learning", "virtual classroom",
		"stem", "math", "science", "engineering", "computer science", "programming",
		"arts", "humanities", "literature", "history", "philosophy", "languages",
		"administration", "student life", "campus culture", "extracurricular",
		"research", "academic", "publication", "peer review", "thesis",
	}},
	{"Lifestyle", []string{
		"lifestyle", "fashion", "style", "clothing", "designer", "brand", "luxury",
		"beauty", "skincare", "makeup", "cosmetics", "hair", "salon", "grooming",
		"home", "interior design", "decoration", "furniture", "real estate", "property",
		"cooking", "recipe", "food", "cuisine", "restaurant", "chef", "dining",
		"travel", "tourism", "destination", "hotel", "resort", "vacation",
		"relationships", "dating", "marriage", "family", "parenting", "children",
		"hobbies", "interests", "collectibles", "crafts", "diy", "maker",
		"pet", "dog", "cat", "animal", "veterinary", "pet care",
		"wellness", "spa", "meditation", "yoga", "mindfulness", "relaxation",
		"automotive", "car", "truck", "motorcycle", "vehicle", "electric car", "ev",
	}},
}

// Names returns the category names in table order, without the fallback.
func Names() []string {
	out := make([]string, len(taxonomy))
	for i, e := range taxonomy {
		out[i] = e.name
	}
	return out
}

// Classify scores title, subtitle and body against the taxonomy and
// returns the best category, or Fallback when nothing scores above the
// threshold. Keyword hits in the title count 3, subtitle 2, body 1.
// Deterministic: identical inputs always yield identical output.
func Classify(title, body, subtitle string) string {
	lowerTitle := strings.ToLower(title)
	lowerSubtitle := strings.ToLower(subtitle)
	lowerBody := strings.ToLower(body)

	best := Fallback
	bestScore := 0

	for _, e := range taxonomy {
		score := 0
		for _, kw := range e.keywords {
			if strings.Contains(lowerTitle, kw) {
				score += 3
			}
			if lowerSubtitle != "" && strings.Contains(lowerSubtitle, kw) {
				score += 2
			}
			if strings.Contains(lowerBody, kw) {
				score += 1
			}
		}
		if score > bestScore {
			bestScore = score
			best = e.name
		}
	}

	if bestScore > minScore {
		return best
	}
	return Fallback
}
