package emotion

import (
	"regexp"
	"strings"
)

// intensityLevel groups lexicon terms that share an intensity weight.
type intensityLevel struct {
	weight float64
	terms  []string
}

const (
	weightHigh       = 1.0
	weightMediumHigh = 0.8
	weightMedium     = 0.6
	weightLow        = 0.4
)

var lexicon = map[string][]intensityLevel{
	Joy: {
		{weightHigh, []string{
			"ecstatic", "euphoric", "overjoyed", "elated", "jubilant", "thrilled",
			"exuberant", "exhilarated", "radiant", "glowing", "beaming", "gleeful",
			"rapturous", "blissful", "heavenly", "divine", "magnificent", "triumphant",
			"victorious", "celebratory", "festive", "joyous", "merry", "jolly",
			"flying high", "on cloud nine", "over the moon", "walking on air",
			"bursting with joy", "couldn't be happier", "best day ever",
			"living my best life", "pure happiness", "absolute bliss",
		}},
		{weightMediumHigh, []string{
			"happy", "delighted", "pleased", "cheerful", "content", "satisfied",
			"glad", "grateful", "thankful", "blessed", "fortunate", "lucky",
			"wonderful", "fantastic", "amazing", "great", "excellent", "superb",
			"lovely", "beautiful", "perfect", "ideal", "brilliant", "marvelous",
			"splendid", "terrific", "fabulous", "spectacular", "outstanding",
			"delightful", "charming", "pleasant", "enjoyable", "gratifying",
			"rewarding", "fulfilling", "heartwarming", "uplifting", "inspiring",
			"smile", "smiling", "grinning", "laughing", "giggling", "chuckling",
			"bright", "sunny", "glorious", "golden", "shining", "sparkling",
			"makes me happy", "fills me with joy", "brings me happiness",
		}},
		{weightMedium, []string{
			"good", "nice", "fine", "alright", "okay", "decent", "fair",
			"positive", "optimistic", "hopeful", "upbeat", "lighthearted",
			"carefree", "easygoing", "relaxed", "comfortable", "at ease",
			"peaceful", "calm", "serene", "tranquil", "harmonious",
			"sweet", "warm", "cozy", "homey", "welcoming", "friendly",
			"kind", "gentle", "tender", "loving", "caring", "affectionate",
			"amusing", "entertaining", "fun", "playful", "silly", "goofy",
			"relief", "relieved", "better", "improved", "recovering", "healing",
		}},
		{weightLow, []string{
			"contented", "peaceful", "settled", "stable", "balanced", "centered",
			"grounded", "composed", "collected", "level", "even", "steady",
			"mild pleasure", "slight happiness", "somewhat pleased", "fairly content",
		}},
	},
	Sadness: {
		{weightHigh, []string{
			"devastated", "heartbroken", "crushed", "shattered", "destroyed",
			"anguished", "tormented", "despairing", "hopeless", "helpless",
			"grief-stricken", "bereaved", "mourning", "grieving", "lamenting",
			"inconsolable", "distraught", "traumatized", "broken", "ruined",
			"torn apart", "ripped apart", "falling apart", "can't go on",
			"don't want to live", "life is meaningless", "world is ending",
			"unbearable pain", "drowning in sorrow", "consumed by grief",
			"lost everything", "nothing left", "completely empty", "totally broken",
			"soul-crushing", "life-shattering", "world-ending", "devastating blow",
		}},
		{weightMediumHigh, []string{
			"depressed", "depression", "miserable", "wretched", "woeful",
			"melancholy", "melancholic", "sorrowful", "mournful", "doleful",
			"gloomy", "dismal", "dreary", "bleak", "dark", "black", "gray",
			"forlorn", "dejected", "downcast", "crestfallen", "despondent",
			"low", "down", "blue", "glum", "morose", "sullen", "somber",
			"tearful", "weeping", "crying", "sobbing", "bawling", "wailing",
			"heavy-hearted", "broken-hearted", "heavy heart", "aching heart",
			"can't stop crying", "tears won't stop", "crying myself to sleep",
			"feel like crying", "want to cry", "need to cry", "holding back tears",
		}},
		{weightMedium, []string{
			"sad", "unhappy", "upset", "disappointed", "let down", "discouraged",
			"disheartened", "dismayed", "downhearted", "dispirited",
			"hurt", "wounded", "pained", "aching", "suffering", "hurting",
			"lonely", "alone", "isolated", "abandoned", "forsaken", "forgotten",
			"empty", "hollow", "void", "vacant", "barren", "desolate",
			"numb", "deadened", "lifeless", "spiritless", "apathetic",
			"tired", "weary", "worn out", "exhausted", "drained", "depleted",
			"miss", "missing", "longing", "yearning", "pining", "aching for",
			"regret", "regretful", "remorseful", "guilty", "ashamed",
			"loss", "losing", "lost", "gone", "left", "departed", "passed away",
		}},
		{weightLow, []string{
			"wistful", "nostalgic", "pensive", "reflective", "contemplative",
			"subdued", "muted", "quiet", "withdrawn", "reserved", "distant",
			"resigned", "accepting", "surrendering", "giving up",
			"sigh", "sighing", "heavy sigh", "deep breath",
			"slightly sad", "a bit down", "somewhat unhappy", "little blue",
		}},
	},
	Anger: {
		{weightHigh, []string{
			"furious", "enraged", "livid", "incensed", "infuriated", "irate",
			"seething", "raging", "fuming", "boiling", "volcanic", "explosive",
			"outraged", "incandescent", "apoplectic", "ballistic", "berserk",
			"seeing red", "blood boiling", "losing my mind", "about to explode",
			"want to scream", "want to hit something", "want to break things",
			"can't control my anger", "blinded by rage", "consumed by fury",
			"absolutely livid", "utterly furious", "completely enraged",
			"violently angry", "dangerously angry", "murderous rage",
		}},
		{weightMediumHigh, []string{
			"angry", "mad", "pissed", "pissed off", "ticked off", "fed up",
			"heated", "inflamed", "hot-headed", "hot-tempered", "fiery",
			"aggravated", "exasperated", "infuriated", "provoked", "goaded",
			"resentful", "bitter", "hostile", "antagonistic", "combative",
			"aggressive", "confrontational", "belligerent", "pugnacious",
			"indignant", "offended", "insulted", "affronted", "slighted",
			"steaming", "flustered", "worked up", "riled up", "fired up",
			"makes me angry", "pisses me off", "drives me crazy", "makes me mad",
		}},
		{weightMedium, []string{
			"annoyed", "irritated", "frustrated", "bothered", "irked", "vexed",
			"agitated", "ruffled", "perturbed", "displeased", "dissatisfied",
			"cross", "grumpy", "cranky", "grouchy", "crabby", "surly",
			"moody", "temperamental", "snappy", "short-tempered", "impatient",
			"unjust", "unfair", "wrong", "bullshit", "ridiculous", "absurd",
			"disgusting behavior", "unacceptable", "intolerable", "outrageous",
			"disrespect", "disrespected", "insulted", "degraded", "humiliated",
		}},
		{weightLow, []string{
			"upset", "miffed", "put off", "put out", "disgruntled",
			"disappointed", "let down", "dissatisfied", "unhappy",
			"testy", "touchy", "sensitive", "defensive",
			"slightly annoyed", "a bit irritated", "somewhat frustrated",
		}},
	},
	Fear: {
		{weightHigh, []string{
			"terrified", "petrified", "horrified", "traumatized", "terrorized",
			"panicked", "panic-stricken", "terror-stricken", "paralyzed with fear",
			"frozen", "immobilized", "rooted to the spot", "can't move",
			"nightmare", "nightmarish", "hellish", "harrowing", "horrifying",
			"bone-chilling", "blood-curdling", "hair-raising", "spine-tingling",
			"scared to death", "frightened to death", "scared out of my mind",
			"heart pounding", "heart racing", "can't breathe", "gasping",
			"dread", "dreading", "impending doom", "sense of doom",
			"going to die", "fear for my life", "life in danger", "mortal fear",
		}},
		{weightMediumHigh, []string{
			"scared", "afraid", "frightened", "fearful", "scared stiff",
			"alarmed", "startled", "shocked", "shaken", "rattled", "unnerved",
			"threatened", "endangered", "at risk", "in danger", "unsafe",
			"vulnerable", "exposed", "unprotected", "defenseless", "helpless",
			"insecure", "uncertain", "unsure", "doubtful", "hesitant",
			"timid", "timorous", "meek", "shy", "bashful", "cowering",
			"quaking", "trembling", "shaking", "shivering", "quivering",
			"terrifying", "scary", "spooky", "creepy", "eerie", "sinister",
		}},
		{weightMedium, []string{
			"worried", "concerned", "troubled", "bothered", "disturbed",
			"apprehensive", "uneasy", "unsettled", "uncomfortable", "edgy",
			"nervous", "jittery", "jumpy", "skittish", "twitchy", "on edge",
			"tense", "strained", "stressed", "pressured", "overwhelmed",
			"phobia", "phobic", "irrational fear", "intense fear",
			"nightmare", "bad dream", "haunted", "plagued", "tormented",
			"paranoid", "suspicious", "distrustful", "wary", "guarded",
		}},
		{weightLow, []string{
			"cautious", "careful", "vigilant", "watchful", "alert",
			"hesitant", "reluctant", "unwilling", "resistant",
			"slightly worried", "a bit concerned", "somewhat nervous",
		}},
	},
	Love: {
		{weightHigh, []string{
			"adore", "adoring", "worship", "worshiping", "idolize",
			"devoted", "devoted to", "dedication", "commitment", "loyalty",
			"passionate", "passionately in love", "burning passion", "intense love",
			"infatuated", "smitten", "enamored", "besotted", "captivated",
			"enchanted", "spellbound", "mesmerized", "enthralled", "bewitched",
			"madly in love", "deeply in love", "head over heels", "crazy about",
			"can't live without", "complete me", "my everything", "my world",
			"soul mate", "true love", "love of my life", "meant to be",
			"unconditional love", "eternal love", "forever love", "everlasting",
			"my heart belongs to", "gave my heart", "stole my heart",
		}},
		{weightMediumHigh, []string{
			"love", "loving", "in love", "fall in love", "fell in love",
			"beloved", "lover", "sweetheart", "darling", "honey", "dear",
			"baby", "babe", "angel", "treasure", "precious", "priceless",
			"cherish", "cherished", "treasured", "valued", "prized",
			"affection", "affectionate", "tender", "tenderness", "warmth",
			"devotion", "devoted", "faithful", "loyal", "true", "steadfast",
			"caring", "nurturing", "protective", "supportive", "understanding",
			"intimate", "intimacy", "close", "closeness", "connection", "bond",
			"romance", "romantic", "romantically", "candlelit", "moonlight",
			"kiss", "kissing", "embrace", "embracing", "hug", "hugging",
			"cuddle", "cuddling", "snuggle", "snuggling", "hold", "holding",
		}},
		{weightMedium, []string{
			"fond", "fondness", "attached", "attachment", "connected",
			"attraction", "attracted", "drawn to", "pulled toward",
			"admire", "admiration", "respect", "esteem", "regard",
			"appreciate", "appreciation", "grateful for", "thankful for",
			"endearment", "endearing", "sweet", "sweetness", "cute",
			"gentle", "soft", "kind", "kindness", "compassion", "empathy",
			"sentimental", "heartfelt", "sincere", "genuine", "authentic",
			"chemistry", "spark", "connection", "vibe", "energy",
			"miss you", "missing you", "think of you", "thinking of you",
		}},
		{weightLow, []string{
			"like", "liking", "enjoy", "enjoying", "pleased with",
			"interest", "interested", "curious about", "intrigued by",
			"crush", "crushing", "fancy", "fancy you", "into you",
			"somewhat fond", "slightly attached", "a bit attracted",
		}},
	},
	Anxiety: {
		{weightHigh, []string{
			"panic", "panicking", "panic attack", "full-blown panic",
			"overwhelmed", "drowning", "suffocating", "can't breathe",
			"spiraling", "spinning out", "losing control", "out of control",
			"breakdown", "breaking down", "falling apart", "coming undone",
			"paralyzed", "frozen", "trapped", "stuck", "cornered", "boxed in",
			"racing thoughts", "mind racing", "can't think straight", "foggy",
			"hyperventilating", "heart pounding", "chest tight", "dizzy",
			"catastrophizing", "worst case scenario", "everything's going wrong",
			"can't cope", "can't handle", "too much", "unbearable",
			"terrifying anxiety", "crippling anxiety", "debilitating anxiety",
		}},
		{weightMediumHigh, []string{
			"anxious", "anxiety", "stressed", "stressed out", "stress",
			"tense", "tension", "wound up", "tight", "rigid", "stiff",
			"on edge", "edge of my seat", "walking on eggshells", "treading carefully",
			"frazzled", "frantic", "frenetic", "feverish", "hectic",
			"desperate", "desperation", "urgency", "pressing", "critical",
			"pressured", "pressure", "burdened", "burden", "weight", "heavy",
			"weighed down", "crushed", "squeezed", "compressed", "constricted",
			"dread", "dreading", "impending", "looming", "approaching doom",
			"sleepless", "insomnia", "can't sleep", "lying awake", "tossing turning",
			"sweating", "shaking", "trembling", "quivering", "jittery",
		}},
		{weightMedium, []string{
			"nervous", "nervousness", "worried", "worry", "worrying",
			"concerned", "concern", "uneasy", "restless", "fidgety",
			"agitated", "unsettled", "disturbed", "troubled", "bothered",
			"preoccupied", "distracted", "scattered", "unfocused", "lost",
			"uncertain", "uncertainty", "unsure", "doubtful", "questioning",
			"hesitant", "hesitation", "reluctant", "unwilling", "resistant",
			"apprehensive", "wary", "cautious", "guarded", "careful",
			"butterflies", "stomach churning", "nauseous", "queasy", "sick",
			"overthinking", "overanalyzing", "ruminating", "obsessing", "fixating",
		}},
		{weightLow, []string{
			"slightly anxious", "a bit nervous", "somewhat worried",
			"mildly concerned", "little uneasy", "touch of anxiety",
			"edge", "edgy", "antsy", "jumpy", "twitchy",
		}},
	},
	Excitement: {
		{weightHigh, []string{
			"ecstatic", "euphoric", "exhilarated", "thrilled", "electrified",
			"pumped", "pumped up", "hyped", "hyped up", "amped", "amped up",
			"stoked", "psyched", "fired up", "revved up", "charged up",
			"buzzing", "electric", "explosive", "dynamic", "kinetic",
			"adrenaline rush", "adrenaline pumping", "blood pumping",
			"can't contain myself", "bursting with excitement", "beside myself",
			"on fire", "lit", "fired up", "burning with excitement",
			"incredible", "unbelievable", "mind-blowing", "jaw-dropping",
			"best thing ever", "amazing opportunity", "dream come true",
		}},
		{weightMediumHigh, []string{
			"excited", "excitement", "enthusiastic", "enthusiasm", "zeal",
			"eager", "eagerness", "keen", "passionate", "passion", "fervor",
			"energized", "energy", "vigor", "vitality", "vibrancy",
			"animated", "lively", "spirited", "vivacious", "bubbly",
			"effervescent", "sparkling", "radiant", "glowing", "beaming",
			"dynamic", "vibrant", "exuberant", "ebullient", "bouncy",
			"can't wait", "counting down", "anticipation", "looking forward",
			"thrilling", "exhilarating", "electrifying", "invigorating",
		}},
		{weightMedium, []string{
			"interested", "interest", "curious", "curiosity", "intrigued",
			"engaged", "engagement", "involved", "invested", "committed",
			"motivated", "motivation", "driven", "determined", "focused",
			"inspired", "inspiration", "stimulated", "aroused", "awakened",
			"alert", "attentive", "aware", "conscious", "mindful",
			"ready", "prepared", "primed", "set", "geared up",
		}},
		{weightLow, []string{
			"anticipating", "hopeful", "optimistic", "positive",
			"upbeat", "cheerful", "bright", "sunny",
			"slightly excited", "a bit eager", "somewhat interested",
		}},
	},
	Surprise: {
		{weightHigh, []string{
			"shocked", "stunned", "astounded", "astonished", "amazed",
			"flabbergasted", "dumbfounded", "speechless", "gobsmacked",
			"mind-blown", "blown away", "floored", "staggered", "stupefied",
			"awestruck", "thunderstruck", "shell-shocked", "bowled over",
			"jaw dropped", "eyes wide", "can't believe it", "unbelievable",
			"never expected", "didn't see coming", "out of nowhere",
			"completely unexpected", "total surprise", "utter shock",
		}},
		{weightMediumHigh, []string{
			"surprised", "surprise", "startled", "jolted", "jarred",
			"taken aback", "caught off guard", "caught by surprise",
			"blindsided", "sideswiped", "ambushed", "unprepared",
			"unexpected", "unforeseen", "unanticipated", "unpredicted",
			"sudden", "abrupt", "sharp", "quick", "rapid", "swift",
			"wow", "whoa", "oh my god", "omg", "what", "no way",
		}},
		{weightMedium, []string{
			"curious", "wondering", "puzzled", "perplexed", "confused",
			"bewildered", "baffled", "mystified", "confounded", "stumped",
			"intrigued", "fascinated", "captivated", "entranced", "absorbed",
			"discovery", "revelation", "epiphany", "realization", "insight",
		}},
		{weightLow, []string{
			"noticed", "realized", "discovered", "found", "learned",
			"understood", "figured out", "uncovered", "revealed",
			"slightly surprised", "a bit unexpected", "somewhat startled",
		}},
	},
	Disgust: {
		{weightHigh, []string{
			"revolted", "repulsed", "repelled", "sickened", "nauseated",
			"appalled", "horrified", "disgusted", "abhorred", "detested",
			"loathed", "despised", "hated", "can't stand", "makes me sick",
			"want to vomit", "want to throw up", "gag", "gagging", "retching",
			"stomach turning", "bile rising", "makes my skin crawl",
			"utterly repulsive", "absolutely disgusting", "completely vile",
			"morally reprehensible", "ethically wrong", "deeply offensive",
		}},
		{weightMediumHigh, []string{
			"gross", "grossed out", "nasty", "foul", "vile", "repugnant",
			"offensive", "obnoxious", "repellent", "distasteful", "unpleasant",
			"rotten", "putrid", "rank", "stinking", "reeking", "fetid",
			"filthy", "dirty", "grimy", "slimy", "squalid", "seedy",
			"sleazy", "creepy", "skeevy", "sketchy", "shady", "dodgy",
			"revolting", "repulsive", "hideous", "grotesque", "monstrous",
		}},
		{weightMedium, []string{
			"dislike", "don't like", "disapprove", "disapproval", "disdain",
			"averse", "aversion", "opposed", "against", "anti",
			"turned off", "put off", "off-putting", "unappetizing",
			"uncomfortable", "uneasy", "bothered", "disturbed",
			"wrong", "bad", "inappropriate", "improper", "unsuitable",
			"tacky", "tasteless", "vulgar", "crude", "crass", "coarse",
		}},
		{weightLow, []string{
			"unimpressed", "underwhelmed", "disappointed", "let down",
			"dissatisfied", "displeased", "unhappy", "not happy",
			"slightly disgusted", "a bit gross", "somewhat off-putting",
		}},
	},
	Neutral: {
		{weightHigh, []string{
			"indifferent", "apathetic", "uninterested", "disinterested",
			"detached", "disconnected", "removed", "distant", "aloof",
			"uninvolved", "uncommitted", "disengaged", "withdrawn",
			"impartial", "neutral", "objective", "unbiased", "balanced",
			"don't care", "whatever", "doesn't matter", "who cares",
			"meh", "so-so", "mediocre", "neither here nor there",
		}},
		{weightMediumHigh, []string{
			"neutral", "balanced", "even", "level", "steady", "stable",
			"constant", "consistent", "regular", "routine", "standard",
			"normal", "typical", "usual", "ordinary", "common", "average",
			"mundane", "everyday", "humdrum", "run-of-the-mill",
			"unremarkable", "unexceptional", "nondescript", "plain",
		}},
		{weightMedium, []string{
			"okay", "fine", "alright", "all right", "decent", "fair",
			"moderate", "medium", "middling", "adequate", "sufficient",
			"acceptable", "tolerable", "bearable", "passable",
			"nothing special", "not bad", "could be worse",
		}},
		{weightLow, []string{
			"calm", "peaceful", "quiet", "still", "tranquil", "serene",
			"placid", "composed", "collected", "poised", "centered",
			"level-headed", "rational", "reasonable", "sensible", "practical",
			"matter-of-fact", "straightforward", "simple", "basic",
		}},
	},
}

// intensifiers scale the weight of an emotion word when they appear
// within the previous three tokens.
var intensifiers = map[string]float64{
	"very":            1.3,
	"extremely":       1.5,
	"incredibly":      1.5,
	"absolutely":      1.4,
	"completely":      1.4,
	"totally":         1.4,
	"utterly":         1.5,
	"thoroughly":      1.3,
	"deeply":          1.4,
	"profoundly":      1.5,
	"intensely":       1.5,
	"overwhelmingly":  1.6,
	"unbearably":      1.6,
	"impossibly":      1.5,
	"unbelievably":    1.5,
	"ridiculously":    1.4,
	"insanely":        1.5,
	"crazy":           1.3,
	"super":           1.2,
	"really":          1.2,
	"quite":           1.1,
	"rather":          1.1,
	"pretty":          1.1,
	"fairly":          1.05,
	"somewhat":        0.8,
	"slightly":        0.6,
	"barely":          0.5,
	"hardly":          0.5,
	"a little":        0.7,
	"a bit":           0.7,
	"kind of":         0.8,
	"sort of":         0.8,
}

// negations dampen an emotion word when they appear within the previous three tokens.
var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"none": true, "nobody": true, "nothing": true, "nowhere": true,
	"hardly": true, "scarcely": true, "barely": true, "n't": true,
	"without": true, "lack": true,
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// AnalyzeLexicon scores text against the emotion lexicon with context awareness:
// intensifiers amplify nearby emotion words, negations dampen them to 30%.
// Scores are normalized to sum to 1; a text with no matches scores neutral 1.0.
func AnalyzeLexicon(text string) map[string]float64 {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	scores := make(map[string]float64, len(Emotions))
	for _, e := range Emotions {
		scores[e] = 0.0
	}

	for i, word := range words {
		for emo, levels := range lexicon {
			for _, level := range levels {
				if !matchesAny(word, level.terms) {
					continue
				}
				score := level.weight

				multiplier := 1.0
				for j := max(0, i-3); j < i; j++ {
					if m, ok := intensifiers[words[j]]; ok {
						multiplier *= m
					}
				}

				negated := false
				for j := max(0, i-3); j < i; j++ {
					if negations[words[j]] || strings.HasSuffix(words[j], "n't") {
						negated = true
						break
					}
				}

				if negated {
					score *= 0.3
				} else {
					score *= multiplier
				}
				if score > 1.0 {
					score = 1.0
				}
				scores[emo] += score
			}
		}
	}

	total := 0.0
	for _, v := range scores {
		total += v
	}
	if total > 0 {
		for k, v := range scores {
			scores[k] = v / total
		}
	} else {
		scores[Neutral] = 1.0
	}

	return scores
}

func matchesAny(word string, terms []string) bool {
	for _, term := range terms {
		if word == term || strings.Contains(word, term) {
			return true
		}
	}
	return false
}

// lexiconAnalysis wraps lexicon scores into a full Analysis with a derived polarity.
func lexiconAnalysis(text string) *Analysis {
	scores := AnalyzeLexicon(text)

	pos := scores[Joy] + scores[Love] + scores[Excitement]
	neg := scores[Sadness] + scores[Anger] + scores[Fear] + scores[Anxiety] + scores[Disgust]

	polarity := 0.0
	if pos+neg > 0 {
		polarity = (pos - neg) / (pos + neg)
	}

	a := fromScores(scores, polarity)
	a.Source = SourceLexicon
	return a
}
