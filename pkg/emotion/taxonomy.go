package emotion

// Canonical emotion labels tracked for every journal entry.
const (
	Joy        = "joy"
	Sadness    = "sadness"
	Anger      = "anger"
	Fear       = "fear"
	Surprise   = "surprise"
	Disgust    = "disgust"
	Neutral    = "neutral"
	Love       = "love"
	Anxiety    = "anxiety"
	Excitement = "excitement"
)

// Emotions lists every tracked emotion in canonical order.
var Emotions = []string{
	Joy, Sadness, Anger, Fear, Surprise,
	Disgust, Neutral, Love, Anxiety, Excitement,
}

// Color is an RGB triple used by the visualization renderer.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Colors maps each emotion to its signature color.
var Colors = map[string]Color{
	Joy:        {255, 215, 0},
	Sadness:    {65, 105, 225},
	Anger:      {220, 20, 60},
	Fear:       {139, 0, 139},
	Surprise:   {255, 99, 71},
	Disgust:    {85, 107, 47},
	Neutral:    {128, 128, 128},
	Love:       {255, 105, 180},
	Anxiety:    {147, 112, 219},
	Excitement: {255, 140, 0},
}

// IsValid reports whether name is one of the tracked emotions.
func IsValid(name string) bool {
	for _, e := range Emotions {
		if e == name {
			return true
		}
	}
	return false
}

// Analysis holds the full per-emotion score breakdown of a single text.
type Analysis struct {
	Joy        float64 `json:"joy"`
	Sadness    float64 `json:"sadness"`
	Anger      float64 `json:"anger"`
	Fear       float64 `json:"fear"`
	Surprise   float64 `json:"surprise"`
	Disgust    float64 `json:"disgust"`
	Neutral    float64 `json:"neutral"`
	Love       float64 `json:"love"`
	Anxiety    float64 `json:"anxiety"`
	Excitement float64 `json:"excitement"`

	PrimaryEmotion      string  `json:"primary_emotion"`
	PrimaryEmotionScore float64 `json:"primary_emotion_score"`
	SentimentPolarity   float64 `json:"sentiment_polarity"`

	// Source records which analysis path produced the result: "remote" or "lexicon".
	Source string `json:"-"`
}

// DefaultAnalysis returns the neutral baseline used when a text is empty.
func DefaultAnalysis() *Analysis {
	return &Analysis{
		PrimaryEmotion:      Neutral,
		PrimaryEmotionScore: 1.0,
		SentimentPolarity:   0.0,
	}
}

// ScoreMap exposes the per-emotion scores keyed by emotion name.
func (a *Analysis) ScoreMap() map[string]float64 {
	return map[string]float64{
		Joy:        a.Joy,
		Sadness:    a.Sadness,
		Anger:      a.Anger,
		Fear:       a.Fear,
		Surprise:   a.Surprise,
		Disgust:    a.Disgust,
		Neutral:    a.Neutral,
		Love:       a.Love,
		Anxiety:    a.Anxiety,
		Excitement: a.Excitement,
	}
}

func (a *Analysis) setScore(name string, score float64) {
	switch name {
	case Joy:
		a.Joy = score
	case Sadness:
		a.Sadness = score
	case Anger:
		a.Anger = score
	case Fear:
		a.Fear = score
	case Surprise:
		a.Surprise = score
	case Disgust:
		a.Disgust = score
	case Neutral:
		a.Neutral = score
	case Love:
		a.Love = score
	case Anxiety:
		a.Anxiety = score
	case Excitement:
		a.Excitement = score
	}
}

// fromScores builds an Analysis from a score map, recomputing the primary emotion.
func fromScores(scores map[string]float64, polarity float64) *Analysis {
	a := &Analysis{SentimentPolarity: polarity}
	for name, score := range scores {
		a.setScore(name, score)
	}
	primary, primaryScore := argmax(scores)
	a.PrimaryEmotion = primary
	a.PrimaryEmotionScore = primaryScore
	return a
}

func argmax(scores map[string]float64) (string, float64) {
	best := Neutral
	bestScore := 0.0
	// Iterate canonical order so ties resolve deterministically.
	for _, e := range Emotions {
		if scores[e] > bestScore {
			best = e
			bestScore = scores[e]
		}
	}
	return best, bestScore
}

// Clamp forces every score into [0, 1] and the polarity into [-1, 1].
func (a *Analysis) Clamp() {
	for _, name := range Emotions {
		a.setScore(name, clamp01(a.ScoreMap()[name]))
	}
	a.PrimaryEmotionScore = clamp01(a.PrimaryEmotionScore)
	if a.SentimentPolarity > 1.0 {
		a.SentimentPolarity = 1.0
	}
	if a.SentimentPolarity < -1.0 {
		a.SentimentPolarity = -1.0
	}
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
