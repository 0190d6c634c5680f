package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeLexicon_EmptyTextIsNeutral(t *testing.T) {
	scores := AnalyzeLexicon("")

	assert.Equal(t, 1.0, scores[Neutral])
	assert.Equal(t, 0.0, scores[Joy])
}

func TestAnalyzeLexicon_NoMatchesIsNeutral(t *testing.T) {
	scores := AnalyzeLexicon("the quorum convened at the municipal chamber")

	assert.Equal(t, 1.0, scores[Neutral])
}

func TestAnalyzeLexicon_ScoresAreNormalized(t *testing.T) {
	scores := AnalyzeLexicon("I felt happy and grateful but also worried about tomorrow")

	total := 0.0
	for _, v := range scores {
		total += v
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Greater(t, scores[Joy], 0.0)
}

func TestAnalyzeLexicon_DominantEmotionWins(t *testing.T) {
	scores := AnalyzeLexicon("I am furious, enraged and seething today")

	for _, e := range Emotions {
		if e == Anger {
			continue
		}
		assert.GreaterOrEqual(t, scores[Anger], scores[e], "anger should dominate over %s", e)
	}
}

func TestAnalyzeLexicon_NegationDampensScore(t *testing.T) {
	plain := AnalyzeLexicon("blissful")
	negated := AnalyzeLexicon("not blissful")

	// Both normalize to 1.0 for joy since it is the only matched emotion,
	// so compare the raw effect through a mixed sentence instead.
	assert.Equal(t, plain[Joy], 1.0)
	assert.Equal(t, negated[Joy], 1.0)

	mixed := AnalyzeLexicon("I am furious and not blissful")
	assert.Greater(t, mixed[Anger], mixed[Joy])
}

func TestAnalyzeLexicon_IntensifierAmplifiesScore(t *testing.T) {
	plain := AnalyzeLexicon("I am sad and I am furious")
	amplified := AnalyzeLexicon("I am extremely sad and I am furious")

	// Intensifying sadness shifts the normalized balance toward it.
	assert.Greater(t, amplified[Sadness], plain[Sadness])
}

func TestLexiconAnalysis_PolarityFollowsValence(t *testing.T) {
	positive := lexiconAnalysis("I am happy, grateful and thrilled")
	negative := lexiconAnalysis("I am devastated, heartbroken and hopeless")

	assert.Greater(t, positive.SentimentPolarity, 0.0)
	assert.Less(t, negative.SentimentPolarity, 0.0)
	assert.Equal(t, SourceLexicon, positive.Source)
}

func TestLexiconAnalysis_PrimaryEmotionMatchesArgmax(t *testing.T) {
	result := lexiconAnalysis("I am terrified and petrified of the dark")

	assert.Equal(t, Fear, result.PrimaryEmotion)
	assert.Equal(t, result.ScoreMap()[Fear], result.PrimaryEmotionScore)
}
