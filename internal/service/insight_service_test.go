package service

import (
	"strings"
	"testing"

	"echoverse-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestInsightTitle_PerType(t *testing.T) {
	assert.Equal(t, "Weekly Emotional Summary", insightTitle(entity.InsightTypeWeeklySummary))
	assert.Equal(t, "Letter to Future You", insightTitle(entity.InsightTypeFutureLetter))
	assert.Equal(t, "Emotional Pattern Analysis", insightTitle(entity.InsightTypePatternAnalysis))
	assert.Equal(t, "Personalized Recommendations", insightTitle(entity.InsightTypeRecommendation))
}

func snap(emotion string, sentiment float64) entrySnapshot {
	return entrySnapshot{
		Date:      "2025-03-10",
		Emotion:   emotion,
		Sentiment: sentiment,
		Preview:   "a quiet day",
	}
}

func TestDominantEmotion(t *testing.T) {
	snapshots := []entrySnapshot{
		snap("joy", 0.5),
		snap("sadness", -0.4),
		snap("sadness", -0.6),
	}

	assert.Equal(t, "sadness", dominantEmotion(snapshots))
}

func TestDominantEmotion_TieKeepsFirstSeen(t *testing.T) {
	snapshots := []entrySnapshot{
		snap("anger", -0.3),
		snap("joy", 0.6),
	}

	assert.Equal(t, "anger", dominantEmotion(snapshots))
}

func TestDominantEmotion_EmptyIsNeutral(t *testing.T) {
	assert.Equal(t, "neutral", dominantEmotion(nil))
}

func TestAverageSentiment(t *testing.T) {
	snapshots := []entrySnapshot{snap("joy", 0.8), snap("joy", 0.4)}

	assert.InDelta(t, 0.6, averageSentiment(snapshots), 1e-9)
	assert.Zero(t, averageSentiment(nil))
}

func TestLastN(t *testing.T) {
	snapshots := []entrySnapshot{snap("joy", 0), snap("fear", 0), snap("love", 0)}

	tail := lastN(snapshots, 2)

	assert.Len(t, tail, 2)
	assert.Equal(t, "fear", tail[0].Emotion)
	assert.Equal(t, "love", tail[1].Emotion)

	assert.Len(t, lastN(snapshots, 10), 3)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "hi", truncateRunes("hi", 10))
}

func TestWeeklyContext_Format(t *testing.T) {
	ctx := weeklyContext([]entrySnapshot{snap("joy", 0.75)})

	assert.Contains(t, ctx, "Entry 1 (2025-03-10):")
	assert.Contains(t, ctx, "Primary emotion: joy")
	assert.Contains(t, ctx, "Sentiment: 0.75")
	assert.Contains(t, ctx, "Preview: a quiet day")
}

func TestFallbackSummary_SentimentBranches(t *testing.T) {
	positive := fallbackSummary([]entrySnapshot{snap("joy", 0.9)})
	assert.Contains(t, positive, "positive tone")

	negative := fallbackSummary([]entrySnapshot{snap("sadness", -0.9)})
	assert.Contains(t, negative, "challenging emotions")

	balanced := fallbackSummary([]entrySnapshot{snap("neutral", 0.0)})
	assert.Contains(t, balanced, "fairly balanced")
}

func TestFallbackSummary_VarietyLine(t *testing.T) {
	snapshots := []entrySnapshot{
		snap("joy", 0), snap("sadness", 0), snap("anger", 0), snap("fear", 0),
	}

	assert.Contains(t, fallbackSummary(snapshots), "wide range of emotions")
}

func TestFallbackPatternAnalysis_CapitalizesDominant(t *testing.T) {
	out := fallbackPatternAnalysis([]entrySnapshot{snap("anxiety", -0.2)})

	assert.Contains(t, out, "Anxiety appears to be a recurring theme")
	assert.Contains(t, out, "recent 1 entries")
}

func TestFallbackRecommendations_BulletSets(t *testing.T) {
	soothing := fallbackRecommendations([]entrySnapshot{snap("anxiety", -0.5)})
	assert.Contains(t, soothing, "mindfulness or breathing exercises")

	venting := fallbackRecommendations([]entrySnapshot{snap("anger", -0.5)})
	assert.Contains(t, venting, "physical activities or creative outlets")

	savoring := fallbackRecommendations([]entrySnapshot{snap("joy", 0.5)})
	assert.Contains(t, savoring, "joy multiplies when shared")

	generic := fallbackRecommendations([]entrySnapshot{snap("surprise", 0.1)})
	assert.Contains(t, generic, "Continue your journaling practice")
}

func TestFallbackLetter_IncludesHorizon(t *testing.T) {
	letter := fallbackLetter(3)

	assert.True(t, strings.HasPrefix(letter, "Dear Future You,"))
	assert.Contains(t, letter, "3 months from now")
}
