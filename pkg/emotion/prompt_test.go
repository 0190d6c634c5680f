package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const validRemoteJSON = `{
	"joy": 0.7,
	"sadness": 0.05,
	"anger": 0.0,
	"fear": 0.0,
	"surprise": 0.1,
	"disgust": 0.0,
	"neutral": 0.05,
	"love": 0.2,
	"anxiety": 0.0,
	"excitement": 0.4,
	"primary_emotion": "joy",
	"primary_emotion_score": 0.7,
	"sentiment_polarity": 0.6
}`

func TestParseRemoteResponse_PlainJSON(t *testing.T) {
	result, err := ParseRemoteResponse(validRemoteJSON)

	assert.NoError(t, err)
	assert.Equal(t, Joy, result.PrimaryEmotion)
	assert.Equal(t, 0.7, result.PrimaryEmotionScore)
	assert.Equal(t, 0.6, result.SentimentPolarity)
	assert.Equal(t, SourceRemote, result.Source)
}

func TestParseRemoteResponse_FencedJSON(t *testing.T) {
	fenced := "```json\n" + validRemoteJSON + "\n```"

	result, err := ParseRemoteResponse(fenced)

	assert.NoError(t, err)
	assert.Equal(t, Joy, result.PrimaryEmotion)
}

func TestParseRemoteResponse_JSONEmbeddedInProse(t *testing.T) {
	wrapped := "Here is the analysis you asked for:\n" + validRemoteJSON + "\nLet me know if you need anything else."

	result, err := ParseRemoteResponse(wrapped)

	assert.NoError(t, err)
	assert.Equal(t, 0.7, result.Joy)
}

func TestParseRemoteResponse_CoercesNumericStrings(t *testing.T) {
	payload := `{
		"joy": "0.9", "sadness": 0, "anger": 0, "fear": 0, "surprise": 0,
		"disgust": 0, "neutral": 0, "love": 0, "anxiety": 0, "excitement": 0,
		"primary_emotion": "joy", "primary_emotion_score": "0.9", "sentiment_polarity": "-0.2"
	}`

	result, err := ParseRemoteResponse(payload)

	assert.NoError(t, err)
	assert.Equal(t, 0.9, result.Joy)
	assert.Equal(t, -0.2, result.SentimentPolarity)
}

func TestParseRemoteResponse_ClampsOutOfRangeScores(t *testing.T) {
	payload := `{
		"joy": 1.8, "sadness": -0.5, "anger": 0, "fear": 0, "surprise": 0,
		"disgust": 0, "neutral": 0, "love": 0, "anxiety": 0, "excitement": 0,
		"primary_emotion": "joy", "primary_emotion_score": 1.8, "sentiment_polarity": 2.0
	}`

	result, err := ParseRemoteResponse(payload)

	assert.NoError(t, err)
	assert.Equal(t, 1.0, result.Joy)
	assert.Equal(t, 0.0, result.Sadness)
	assert.Equal(t, 1.0, result.PrimaryEmotionScore)
	assert.Equal(t, 1.0, result.SentimentPolarity)
}

func TestParseRemoteResponse_UnknownPrimaryFallsBackToArgmax(t *testing.T) {
	payload := `{
		"joy": 0.1, "sadness": 0.8, "anger": 0, "fear": 0, "surprise": 0,
		"disgust": 0, "neutral": 0, "love": 0, "anxiety": 0, "excitement": 0,
		"primary_emotion": "melancholia", "primary_emotion_score": 0.8, "sentiment_polarity": -0.4
	}`

	result, err := ParseRemoteResponse(payload)

	assert.NoError(t, err)
	assert.Equal(t, Sadness, result.PrimaryEmotion)
}

func TestParseRemoteResponse_RecomputesPrimaryFromScores(t *testing.T) {
	payload := `{
		"joy": 0.8, "sadness": 0.1, "anger": 0, "fear": 0, "surprise": 0,
		"disgust": 0, "neutral": 0, "love": 0, "anxiety": 0, "excitement": 0,
		"primary_emotion": "sadness", "primary_emotion_score": 0.3, "sentiment_polarity": 0.5
	}`

	result, err := ParseRemoteResponse(payload)

	assert.NoError(t, err)
	assert.Equal(t, Joy, result.PrimaryEmotion)
	assert.Equal(t, 0.8, result.PrimaryEmotionScore)
	assert.Equal(t, result.ScoreMap()[result.PrimaryEmotion], result.PrimaryEmotionScore)
}

func TestParseRemoteResponse_MissingFieldFails(t *testing.T) {
	payload := `{"joy": 0.5, "primary_emotion": "joy"}`

	result, err := ParseRemoteResponse(payload)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestParseRemoteResponse_GarbageFails(t *testing.T) {
	result, err := ParseRemoteResponse("I could not analyze this entry, sorry.")

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestParseRemoteResponse_EmptyFails(t *testing.T) {
	result, err := ParseRemoteResponse("   ")

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestBuildAnalysisPrompt_ContainsEntryText(t *testing.T) {
	prompt := BuildAnalysisPrompt("today was a strange day")

	assert.Contains(t, prompt, "today was a strange day")
	assert.Contains(t, prompt, "primary_emotion")
	assert.Contains(t, prompt, "sentiment_polarity")
}

func TestDefaultAnalysis(t *testing.T) {
	result := DefaultAnalysis()

	assert.Equal(t, Neutral, result.PrimaryEmotion)
	assert.Equal(t, 1.0, result.PrimaryEmotionScore)
	assert.Equal(t, 0.0, result.SentimentPolarity)
	for _, score := range result.ScoreMap() {
		assert.Equal(t, 0.0, score)
	}
}
