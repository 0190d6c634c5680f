package emotion

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const analysisPromptTemplate = `Analyze the emotional content of the following journal entry.
Return ONLY a valid JSON object with no additional text, markdown, or explanation.

Analyze these emotions: joy, sadness, anger, fear, surprise, disgust, neutral, love, anxiety, excitement

For each emotion, provide a score from 0.0 to 1.0 (as decimal, NOT percentage) indicating how strongly that emotion is present.
Also determine:
- primary_emotion: The strongest emotion
- primary_emotion_score: The confidence score for the primary emotion (0.0 to 1.0)
- sentiment_polarity: Overall sentiment from -1.0 (very negative) to 1.0 (very positive)

Journal entry:
%s

Return format:
{
    "joy": 0.0,
    "sadness": 0.0,
    "anger": 0.0,
    "fear": 0.0,
    "surprise": 0.0,
    "disgust": 0.0,
    "neutral": 0.0,
    "love": 0.0,
    "anxiety": 0.0,
    "excitement": 0.0,
    "primary_emotion": "emotion_name",
    "primary_emotion_score": 0.0,
    "sentiment_polarity": 0.0
}`

// BuildAnalysisPrompt renders the classification prompt for a journal entry.
func BuildAnalysisPrompt(text string) string {
	return fmt.Sprintf(analysisPromptTemplate, text)
}

var requiredFields = []string{
	"joy", "sadness", "anger", "fear", "surprise", "disgust",
	"neutral", "love", "anxiety", "excitement",
	"primary_emotion", "primary_emotion_score", "sentiment_polarity",
}

var jsonFencePattern = regexp.MustCompile(`(?i)^` + "```" + `json\s*`)

var numericPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ParseRemoteResponse extracts and validates an Analysis from raw model output.
// Models routinely wrap the JSON in markdown fences or prose; this strips the
// fences, pulls out the first balanced JSON object, and coerces numeric strings.
func ParseRemoteResponse(response string) (*Analysis, error) {
	text := strings.TrimSpace(response)
	if text == "" {
		return nil, fmt.Errorf("empty response")
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		text = strings.TrimSpace(text[3 : len(text)-3])
	}
	text = strings.TrimSpace(jsonFencePattern.ReplaceAllString(text, ""))

	jsonText := extractFirstJSON(text)
	if jsonText == "" {
		jsonText = text
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(jsonText), &obj); err != nil {
		// Some models emit single-quoted pseudo-JSON.
		alt := strings.ReplaceAll(jsonText, "'", `"`)
		if err := json.Unmarshal([]byte(alt), &obj); err != nil {
			return nil, fmt.Errorf("no parseable json object in response")
		}
	}

	for _, field := range requiredFields {
		if _, ok := obj[field]; !ok {
			return nil, fmt.Errorf("response missing required field %q", field)
		}
	}

	a := &Analysis{Source: SourceRemote}
	for _, name := range Emotions {
		a.setScore(name, coerceFloat(obj[name]))
	}
	a.SentimentPolarity = coerceFloat(obj["sentiment_polarity"])
	a.Clamp()

	// Models routinely report a primary_emotion_score that disagrees with
	// their own per-emotion scores. The score map is the source of truth:
	// recompute the primary from it so the stored pair stays consistent.
	primary, score := argmax(a.ScoreMap())
	a.PrimaryEmotion = primary
	a.PrimaryEmotionScore = score

	return a, nil
}

// extractFirstJSON returns the first balanced {...} substring, or "".
func extractFirstJSON(text string) string {
	start := -1
	depth := 0
	for i, ch := range text {
		switch ch {
		case '{':
			if start == -1 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}

func coerceFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if numericPattern.MatchString(trimmed) {
			f, err := strconv.ParseFloat(trimmed, 64)
			if err == nil {
				return f
			}
		}
	}
	return 0.0
}
