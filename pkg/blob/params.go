package blob

import (
	"hash/fnv"
	"math"

	"echoverse-be/pkg/emotion"
)

// Snapshot is one historical emotional data point feeding the blob evolution.
type Snapshot struct {
	PrimaryEmotion    string
	SentimentPolarity float64
}

// Params controls the geometry of a rendered mood blob.
type Params struct {
	Radius     int     `json:"radius"`
	Variation  int     `json:"variation"`
	Seed       int     `json:"seed"`
	Complexity int     `json:"complexity"`
	Sentiment  float64 `json:"sentiment"`
}

// CalculateParams derives blob geometry from the current emotional state and
// recent history. Radius grows with intensity, variation with volatility, and
// the seed is a stable hash of the primary emotion so renders are reproducible.
func CalculateParams(current *emotion.Analysis, history []Snapshot) Params {
	baseRadius := 200 + int(current.PrimaryEmotionScore*150)

	variation := 60
	if len(history) > 1 {
		var volatilities []float64
		n := len(history)
		for i := 0; i < min(5, n-1); i++ {
			diff := math.Abs(history[n-1-i].SentimentPolarity - history[n-2-i].SentimentPolarity)
			volatilities = append(volatilities, diff)
		}
		avg := 0.5
		if len(volatilities) > 0 {
			sum := 0.0
			for _, v := range volatilities {
				sum += v
			}
			avg = sum / float64(len(volatilities))
		}
		variation = 40 + int(avg*80)
	}

	emotionCount := 0
	for _, score := range current.ScoreMap() {
		if score > 0.15 {
			emotionCount++
		}
	}
	complexity := min(emotionCount+8, 16)

	return Params{
		Radius:     baseRadius,
		Variation:  variation,
		Seed:       emotionSeed(current.PrimaryEmotion),
		Complexity: complexity,
		Sentiment:  current.SentimentPolarity,
	}
}

// emotionSeed maps an emotion name to a stable seed in [0, 1000).
func emotionSeed(name string) int {
	h := fnv.New32a()
	h.Write([]byte(name))
	return int(h.Sum32() % 1000)
}
