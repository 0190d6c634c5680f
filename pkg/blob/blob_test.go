package blob

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"echoverse-be/pkg/emotion"
)

func joyAnalysis() *emotion.Analysis {
	return &emotion.Analysis{
		Joy:                 0.8,
		Excitement:          0.3,
		Love:                0.2,
		Neutral:             0.05,
		PrimaryEmotion:      emotion.Joy,
		PrimaryEmotionScore: 0.8,
		SentimentPolarity:   0.7,
	}
}

func TestCalculateParams_RadiusGrowsWithIntensity(t *testing.T) {
	weak := &emotion.Analysis{PrimaryEmotion: emotion.Neutral, PrimaryEmotionScore: 0.0}
	strong := &emotion.Analysis{PrimaryEmotion: emotion.Joy, PrimaryEmotionScore: 1.0}

	assert.Equal(t, 200, CalculateParams(weak, nil).Radius)
	assert.Equal(t, 350, CalculateParams(strong, nil).Radius)
}

func TestCalculateParams_DefaultVariationWithoutHistory(t *testing.T) {
	params := CalculateParams(joyAnalysis(), nil)

	assert.Equal(t, 60, params.Variation)
}

func TestCalculateParams_VariationTracksVolatility(t *testing.T) {
	calm := []Snapshot{
		{emotion.Neutral, 0.1},
		{emotion.Neutral, 0.1},
		{emotion.Neutral, 0.1},
	}
	turbulent := []Snapshot{
		{emotion.Joy, 0.9},
		{emotion.Sadness, -0.8},
		{emotion.Anger, 0.7},
	}

	calmParams := CalculateParams(joyAnalysis(), calm)
	turbulentParams := CalculateParams(joyAnalysis(), turbulent)

	assert.Equal(t, 40, calmParams.Variation)
	assert.Greater(t, turbulentParams.Variation, calmParams.Variation)
}

func TestCalculateParams_SeedIsStablePerEmotion(t *testing.T) {
	a := CalculateParams(joyAnalysis(), nil)
	b := CalculateParams(joyAnalysis(), nil)

	assert.Equal(t, a.Seed, b.Seed)
	assert.GreaterOrEqual(t, a.Seed, 0)
	assert.Less(t, a.Seed, 1000)

	sad := &emotion.Analysis{PrimaryEmotion: emotion.Sadness, PrimaryEmotionScore: 0.5}
	assert.NotEqual(t, a.Seed, CalculateParams(sad, nil).Seed)
}

func TestCalculateParams_ComplexityCountsActiveEmotions(t *testing.T) {
	params := CalculateParams(joyAnalysis(), nil)

	// joy, excitement and love exceed the 0.15 threshold.
	assert.Equal(t, 11, params.Complexity)

	flat := &emotion.Analysis{PrimaryEmotion: emotion.Neutral, PrimaryEmotionScore: 0.1}
	assert.Equal(t, 8, CalculateParams(flat, nil).Complexity)
}

func TestColorEvolution_PaletteBounds(t *testing.T) {
	colors := ColorEvolution(joyAnalysis(), nil)

	assert.GreaterOrEqual(t, len(colors), 3)
	assert.LessOrEqual(t, len(colors), 5)
}

func TestColorEvolution_PrimaryColorWithoutHistory(t *testing.T) {
	colors := ColorEvolution(joyAnalysis(), nil)

	assert.Equal(t, emotion.Colors[emotion.Joy], colors[0])
}

func TestColorEvolution_HistoryShiftsPrimaryColor(t *testing.T) {
	history := []Snapshot{{emotion.Sadness, -0.5}}

	colors := ColorEvolution(joyAnalysis(), history)

	assert.NotEqual(t, emotion.Colors[emotion.Joy], colors[0])
	assert.NotEqual(t, emotion.Colors[emotion.Sadness], colors[0])
}

func TestEmotionShape_PointCounts(t *testing.T) {
	for _, name := range emotion.Emotions {
		contour := emotionShape(name, 600, 600, 300, contourPoints)
		assert.Len(t, contour, contourPoints, "contour for %s", name)
	}
}

func TestEmotionShape_JoyIsCircle(t *testing.T) {
	contour := emotionShape(emotion.Joy, 600, 600, 300, contourPoints)

	for _, p := range contour {
		dx := p.X - 600
		dy := p.Y - 600
		assert.InDelta(t, 300.0, math.Sqrt(dx*dx+dy*dy), 1e-9)
	}
}

func TestRender_DeterministicOutput(t *testing.T) {
	history := []Snapshot{{emotion.Sadness, -0.3}, {emotion.Joy, 0.5}}

	first, firstParams, err1 := Render(joyAnalysis(), history)
	second, secondParams, err2 := Render(joyAnalysis(), history)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, firstParams, secondParams)
	assert.True(t, bytes.Equal(first, second))
}

func TestRender_ProducesValidPNG(t *testing.T) {
	data, _, err := Render(joyAnalysis(), nil)

	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, canvasSize, img.Bounds().Dx())
	assert.Equal(t, canvasSize, img.Bounds().Dy())
}
