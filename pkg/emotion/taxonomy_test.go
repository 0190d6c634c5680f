package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	for _, name := range Emotions {
		assert.True(t, IsValid(name), name)
	}
	assert.False(t, IsValid("melancholia"))
	assert.False(t, IsValid(""))
}

func TestArgmax_TieResolvesInCanonicalOrder(t *testing.T) {
	scores := map[string]float64{Sadness: 0.4, Anxiety: 0.4}

	primary, score := argmax(scores)

	assert.Equal(t, Sadness, primary)
	assert.Equal(t, 0.4, score)
}

func TestArgmax_AllZeroDefaultsToNeutral(t *testing.T) {
	primary, score := argmax(map[string]float64{})

	assert.Equal(t, Neutral, primary)
	assert.Equal(t, 0.0, score)
}
