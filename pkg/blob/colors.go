package blob

import (
	"sort"

	"echoverse-be/pkg/emotion"
)

var grayColor = emotion.Color{R: 128, G: 128, B: 128}

// ColorEvolution builds the blob palette: the current primary tone softened
// by the last known emotion, up to three secondary tones weighted by their
// scores, and a faded echo of the last three historical emotions.
// Always returns between 3 and 5 colors.
func ColorEvolution(current *emotion.Analysis, history []Snapshot) []emotion.Color {
	var colors []emotion.Color

	primaryColor := colorFor(current.PrimaryEmotion)
	if len(history) > 0 {
		lastColor := colorFor(history[len(history)-1].PrimaryEmotion)
		primaryColor = blendColors(lastColor, primaryColor, 0.6)
	}
	colors = append(colors, primaryColor)

	type scored struct {
		name  string
		score float64
	}
	var secondaries []scored
	for _, name := range emotion.Emotions {
		if score := current.ScoreMap()[name]; score > 0.1 {
			secondaries = append(secondaries, scored{name, score})
		}
	}
	sort.SliceStable(secondaries, func(i, j int) bool {
		return secondaries[i].score > secondaries[j].score
	})
	if len(secondaries) > 1 {
		ranked := secondaries[1:]
		if len(ranked) > 3 {
			ranked = ranked[:3]
		}
		for _, s := range ranked {
			colors = append(colors, blendColors(primaryColor, colorFor(s.name), s.score))
		}
	}

	if len(history) > 0 {
		start := len(history) - 3
		if start < 0 {
			start = 0
		}
		for _, snap := range history[start:] {
			colors = append(colors, fadeColor(colorFor(snap.PrimaryEmotion), 0.3))
		}
	}

	for len(colors) < 3 {
		colors = append(colors, primaryColor)
	}
	if len(colors) > 5 {
		colors = colors[:5]
	}
	return colors
}

func colorFor(name string) emotion.Color {
	if c, ok := emotion.Colors[name]; ok {
		return c
	}
	return grayColor
}

func blendColors(c1, c2 emotion.Color, ratio float64) emotion.Color {
	blend := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-ratio) + float64(b)*ratio)
	}
	return emotion.Color{
		R: blend(c1.R, c2.R),
		G: blend(c1.G, c2.G),
		B: blend(c1.B, c2.B),
	}
}

// fadeColor pulls a color toward gray; factor 1.0 keeps it, 0.0 grays it out.
func fadeColor(c emotion.Color, factor float64) emotion.Color {
	return blendColors(c, grayColor, 1-factor)
}

func brightenColor(c emotion.Color, factor float64) emotion.Color {
	brighten := func(v uint8) uint8 {
		scaled := int(float64(v) * factor)
		if scaled > 255 {
			scaled = 255
		}
		return uint8(scaled)
	}
	return emotion.Color{R: brighten(c.R), G: brighten(c.G), B: brighten(c.B)}
}
