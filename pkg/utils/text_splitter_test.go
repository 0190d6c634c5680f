package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   \n\t"))
	assert.Equal(t, 3, CountWords("one two three"))
	assert.Equal(t, 3, CountWords("  one\n two\tthree  "))
}

func TestSplitText_ShortTextSingleChunk(t *testing.T) {
	chunks := SplitText("short", 100, 10)

	assert.Equal(t, []string{"short"}, chunks)
}

func TestSplitText_ChunksOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 10) // 100 chars

	chunks := SplitText(text, 40, 10)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk)), 40)
	}
	// Consecutive chunks share the overlap region
	first := []rune(chunks[0])
	second := []rune(chunks[1])
	assert.Equal(t, string(first[len(first)-10:]), string(second[:10]))
}

func TestSplitText_CoversWholeText(t *testing.T) {
	text := strings.Repeat("x", 95)

	chunks := SplitText(text, 40, 10)

	last := chunks[len(chunks)-1]
	assert.True(t, strings.HasSuffix(text, last))

	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	assert.GreaterOrEqual(t, total, len(text))
}

func TestSplitText_OverlapLargerThanChunkFallsBack(t *testing.T) {
	text := strings.Repeat("y", 50)

	chunks := SplitText(text, 20, 20)

	assert.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("y", 20), chunks[0])
	assert.Equal(t, strings.Repeat("y", 10), chunks[2])
}
