package service

import (
	"strings"
	"testing"
	"time"

	"echoverse-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func dayInUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 15, 30, 0, 0, time.UTC)
}

func TestApplyEntryToStreak_FirstEntry(t *testing.T) {
	profile := &entity.UserProfile{Timezone: "UTC"}

	applyEntryToStreak(profile, 120, dayInUTC(2025, time.March, 10))

	assert.Equal(t, 1, profile.CurrentStreak)
	assert.Equal(t, 1, profile.LongestStreak)
	assert.Equal(t, 1, profile.TotalEntries)
	assert.Equal(t, 120, profile.TotalWords)
	assert.NotNil(t, profile.LastEntryDate)
}

func TestApplyEntryToStreak_SameDayUnchanged(t *testing.T) {
	profile := &entity.UserProfile{Timezone: "UTC"}

	applyEntryToStreak(profile, 50, dayInUTC(2025, time.March, 10))
	applyEntryToStreak(profile, 70, dayInUTC(2025, time.March, 10))

	assert.Equal(t, 1, profile.CurrentStreak)
	assert.Equal(t, 2, profile.TotalEntries)
	assert.Equal(t, 120, profile.TotalWords)
}

func TestApplyEntryToStreak_ConsecutiveDays(t *testing.T) {
	profile := &entity.UserProfile{Timezone: "UTC"}

	applyEntryToStreak(profile, 10, dayInUTC(2025, time.March, 10))
	applyEntryToStreak(profile, 10, dayInUTC(2025, time.March, 11))
	applyEntryToStreak(profile, 10, dayInUTC(2025, time.March, 12))

	assert.Equal(t, 3, profile.CurrentStreak)
	assert.Equal(t, 3, profile.LongestStreak)
}

func TestApplyEntryToStreak_GapResets(t *testing.T) {
	profile := &entity.UserProfile{Timezone: "UTC"}

	applyEntryToStreak(profile, 10, dayInUTC(2025, time.March, 10))
	applyEntryToStreak(profile, 10, dayInUTC(2025, time.March, 11))
	applyEntryToStreak(profile, 10, dayInUTC(2025, time.March, 14))

	assert.Equal(t, 1, profile.CurrentStreak)
	// Longest survives the reset
	assert.Equal(t, 2, profile.LongestStreak)
}

func TestApplyEntryToStreak_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	profile := &entity.UserProfile{Timezone: "Not/AZone"}

	applyEntryToStreak(profile, 10, dayInUTC(2025, time.March, 10))

	assert.Equal(t, 1, profile.CurrentStreak)
	assert.Equal(t, time.UTC, profile.LastEntryDate.Location())
}

func TestPreviewText_ShortContentUntouched(t *testing.T) {
	assert.Equal(t, "hello world", previewText("hello\n  world"))
}

func TestPreviewText_LongContentTruncated(t *testing.T) {
	content := strings.Repeat("a", 400)

	preview := previewText(content)

	assert.Len(t, []rune(preview), previewLength+3)
	assert.True(t, strings.HasSuffix(preview, "..."))
}
