package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile carries journaling preferences and the streak counters that
// the dashboard surfaces.
type UserProfile struct {
	Id                    uuid.UUID
	UserId                uuid.UUID
	Timezone              string
	PreferredTone         string
	EnableWeeklySummaries bool
	EnableFutureLetters   bool
	CurrentStreak         int
	LongestStreak         int
	TotalEntries          int
	TotalWords            int
	LastEntryDate         *time.Time
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}
