package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id                    uuid.UUID  `json:"id"`
	Email                 string     `json:"email"`
	FullName              string     `json:"full_name"`
	Role                  string     `json:"role"`
	Status                string     `json:"status"`
	AvatarURL             string     `json:"avatar_url,omitempty"`
	Timezone              string     `json:"timezone"`
	PreferredTone         string     `json:"preferred_tone"`
	EnableWeeklySummaries bool       `json:"enable_weekly_summaries"`
	EnableFutureLetters   bool       `json:"enable_future_letters"`
	CurrentStreak         int        `json:"current_streak"`
	LongestStreak         int        `json:"longest_streak"`
	TotalEntries          int        `json:"total_entries"`
	TotalWords            int        `json:"total_words"`
	LastEntryDate         *time.Time `json:"last_entry_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName              string `json:"full_name" validate:"omitempty,min=3"`
	Timezone              string `json:"timezone" validate:"omitempty,max=64"`
	PreferredTone         string `json:"preferred_tone" validate:"omitempty,oneof=warm direct playful reflective"`
	EnableWeeklySummaries *bool  `json:"enable_weekly_summaries"`
	EnableFutureLetters   *bool  `json:"enable_future_letters"`
}
