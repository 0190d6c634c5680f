package dto

import "time"

// EmotionDistribution maps emotion names to their share of recent entries.
type EmotionDistribution map[string]float64

type DashboardResponse struct {
	TotalEntries     int                     `json:"total_entries"`
	WeeklyEntries    int64                   `json:"weekly_entries"`
	TotalWords       int                     `json:"total_words"`
	CurrentStreak    int                     `json:"current_streak"`
	LongestStreak    int                     `json:"longest_streak"`
	MoodDistribution EmotionDistribution     `json:"mood_distribution"`
	DominantMood     string                  `json:"dominant_mood,omitempty"`
	UnreadInsights   int64                   `json:"unread_insights"`
	RecentEntries    []EntryListItem         `json:"recent_entries"`
	RecentInsights   []InsightListItem       `json:"recent_insights"`
	RecentVisuals    []VisualizationResponse `json:"recent_visualizations"`
	GeneratedAt      time.Time               `json:"generated_at"`
}
