package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryOwnedByUser struct {
	UserID uuid.UUID
}

func (s EntryOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entries.user_id = ?", s.UserID)
}

type CreatedAfter struct {
	Time time.Time
}

func (s CreatedAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Time)
}

type CreatedBefore struct {
	Time time.Time
}

func (s CreatedBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at < ?", s.Time)
}

type IsAnalyzed struct {
	Analyzed bool
}

func (s IsAnalyzed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_analyzed = ?", s.Analyzed)
}

// ByPrimaryEmotion restricts entries to those whose analysis landed on the
// given primary emotion.
type ByPrimaryEmotion struct {
	Emotion string
}

func (s ByPrimaryEmotion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"entries.id IN (?)",
		db.Session(&gorm.Session{NewDB: true}).
			Table("emotion_analyses").
			Select("entry_id").
			Where("primary_emotion = ?", s.Emotion),
	)
}

type ByEntryID struct {
	EntryID uuid.UUID
}

func (s ByEntryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entry_id = ?", s.EntryID)
}

type ByEntryIDs struct {
	EntryIDs []uuid.UUID
}

func (s ByEntryIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entry_id IN ?", s.EntryIDs)
}
