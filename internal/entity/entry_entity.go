package entity

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	Id         uuid.UUID
	Title      string
	Content    string
	WordCount  int
	IsAnalyzed bool
	UserId     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
