package contract

import (
	"context"
	"time"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type EmotionAnalysisRepository interface {
	// Upsert creates the analysis for an entry or replaces the existing one.
	Upsert(ctx context.Context, analysis *entity.EmotionAnalysis) error
	DeleteByEntryId(ctx context.Context, entryId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmotionAnalysis, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmotionAnalysis, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindForUser returns analyses of the user's entries created within
	// [start, end), ordered by entry creation time ascending.
	FindForUser(ctx context.Context, userId uuid.UUID, start, end time.Time) ([]*entity.EmotionAnalysis, error)
}
