package contract

import (
	"context"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InsightRepository interface {
	Create(ctx context.Context, insight *entity.Insight) error
	Update(ctx context.Context, insight *entity.Insight) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Insight, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Insight, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
}
