package contract

import (
	"context"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VisualizationRepository interface {
	Create(ctx context.Context, visualization *entity.Visualization) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Visualization, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Visualization, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
