package contract

import (
	"context"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	Update(ctx context.Context, profile *entity.UserProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProfile, error)
}
