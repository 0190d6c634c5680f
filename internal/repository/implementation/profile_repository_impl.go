package implementation

import (
	"context"
	"errors"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/mapper"
	"echoverse-be/internal/model"
	"echoverse-be/internal/repository/contract"
	"echoverse-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.UserProfile) error {
	modelProfile := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(modelProfile)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entity.UserProfile) error {
	modelProfile := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(modelProfile)
	return nil
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProfile, error) {
	var modelProfile model.UserProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelProfile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelProfile), nil
}

func (r *ProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProfile, error) {
	var modelProfiles []*model.UserProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelProfiles).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelProfiles), nil
}
