package implementation

import (
	"context"
	"errors"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/mapper"
	"echoverse-be/internal/model"
	"echoverse-be/internal/repository/contract"
	"echoverse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisualizationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VisualizationMapper
}

func NewVisualizationRepository(db *gorm.DB) contract.VisualizationRepository {
	return &VisualizationRepositoryImpl{
		db:     db,
		mapper: mapper.NewVisualizationMapper(),
	}
}

func (r *VisualizationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VisualizationRepositoryImpl) Create(ctx context.Context, visualization *entity.Visualization) error {
	modelViz := r.mapper.ToModel(visualization)
	if err := r.db.WithContext(ctx).Create(modelViz).Error; err != nil {
		return err
	}
	*visualization = *r.mapper.ToEntity(modelViz)
	return nil
}

func (r *VisualizationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Visualization{}).Error
}

func (r *VisualizationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Visualization, error) {
	var modelViz model.Visualization
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelViz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelViz), nil
}

func (r *VisualizationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Visualization, error) {
	var modelVizs []*model.Visualization
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelVizs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelVizs), nil
}

func (r *VisualizationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Visualization{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
