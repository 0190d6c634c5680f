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

type InsightRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InsightMapper
}

func NewInsightRepository(db *gorm.DB) contract.InsightRepository {
	return &InsightRepositoryImpl{
		db:     db,
		mapper: mapper.NewInsightMapper(),
	}
}

func (r *InsightRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InsightRepositoryImpl) Create(ctx context.Context, insight *entity.Insight) error {
	modelInsight := r.mapper.ToModel(insight)
	if err := r.db.WithContext(ctx).Create(modelInsight).Error; err != nil {
		return err
	}
	*insight = *r.mapper.ToEntity(modelInsight)
	return nil
}

func (r *InsightRepositoryImpl) Update(ctx context.Context, insight *entity.Insight) error {
	modelInsight := r.mapper.ToModel(insight)
	if err := r.db.WithContext(ctx).Save(modelInsight).Error; err != nil {
		return err
	}
	*insight = *r.mapper.ToEntity(modelInsight)
	return nil
}

func (r *InsightRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Insight{}).Error
}

func (r *InsightRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Insight, error) {
	var modelInsight model.Insight
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelInsight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelInsight), nil
}

func (r *InsightRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Insight, error) {
	var modelInsights []*model.Insight
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelInsights).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelInsights), nil
}

func (r *InsightRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Insight{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *InsightRepositoryImpl) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Insight{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
