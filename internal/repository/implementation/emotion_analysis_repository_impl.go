package implementation

import (
	"context"
	"errors"
	"time"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/mapper"
	"echoverse-be/internal/model"
	"echoverse-be/internal/repository/contract"
	"echoverse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmotionAnalysisRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmotionAnalysisMapper
}

func NewEmotionAnalysisRepository(db *gorm.DB) contract.EmotionAnalysisRepository {
	return &EmotionAnalysisRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmotionAnalysisMapper(),
	}
}

func (r *EmotionAnalysisRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EmotionAnalysisRepositoryImpl) Upsert(ctx context.Context, analysis *entity.EmotionAnalysis) error {
	modelAnalysis := r.mapper.ToModel(analysis)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entry_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"joy", "sadness", "anger", "fear", "surprise", "disgust",
			"neutral", "love", "anxiety", "excitement",
			"primary_emotion", "primary_emotion_score", "sentiment_polarity",
			"source", "updated_at",
		}),
	}).Create(modelAnalysis).Error
	if err != nil {
		return err
	}
	*analysis = *r.mapper.ToEntity(modelAnalysis)
	return nil
}

func (r *EmotionAnalysisRepositoryImpl) DeleteByEntryId(ctx context.Context, entryId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("entry_id = ?", entryId).Delete(&model.EmotionAnalysis{}).Error
}

func (r *EmotionAnalysisRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EmotionAnalysis, error) {
	var modelAnalysis model.EmotionAnalysis
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelAnalysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelAnalysis), nil
}

func (r *EmotionAnalysisRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EmotionAnalysis, error) {
	var modelAnalyses []*model.EmotionAnalysis
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelAnalyses).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAnalyses), nil
}

func (r *EmotionAnalysisRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.EmotionAnalysis{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *EmotionAnalysisRepositoryImpl) FindForUser(ctx context.Context, userId uuid.UUID, start, end time.Time) ([]*entity.EmotionAnalysis, error) {
	var modelAnalyses []*model.EmotionAnalysis

	err := r.db.WithContext(ctx).
		Joins("JOIN entries ON entries.id = emotion_analyses.entry_id").
		Where("entries.user_id = ?", userId).
		Where("entries.created_at >= ? AND entries.created_at < ?", start, end).
		Where("entries.deleted_at IS NULL").
		Order("entries.created_at ASC").
		Find(&modelAnalyses).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelAnalyses), nil
}
