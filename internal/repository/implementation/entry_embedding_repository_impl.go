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
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type EntryEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EntryEmbeddingMapper
}

func NewEntryEmbeddingRepository(db *gorm.DB) contract.EntryEmbeddingRepository {
	return &EntryEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewEntryEmbeddingMapper(),
	}
}

func (r *EntryEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EntryEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.EntryEmbedding) error {
	modelEmbedding := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(modelEmbedding).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(modelEmbedding)
	return nil
}

func (r *EntryEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.EntryEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}

	models := r.mapper.ToModels(embeddings)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *EntryEmbeddingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EntryEmbedding{}).Error
}

func (r *EntryEmbeddingRepositoryImpl) DeleteByEntryId(ctx context.Context, entryId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("entry_id = ?", entryId).Delete(&model.EntryEmbedding{}).Error
}

func (r *EntryEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EntryEmbedding, error) {
	var modelEmbedding model.EntryEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelEmbedding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelEmbedding), nil
}

func (r *EntryEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EntryEmbedding, error) {
	var modelEmbeddings []*model.EntryEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelEmbeddings).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelEmbeddings), nil
}

func (r *EntryEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.EntryEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchSimilarWithScore returns embeddings with similarity scores, filtered by threshold
func (r *EntryEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, userId uuid.UUID, threshold float64) ([]*contract.ScoredEntryEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding_value <=> query_vector) = cosine_similarity
	type result struct {
		model.EntryEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("entry_embeddings").
		Select("entry_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN entries ON entries.id = entry_embeddings.entry_id").
		Where("entries.user_id = ?", userId).
		Where("entry_embeddings.deleted_at IS NULL").
		Where("entries.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scoredEmbeddings := make([]*contract.ScoredEntryEmbedding, len(results))
	for i, res := range results {
		scoredEmbeddings[i] = &contract.ScoredEntryEmbedding{
			Embedding:  r.mapper.ToEntity(&res.EntryEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scoredEmbeddings, nil
}
