package mapper

import (
	"time"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type EntryEmbeddingMapper struct{}

func NewEntryEmbeddingMapper() *EntryEmbeddingMapper {
	return &EntryEmbeddingMapper{}
}

func (m *EntryEmbeddingMapper) ToEntity(e *model.EntryEmbedding) *entity.EntryEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.EntryEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		EntryId:        e.EntryId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *EntryEmbeddingMapper) ToModel(e *entity.EntryEmbedding) *model.EntryEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.EntryEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		EntryId:        e.EntryId,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *EntryEmbeddingMapper) ToEntities(embeddings []*model.EntryEmbedding) []*entity.EntryEmbedding {
	entities := make([]*entity.EntryEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *EntryEmbeddingMapper) ToModels(embeddings []*entity.EntryEmbedding) []*model.EntryEmbedding {
	models := make([]*model.EntryEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
