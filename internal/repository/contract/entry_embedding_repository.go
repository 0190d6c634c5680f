package contract

import (
	"context"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredEntryEmbedding wraps EntryEmbedding with its similarity score
type ScoredEntryEmbedding struct {
	Embedding  *entity.EntryEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type EntryEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.EntryEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.EntryEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByEntryId(ctx context.Context, entryId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EntryEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EntryEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns embeddings with their similarity scores,
	// filtered by threshold.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, userId uuid.UUID, threshold float64) ([]*ScoredEntryEmbedding, error)
}
