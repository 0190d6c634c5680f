package unitofwork

import (
	"context"

	"echoverse-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	EntryRepository() contract.EntryRepository
	EmotionAnalysisRepository() contract.EmotionAnalysisRepository
	EntryEmbeddingRepository() contract.EntryEmbeddingRepository
	InsightRepository() contract.InsightRepository
	VisualizationRepository() contract.VisualizationRepository
}
