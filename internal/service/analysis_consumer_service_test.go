package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"echoverse-be/internal/dto"
	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/contract"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"
	"echoverse-be/pkg/embedding"
	"echoverse-be/pkg/emotion"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingEmbeddingProvider struct{}

func (failingEmbeddingProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return nil, errors.New("embedding service unavailable")
}

type consumerEntryRepo struct {
	contract.EntryRepository
	entry   *entity.Entry
	updated *entity.Entry
}

func (r *consumerEntryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entry, error) {
	return r.entry, nil
}

func (r *consumerEntryRepo) Update(ctx context.Context, entry *entity.Entry) error {
	r.updated = entry
	return nil
}

type consumerAnalysisRepo struct {
	contract.EmotionAnalysisRepository
	upserted *entity.EmotionAnalysis
}

func (r *consumerAnalysisRepo) Upsert(ctx context.Context, analysis *entity.EmotionAnalysis) error {
	r.upserted = analysis
	return nil
}

type consumerEmbeddingRepo struct {
	contract.EntryEmbeddingRepository
	deleteCalls int
	createCalls int
}

func (r *consumerEmbeddingRepo) DeleteByEntryId(ctx context.Context, entryId uuid.UUID) error {
	r.deleteCalls++
	return nil
}

func (r *consumerEmbeddingRepo) CreateBulk(ctx context.Context, embeddings []*entity.EntryEmbedding) error {
	r.createCalls++
	return nil
}

type consumerUow struct {
	unitofwork.UnitOfWork
	entries    contract.EntryRepository
	analyses   contract.EmotionAnalysisRepository
	embeddings contract.EntryEmbeddingRepository
}

func (u *consumerUow) Begin(ctx context.Context) error { return nil }
func (u *consumerUow) Commit() error                   { return nil }
func (u *consumerUow) Rollback() error                 { return nil }

func (u *consumerUow) EntryRepository() contract.EntryRepository { return u.entries }
func (u *consumerUow) EmotionAnalysisRepository() contract.EmotionAnalysisRepository {
	return u.analyses
}
func (u *consumerUow) EntryEmbeddingRepository() contract.EntryEmbeddingRepository {
	return u.embeddings
}

type consumerUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *consumerUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func TestProcessMessage_EmbeddingOutageStillPersistsAnalysis(t *testing.T) {
	entry := &entity.Entry{
		Id:        uuid.New(),
		UserId:    uuid.New(),
		Title:     "A rough commute",
		Content:   "I felt worried and anxious all morning, nothing went right.",
		CreatedAt: time.Now(),
	}

	entries := &consumerEntryRepo{entry: entry}
	analyses := &consumerAnalysisRepo{}
	embeddings := &consumerEmbeddingRepo{}
	uow := &consumerUow{entries: entries, analyses: analyses, embeddings: embeddings}

	cs := &analysisConsumerService{
		uowFactory:        &consumerUowFactory{uow: uow},
		analyzer:          emotion.NewAnalyzer(nil, ""),
		embeddingProvider: failingEmbeddingProvider{},
	}

	payload, err := json.Marshal(dto.PublishAnalyzeEntryMessage{EntryId: entry.Id})
	require.NoError(t, err)
	msg := message.NewMessage(watermill.NewUUID(), payload)

	cs.processMessage(context.Background(), msg)

	require.NotNil(t, analyses.upserted)
	assert.Equal(t, entry.Id, analyses.upserted.EntryId)
	require.NotNil(t, entries.updated)
	assert.True(t, entries.updated.IsAnalyzed)

	// Previous embeddings survive the outage untouched
	assert.Zero(t, embeddings.deleteCalls)
	assert.Zero(t, embeddings.createCalls)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("expected message to be acked")
	}
}
