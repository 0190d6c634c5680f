package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"echoverse-be/internal/dto"
	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"
	"echoverse-be/pkg/embedding"
	"echoverse-be/pkg/emotion"
	"echoverse-be/pkg/events"
	pktNats "echoverse-be/pkg/nats"
	"echoverse-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IAnalysisConsumerService interface {
	Consume(ctx context.Context) error
}

type analysisConsumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	analyzer          *emotion.Analyzer
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
}

func NewAnalysisConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	analyzer *emotion.Analyzer,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
) IAnalysisConsumerService {
	return &analysisConsumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		analyzer:          analyzer,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
	}
}

func (cs *analysisConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *analysisConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAnalyzeEntryMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Analyzing entry %s", payload.EntryId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx, specification.ByID{ID: payload.EntryId})
	if err != nil {
		log.Printf("[ERROR] Failed to get entry %s: %v", payload.EntryId, err)
		msg.Nack()
		return
	}
	if entry == nil {
		log.Printf("[WARN] Entry not found, skipping: %s", payload.EntryId)
		msg.Ack() // Entry deleted before analysis ran
		return
	}

	// 1. Classify emotions (remote model with lexicon fallback)
	result := cs.analyzer.Analyze(ctx, entry.Content)
	analysis := analysisFromResult(entry.Id, result)

	// 2. Generate embeddings per chunk
	document := fmt.Sprintf("Entry Title: %s\n\n%s\n\nWritten At: %s",
		entry.Title,
		entry.Content,
		entry.CreatedAt.Format(time.RFC3339),
	)

	chunks := utils.SplitText(document, 1500, 200)
	log.Printf("[INFO] Entry %s split into %d chunks", payload.EntryId, len(chunks))

	// An embedding outage must not hold the analysis hostage: on failure the
	// entry still gets its analysis and flag, the previous embeddings stay,
	// and the next update or reanalyze refreshes them.
	embeddingsReady := true
	var newEmbeddings []*entity.EntryEmbedding
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of entry %s: %v", i, payload.EntryId, err)
			embeddingsReady = false
			newEmbeddings = nil
			break
		}

		newEmbeddings = append(newEmbeddings, &entity.EntryEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			EntryId:        entry.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	// 3. Persist analysis, embeddings and the analyzed flag atomically
	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.EmotionAnalysisRepository().Upsert(ctx, analysis); err != nil {
		log.Printf("[ERROR] Failed to upsert analysis for entry %s: %v", payload.EntryId, err)
		msg.Nack()
		return
	}

	if embeddingsReady {
		if err := uow.EntryEmbeddingRepository().DeleteByEntryId(ctx, entry.Id); err != nil {
			log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
			msg.Nack()
			return
		}

		if len(newEmbeddings) > 0 {
			if err := uow.EntryEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
				log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
				msg.Nack()
				return
			}
		}
	}

	now := time.Now()
	entry.IsAnalyzed = true
	entry.UpdatedAt = &now
	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to flag entry as analyzed: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		evt := events.NewBaseEvent(events.TypeEntryAnalyzed, map[string]interface{}{
			"entry_id":        entry.Id.String(),
			"user_id":         entry.UserId.String(),
			"title":           entry.Title,
			"primary_emotion": analysis.PrimaryEmotion,
			"entity_type":     "entry",
			"entity_id":       entry.Id.String(),
		})
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish ENTRY_ANALYZED event: %v", err)
		}
	}

	log.Printf("[SUCCESS] Entry %s analyzed: primary=%s source=%s chunks=%d",
		entry.Id, analysis.PrimaryEmotion, analysis.Source, len(newEmbeddings))
	msg.Ack()
}

func analysisFromResult(entryId uuid.UUID, result *emotion.Analysis) *entity.EmotionAnalysis {
	return &entity.EmotionAnalysis{
		Id:                  uuid.New(),
		EntryId:             entryId,
		Joy:                 result.Joy,
		Sadness:             result.Sadness,
		Anger:               result.Anger,
		Fear:                result.Fear,
		Surprise:            result.Surprise,
		Disgust:             result.Disgust,
		Neutral:             result.Neutral,
		Love:                result.Love,
		Anxiety:             result.Anxiety,
		Excitement:          result.Excitement,
		PrimaryEmotion:      result.PrimaryEmotion,
		PrimaryEmotionScore: result.PrimaryEmotionScore,
		SentimentPolarity:   result.SentimentPolarity,
		Source:              result.Source,
		CreatedAt:           time.Now(),
	}
}
