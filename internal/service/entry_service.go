package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"echoverse-be/internal/dto"
	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"
	"echoverse-be/pkg/embedding"
	"echoverse-be/pkg/events"
	pktNats "echoverse-be/pkg/nats"
	"echoverse-be/pkg/utils"

	"github.com/google/uuid"
)

const (
	defaultListLimit   = 10
	maxListLimit       = 100
	defaultSearchLimit = 10
	previewLength      = 150
)

type IEntryService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEntryRequest) (*dto.CreateEntryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowEntryResponse, error)
	List(ctx context.Context, userId uuid.UUID, req *dto.ListEntriesRequest) (*dto.ListEntriesResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEntryRequest) (*dto.UpdateEntryResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Search(ctx context.Context, userId uuid.UUID, req *dto.SearchEntriesRequest) ([]*dto.SearchEntryResult, error)
	Reanalyze(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ReanalyzeEntryResponse, error)
}

type entryService struct {
	uowFactory          unitofwork.RepositoryFactory
	publisherService    IPublisherService
	embeddingProvider   embedding.EmbeddingProvider
	eventPublisher      *pktNats.Publisher
	similarityThreshold float64
}

func NewEntryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
	similarityThreshold float64,
) IEntryService {
	return &entryService{
		uowFactory:          uowFactory,
		publisherService:    publisherService,
		embeddingProvider:   embeddingProvider,
		eventPublisher:      eventPublisher,
		similarityThreshold: similarityThreshold,
	}
}

// previewText returns the first previewLength runes of content on a single line.
func previewText(content string) string {
	flat := strings.Join(strings.Fields(content), " ")
	runes := []rune(flat)
	if len(runes) <= previewLength {
		return flat
	}
	return string(runes[:previewLength]) + "..."
}

// applyEntryToStreak updates the profile counters for one new entry
// written at now. Consecutive-day writing extends the streak, a gap
// resets it, and multiple entries on the same day leave it unchanged.
func applyEntryToStreak(profile *entity.UserProfile, wordCount int, now time.Time) {
	loc := time.UTC
	if profile.Timezone != "" {
		if l, err := time.LoadLocation(profile.Timezone); err == nil {
			loc = l
		}
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	if profile.LastEntryDate == nil {
		profile.CurrentStreak = 1
	} else {
		last := profile.LastEntryDate.In(loc)
		lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, loc)
		daysDiff := int(today.Sub(lastDay).Hours() / 24)

		switch {
		case daysDiff == 0:
			// Same day, streak unchanged
		case daysDiff == 1:
			profile.CurrentStreak++
		default:
			profile.CurrentStreak = 1
		}
	}

	if profile.CurrentStreak > profile.LongestStreak {
		profile.LongestStreak = profile.CurrentStreak
	}

	profile.TotalEntries++
	profile.TotalWords += wordCount
	profile.LastEntryDate = &today
	updated := now
	profile.UpdatedAt = &updated
}

func (s *entryService) queueAnalysis(ctx context.Context, entryId uuid.UUID) error {
	payload := dto.PublishAnalyzeEntryMessage{EntryId: entryId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payloadJson)
}

func (s *entryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEntryRequest) (*dto.CreateEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	entry := entity.Entry{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		WordCount: utils.CountWords(req.Content),
		UserId:    userId,
		CreatedAt: now,
	}

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.EntryRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	if profile != nil {
		applyEntryToStreak(profile, entry.WordCount, now)
		if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.queueAnalysis(ctx, entry.Id); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(events.TypeEntryCreated, map[string]interface{}{
			"title":       entry.Title,
			"entry_id":    entry.Id.String(),
			"user_id":     userId.String(),
			"entity_type": "entry",
			"entity_id":   entry.Id.String(),
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish ENTRY_CREATED event: %v\n", err)
		}
	}

	return &dto.CreateEntryResponse{Id: entry.Id}, nil
}

func (s *entryService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	res := &dto.ShowEntryResponse{
		Id:         entry.Id,
		Title:      entry.Title,
		Content:    entry.Content,
		WordCount:  entry.WordCount,
		IsAnalyzed: entry.IsAnalyzed,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}

	analysis, err := uow.EmotionAnalysisRepository().FindOne(ctx, specification.ByEntryID{EntryID: entry.Id})
	if err != nil {
		return nil, err
	}
	if analysis != nil {
		res.Analysis = analysisToDTO(analysis)
	}

	return res, nil
}

func analysisToDTO(a *entity.EmotionAnalysis) *dto.EmotionAnalysisDTO {
	return &dto.EmotionAnalysisDTO{
		Joy:                 a.Joy,
		Sadness:             a.Sadness,
		Anger:               a.Anger,
		Fear:                a.Fear,
		Surprise:            a.Surprise,
		Disgust:             a.Disgust,
		Neutral:             a.Neutral,
		Love:                a.Love,
		Anxiety:             a.Anxiety,
		Excitement:          a.Excitement,
		PrimaryEmotion:      a.PrimaryEmotion,
		PrimaryEmotionScore: a.PrimaryEmotionScore,
		SentimentPolarity:   a.SentimentPolarity,
		Source:              a.Source,
		AnalyzedAt:          a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func (s *entryService) List(ctx context.Context, userId uuid.UUID, req *dto.ListEntriesRequest) (*dto.ListEntriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filters := []specification.Specification{
		specification.EntryOwnedByUser{UserID: userId},
	}

	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err == nil {
			filters = append(filters, specification.CreatedAfter{Time: start})
		}
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err == nil {
			// End date is inclusive
			filters = append(filters, specification.CreatedBefore{Time: end.AddDate(0, 0, 1)})
		}
	}
	if req.PrimaryEmotion != "" {
		filters = append(filters, specification.ByPrimaryEmotion{Emotion: req.PrimaryEmotion})
	}

	total, err := uow.EntryRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	entries, err := uow.EntryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	emotions, err := s.primaryEmotionsFor(ctx, uow, entries)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EntryListItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.EntryListItem{
			Id:             entry.Id,
			Title:          entry.Title,
			Preview:        previewText(entry.Content),
			WordCount:      entry.WordCount,
			IsAnalyzed:     entry.IsAnalyzed,
			PrimaryEmotion: emotions[entry.Id],
			CreatedAt:      entry.CreatedAt,
			UpdatedAt:      entry.UpdatedAt,
		})
	}

	return &dto.ListEntriesResponse{
		Entries: items,
		Page:    page,
		Limit:   limit,
		Total:   total,
	}, nil
}

func (s *entryService) primaryEmotionsFor(ctx context.Context, uow unitofwork.UnitOfWork, entries []*entity.Entry) (map[uuid.UUID]string, error) {
	emotions := make(map[uuid.UUID]string)
	if len(entries) == 0 {
		return emotions, nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.Id)
	}

	analyses, err := uow.EmotionAnalysisRepository().FindAll(ctx, specification.ByEntryIDs{EntryIDs: ids})
	if err != nil {
		return nil, err
	}
	for _, a := range analyses {
		emotions[a.EntryId] = a.PrimaryEmotion
	}
	return emotions, nil
}

func (s *entryService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEntryRequest) (*dto.UpdateEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	now := time.Now()
	oldWordCount := entry.WordCount

	entry.Title = req.Title
	entry.Content = req.Content
	entry.WordCount = utils.CountWords(req.Content)
	entry.IsAnalyzed = false
	entry.UpdatedAt = &now

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	if delta := entry.WordCount - oldWordCount; delta != 0 {
		profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
		if err != nil {
			return nil, err
		}
		if profile != nil {
			profile.TotalWords += delta
			profile.UpdatedAt = &now
			if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.queueAnalysis(ctx, entry.Id); err != nil {
		return nil, err
	}

	return &dto.UpdateEntryResponse{Id: entry.Id}, nil
}

func (s *entryService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.EntryRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.EntryEmbeddingRepository().DeleteByEntryId(ctx, id); err != nil {
		return err
	}

	if err := uow.EmotionAnalysisRepository().DeleteByEntryId(ctx, id); err != nil {
		return err
	}

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if profile != nil {
		profile.TotalEntries--
		if profile.TotalEntries < 0 {
			profile.TotalEntries = 0
		}
		profile.TotalWords -= entry.WordCount
		if profile.TotalWords < 0 {
			profile.TotalWords = 0
		}
		now := time.Now()
		profile.UpdatedAt = &now
		if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *entryService) Search(ctx context.Context, userId uuid.UUID, req *dto.SearchEntriesRequest) ([]*dto.SearchEntryResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit < 1 {
		limit = defaultSearchLimit
	}

	embeddingRes, err := s.embeddingProvider.Generate(req.Query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, err
	}

	scoredResults, err := uow.EntryEmbeddingRepository().SearchSimilarWithScore(
		ctx, embeddingRes.Embedding.Values, limit, userId, s.similarityThreshold,
	)
	if err != nil {
		return nil, err
	}

	if len(scoredResults) == 0 {
		return []*dto.SearchEntryResult{}, nil
	}

	// Deduplicate chunks: keep the best score per entry, preserving rank order
	ids := make([]uuid.UUID, 0)
	scoreMap := make(map[uuid.UUID]float64)
	for _, sr := range scoredResults {
		if _, seen := scoreMap[sr.Embedding.EntryId]; !seen {
			ids = append(ids, sr.Embedding.EntryId)
			scoreMap[sr.Embedding.EntryId] = sr.Similarity
		}
	}

	fetched, err := uow.EntryRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	byId := make(map[uuid.UUID]*entity.Entry, len(fetched))
	for _, entry := range fetched {
		byId[entry.Id] = entry
	}

	ordered := make([]*entity.Entry, 0, len(ids))
	for _, id := range ids {
		if entry, ok := byId[id]; ok {
			ordered = append(ordered, entry)
		}
	}

	emotions, err := s.primaryEmotionsFor(ctx, uow, ordered)
	if err != nil {
		return nil, err
	}

	results := make([]*dto.SearchEntryResult, 0, len(ordered))
	for _, entry := range ordered {
		results = append(results, &dto.SearchEntryResult{
			Id:             entry.Id,
			Title:          entry.Title,
			Preview:        previewText(entry.Content),
			PrimaryEmotion: emotions[entry.Id],
			CreatedAt:      entry.CreatedAt,
			UpdatedAt:      entry.UpdatedAt,
			RelevanceScore: scoreMap[entry.Id],
		})
	}

	return results, nil
}

func (s *entryService) Reanalyze(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ReanalyzeEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	now := time.Now()
	entry.IsAnalyzed = false
	entry.UpdatedAt = &now
	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	if err := s.queueAnalysis(ctx, entry.Id); err != nil {
		return nil, err
	}

	return &dto.ReanalyzeEntryResponse{Id: entry.Id, Queued: true}, nil
}
