package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"echoverse-be/internal/dto"
	"echoverse-be/internal/repository/memory"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	dashboardCacheTTL     = 60 * time.Second
	dashboardRecentLimit  = 5
	dashboardInsightLimit = 3
)

type IDashboardService interface {
	GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
	Invalidate(userId uuid.UUID)
}

type dashboardService struct {
	uowFactory           unitofwork.RepositoryFactory
	cache                *memory.CacheRepository
	visualizationService IVisualizationService
}

func NewDashboardService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.CacheRepository,
	visualizationService IVisualizationService,
) IDashboardService {
	return &dashboardService{
		uowFactory:           uowFactory,
		cache:                cache,
		visualizationService: visualizationService,
	}
}

func dashboardCacheKey(userId uuid.UUID) string {
	return fmt.Sprintf("dashboard:%s", userId)
}

func (s *dashboardService) Invalidate(userId uuid.UUID) {
	s.cache.Delete(dashboardCacheKey(userId))
}

func (s *dashboardService) GetDashboard(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	if cached, found := s.cache.Get(dashboardCacheKey(userId)); found {
		if res, ok := cached.(*dto.DashboardResponse); ok {
			return res, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	res := &dto.DashboardResponse{
		MoodDistribution: dto.EmotionDistribution{},
		RecentEntries:    []dto.EntryListItem{},
		RecentInsights:   []dto.InsightListItem{},
		RecentVisuals:    []dto.VisualizationResponse{},
		GeneratedAt:      time.Now(),
	}

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile != nil {
		res.TotalEntries = profile.TotalEntries
		res.TotalWords = profile.TotalWords
		res.CurrentStreak = profile.CurrentStreak
		res.LongestStreak = profile.LongestStreak
	}

	now := time.Now()

	weeklyEntries, err := uow.EntryRepository().Count(ctx,
		specification.EntryOwnedByUser{UserID: userId},
		specification.CreatedAfter{Time: now.AddDate(0, 0, -7)},
	)
	if err != nil {
		return nil, err
	}
	res.WeeklyEntries = weeklyEntries

	// Mood distribution over analyzed entries in the trailing 30 days
	analyses, err := uow.EmotionAnalysisRepository().FindForUser(ctx, userId, now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, err
	}
	if len(analyses) > 0 {
		counts := make(map[string]int)
		dominant, best := "", 0
		for _, a := range analyses {
			counts[a.PrimaryEmotion]++
			if counts[a.PrimaryEmotion] > best {
				dominant, best = a.PrimaryEmotion, counts[a.PrimaryEmotion]
			}
		}
		for name, count := range counts {
			res.MoodDistribution[name] = float64(count) / float64(len(analyses))
		}
		res.DominantMood = dominant
	}

	unread, err := uow.InsightRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Filter("is_read", false),
	)
	if err != nil {
		return nil, err
	}
	res.UnreadInsights = unread

	// Recent entries
	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.EntryOwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: dashboardRecentLimit, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	entryIds := make([]uuid.UUID, 0, len(entries))
	for _, entry := range entries {
		entryIds = append(entryIds, entry.Id)
	}
	emotions := make(map[uuid.UUID]string)
	if len(entryIds) > 0 {
		recentAnalyses, err := uow.EmotionAnalysisRepository().FindAll(ctx, specification.ByEntryIDs{EntryIDs: entryIds})
		if err != nil {
			return nil, err
		}
		for _, a := range recentAnalyses {
			emotions[a.EntryId] = a.PrimaryEmotion
		}
	}

	for _, entry := range entries {
		res.RecentEntries = append(res.RecentEntries, dto.EntryListItem{
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

	// Recent insights
	insights, err := uow.InsightRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.UnreadFirst{},
		specification.Pagination{Limit: dashboardInsightLimit, Offset: 0},
	)
	if err != nil {
		return nil, err
	}
	for _, insight := range insights {
		preview := strings.Join(strings.Fields(insight.Content), " ")
		if len([]rune(preview)) > insightPreviewLength {
			preview = truncateRunes(preview, insightPreviewLength) + "..."
		}
		res.RecentInsights = append(res.RecentInsights, dto.InsightListItem{
			Id:          insight.Id,
			InsightType: string(insight.InsightType),
			Title:       insight.Title,
			Preview:     preview,
			Generated:   insight.Generated,
			IsRead:      insight.IsRead,
			CreatedAt:   insight.CreatedAt,
		})
	}

	// Latest mood blob
	latest, err := s.visualizationService.Latest(ctx, userId, "mood_blob")
	if err != nil {
		return nil, err
	}
	if latest != nil {
		res.RecentVisuals = append(res.RecentVisuals, *latest)
	}

	s.cache.Set(dashboardCacheKey(userId), res, dashboardCacheTTL)

	return res, nil
}
