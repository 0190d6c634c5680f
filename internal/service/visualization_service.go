package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"echoverse-be/internal/dto"
	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"
	"echoverse-be/pkg/blob"
	"echoverse-be/pkg/emotion"

	"github.com/google/uuid"
)

type IVisualizationService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateVisualizationRequest) (*dto.VisualizationResponse, error)
	Latest(ctx context.Context, userId uuid.UUID, vizType string) (*dto.VisualizationResponse, error)
	List(ctx context.Context, userId uuid.UUID) (*dto.ListVisualizationsResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type visualizationService struct {
	uowFactory unitofwork.RepositoryFactory
	uploadDir  string
	baseURL    string
}

func NewVisualizationService(uowFactory unitofwork.RepositoryFactory, uploadDir, baseURL string) IVisualizationService {
	return &visualizationService{
		uowFactory: uowFactory,
		uploadDir:  uploadDir,
		baseURL:    baseURL,
	}
}

func (s *visualizationService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateVisualizationRequest) (*dto.VisualizationResponse, error) {
	vizType := entity.VisualizationType(req.VizType)
	if vizType != entity.VisualizationTypeMoodBlob {
		return nil, errors.New("unsupported visualization type")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	start := now.AddDate(0, 0, -7)
	end := now
	if req.PeriodStart != "" {
		if t, err := time.Parse("2006-01-02", req.PeriodStart); err == nil {
			start = t
		}
	}
	if req.PeriodEnd != "" {
		if t, err := time.Parse("2006-01-02", req.PeriodEnd); err == nil {
			end = t.AddDate(0, 0, 1)
		}
	}

	analyses, err := uow.EmotionAnalysisRepository().FindForUser(ctx, userId, start, end)
	if err != nil {
		return nil, err
	}
	if len(analyses) == 0 {
		return nil, errors.New("no analyzed entries in this period")
	}

	// Latest analysis drives the blob, earlier ones become its history
	latest := analyses[len(analyses)-1]
	current := analysisToScores(latest)

	history := make([]blob.Snapshot, 0, len(analyses)-1)
	for _, a := range analyses[:len(analyses)-1] {
		history = append(history, blob.Snapshot{
			PrimaryEmotion:    a.PrimaryEmotion,
			SentimentPolarity: a.SentimentPolarity,
		})
	}

	png, params, err := blob.Render(current, history)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.uploadDir, "blobs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	id := uuid.New()
	imagePath := filepath.Join(dir, fmt.Sprintf("%s.png", id))
	if err := os.WriteFile(imagePath, png, 0o644); err != nil {
		return nil, err
	}

	visualization := &entity.Visualization{
		Id:        id,
		UserId:    userId,
		VizType:   vizType,
		ImagePath: imagePath,
		Parameters: map[string]interface{}{
			"radius":     params.Radius,
			"variation":  params.Variation,
			"seed":       params.Seed,
			"complexity": params.Complexity,
			"sentiment":  params.Sentiment,
			"emotion":    latest.PrimaryEmotion,
		},
		EntryCount:  len(analyses),
		PeriodStart: start,
		PeriodEnd:   end,
		CreatedAt:   time.Now(),
	}

	// Only the newest blob per user is kept
	previous, err := uow.VisualizationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByVizType{VizType: string(vizType)},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, old := range previous {
		if err := uow.VisualizationRepository().Delete(ctx, old.Id); err != nil {
			return nil, err
		}
	}

	if err := uow.VisualizationRepository().Create(ctx, visualization); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	for _, old := range previous {
		if old.ImagePath != "" {
			_ = os.Remove(old.ImagePath)
		}
	}

	return s.toResponse(visualization), nil
}

func analysisToScores(a *entity.EmotionAnalysis) *emotion.Analysis {
	return &emotion.Analysis{
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
	}
}

func (s *visualizationService) toResponse(v *entity.Visualization) *dto.VisualizationResponse {
	return &dto.VisualizationResponse{
		Id:          v.Id,
		VizType:     string(v.VizType),
		ImageURL:    fmt.Sprintf("%s/%s", s.baseURL, filepath.ToSlash(v.ImagePath)),
		Parameters:  v.Parameters,
		EntryCount:  v.EntryCount,
		PeriodStart: v.PeriodStart,
		PeriodEnd:   v.PeriodEnd,
		CreatedAt:   v.CreatedAt,
	}
}

func (s *visualizationService) Latest(ctx context.Context, userId uuid.UUID, vizType string) (*dto.VisualizationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 1, Offset: 0},
	}
	if vizType != "" {
		specs = append(specs, specification.ByVizType{VizType: vizType})
	}

	visualization, err := uow.VisualizationRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if visualization == nil {
		return nil, nil
	}

	return s.toResponse(visualization), nil
}

func (s *visualizationService) List(ctx context.Context, userId uuid.UUID) (*dto.ListVisualizationsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.VisualizationRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	visualizations, err := uow.VisualizationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.VisualizationResponse, 0, len(visualizations))
	for _, v := range visualizations {
		items = append(items, *s.toResponse(v))
	}

	return &dto.ListVisualizationsResponse{
		Visualizations: items,
		Total:          total,
	}, nil
}

func (s *visualizationService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	visualization, err := uow.VisualizationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if visualization == nil {
		return nil
	}

	if err := uow.VisualizationRepository().Delete(ctx, id); err != nil {
		return err
	}

	if visualization.ImagePath != "" {
		_ = os.Remove(visualization.ImagePath)
	}

	return nil
}
