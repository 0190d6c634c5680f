package service

import (
	"context"
	"fmt"
	"time"

	"echoverse-be/internal/dto"
	"echoverse-be/internal/entity"
	"echoverse-be/internal/pkg/logger"
	"echoverse-be/internal/pkg/mailer"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const schedulerTick = time.Hour

// InsightScheduler generates recurring insights: weekly summaries every
// Monday and future letters on the first day of each month, for users
// who opted in.
type InsightScheduler struct {
	uowFactory     unitofwork.RepositoryFactory
	insightService IInsightService
	emailService   mailer.IEmailService
	logger         logger.ILogger

	lastWeeklyRun  string
	lastMonthlyRun string
}

func NewInsightScheduler(
	uowFactory unitofwork.RepositoryFactory,
	insightService IInsightService,
	emailService mailer.IEmailService,
	log logger.ILogger,
) *InsightScheduler {
	return &InsightScheduler{
		uowFactory:     uowFactory,
		insightService: insightService,
		emailService:   emailService,
		logger:         log,
	}
}

// Start runs the scheduler loop until ctx is cancelled.
func (s *InsightScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(schedulerTick)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("InsightScheduler", "Scheduler stopped", nil)
				return
			case now := <-ticker.C:
				s.runDue(ctx, now)
			}
		}
	}()

	s.logger.Info("InsightScheduler", "Scheduler started", map[string]interface{}{"tick": schedulerTick.String()})
}

func (s *InsightScheduler) runDue(ctx context.Context, now time.Time) {
	day := now.Format("2006-01-02")

	if now.Weekday() == time.Monday && s.lastWeeklyRun != day {
		s.lastWeeklyRun = day
		s.runWeeklySummaries(ctx)
	}

	if now.Day() == 1 && s.lastMonthlyRun != day {
		s.lastMonthlyRun = day
		s.runFutureLetters(ctx)
	}
}

func (s *InsightScheduler) runWeeklySummaries(ctx context.Context) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().FindAll(ctx, specification.Filter("enable_weekly_summaries", true))
	if err != nil {
		s.logger.Error("InsightScheduler", "Failed to load weekly summary subscribers", map[string]interface{}{"error": err.Error()})
		return
	}

	s.logger.Info("InsightScheduler", "Running weekly summaries", map[string]interface{}{"users": len(profiles)})

	for _, profile := range profiles {
		// Idle users get no summary, not a canned one
		active, err := s.hasAnalyzedEntries(ctx, uow, profile.UserId, 7)
		if err != nil || !active {
			continue
		}

		insight, err := s.insightService.Generate(ctx, profile.UserId, &dto.GenerateInsightRequest{
			InsightType: string(entity.InsightTypeWeeklySummary),
		})
		if err != nil {
			s.logger.Error("InsightScheduler", "Weekly summary failed", map[string]interface{}{
				"user_id": profile.UserId.String(), "error": err.Error(),
			})
			continue
		}

		if !insight.Generated {
			continue
		}

		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: profile.UserId})
		if err != nil || user == nil {
			continue
		}

		go func(email, name, summary string) {
			if err := s.emailService.SendWeeklyDigest(email, name, summary); err != nil {
				fmt.Printf("Error sending weekly digest to %s: %v\n", email, err)
			}
		}(user.Email, user.FullName, insight.Content)
	}
}

func (s *InsightScheduler) hasAnalyzedEntries(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, days int) (bool, error) {
	count, err := uow.EntryRepository().Count(ctx,
		specification.EntryOwnedByUser{UserID: userId},
		specification.IsAnalyzed{Analyzed: true},
		specification.CreatedAfter{Time: time.Now().AddDate(0, 0, -days)},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *InsightScheduler) runFutureLetters(ctx context.Context) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profiles, err := uow.ProfileRepository().FindAll(ctx, specification.Filter("enable_future_letters", true))
	if err != nil {
		s.logger.Error("InsightScheduler", "Failed to load future letter subscribers", map[string]interface{}{"error": err.Error()})
		return
	}

	s.logger.Info("InsightScheduler", "Running future letters", map[string]interface{}{"users": len(profiles)})

	for _, profile := range profiles {
		active, err := s.hasAnalyzedEntries(ctx, uow, profile.UserId, 30)
		if err != nil || !active {
			continue
		}

		_, err = s.insightService.Generate(ctx, profile.UserId, &dto.GenerateInsightRequest{
			InsightType: string(entity.InsightTypeFutureLetter),
			MonthsAhead: defaultMonthsAhead,
		})
		if err != nil {
			s.logger.Error("InsightScheduler", "Future letter failed", map[string]interface{}{
				"user_id": profile.UserId.String(), "error": err.Error(),
			})
		}
	}
}
