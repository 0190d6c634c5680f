package service

import (
	"context"
	"testing"

	"echoverse-be/internal/dto"
	"echoverse-be/internal/entity"
	"echoverse-be/internal/repository/contract"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type schedProfileRepo struct {
	contract.ProfileRepository
	profiles []*entity.UserProfile
}

func (r *schedProfileRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserProfile, error) {
	return r.profiles, nil
}

type schedEntryRepo struct {
	contract.EntryRepository
	analyzedCounts map[uuid.UUID]int64
}

func (r *schedEntryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	for _, spec := range specs {
		if owned, ok := spec.(specification.EntryOwnedByUser); ok {
			return r.analyzedCounts[owned.UserID], nil
		}
	}
	return 0, nil
}

type schedUow struct {
	unitofwork.UnitOfWork
	profiles contract.ProfileRepository
	entries  contract.EntryRepository
}

func (u *schedUow) ProfileRepository() contract.ProfileRepository { return u.profiles }
func (u *schedUow) EntryRepository() contract.EntryRepository     { return u.entries }

type schedUowFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *schedUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type recordingInsightService struct {
	IInsightService
	generated []uuid.UUID
}

func (s *recordingInsightService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateInsightRequest) (*dto.InsightResponse, error) {
	s.generated = append(s.generated, userId)
	return &dto.InsightResponse{Generated: false}, nil
}

func newSchedulerFixture(profiles []*entity.UserProfile, counts map[uuid.UUID]int64) (*InsightScheduler, *recordingInsightService) {
	uow := &schedUow{
		profiles: &schedProfileRepo{profiles: profiles},
		entries:  &schedEntryRepo{analyzedCounts: counts},
	}
	insights := &recordingInsightService{}
	scheduler := NewInsightScheduler(&schedUowFactory{uow: uow}, insights, nil, noopLogger{})
	return scheduler, insights
}

func TestRunWeeklySummaries_SkipsUsersWithoutAnalyzedEntries(t *testing.T) {
	active, idle := uuid.New(), uuid.New()
	profiles := []*entity.UserProfile{
		{Id: uuid.New(), UserId: active, EnableWeeklySummaries: true},
		{Id: uuid.New(), UserId: idle, EnableWeeklySummaries: true},
	}

	scheduler, insights := newSchedulerFixture(profiles, map[uuid.UUID]int64{active: 3})
	scheduler.runWeeklySummaries(context.Background())

	assert.Equal(t, []uuid.UUID{active}, insights.generated)
}

func TestRunFutureLetters_SkipsUsersWithoutAnalyzedEntries(t *testing.T) {
	active, idle := uuid.New(), uuid.New()
	profiles := []*entity.UserProfile{
		{Id: uuid.New(), UserId: active, EnableFutureLetters: true},
		{Id: uuid.New(), UserId: idle, EnableFutureLetters: true},
	}

	scheduler, insights := newSchedulerFixture(profiles, map[uuid.UUID]int64{active: 1})
	scheduler.runFutureLetters(context.Background())

	assert.Equal(t, []uuid.UUID{active}, insights.generated)
}
