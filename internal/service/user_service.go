package service

import (
	"context"
	"errors"
	"time"

	"echoverse-be/internal/dto"
	"echoverse-be/internal/repository/specification"
	"echoverse-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	res := &dto.UserProfileResponse{
		Id:                    user.Id,
		Email:                 user.Email,
		FullName:              user.FullName,
		Role:                  string(user.Role),
		Status:                string(user.Status),
		Timezone:              profile.Timezone,
		PreferredTone:         profile.PreferredTone,
		EnableWeeklySummaries: profile.EnableWeeklySummaries,
		EnableFutureLetters:   profile.EnableFutureLetters,
		CurrentStreak:         profile.CurrentStreak,
		LongestStreak:         profile.LongestStreak,
		TotalEntries:          profile.TotalEntries,
		TotalWords:            profile.TotalWords,
		LastEntryDate:         profile.LastEntryDate,
		CreatedAt:             user.CreatedAt,
	}
	if user.AvatarURL != nil {
		res.AvatarURL = *user.AvatarURL
	}

	return res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if req.FullName != "" {
		user.FullName = req.FullName
		user.UpdatedAt = time.Now()
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if req.Timezone != "" {
		profile.Timezone = req.Timezone
	}
	if req.PreferredTone != "" {
		profile.PreferredTone = req.PreferredTone
	}
	if req.EnableWeeklySummaries != nil {
		profile.EnableWeeklySummaries = *req.EnableWeeklySummaries
	}
	if req.EnableFutureLetters != nil {
		profile.EnableFutureLetters = *req.EnableFutureLetters
	}
	now := time.Now()
	profile.UpdatedAt = &now

	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userId)
}
