package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/limbo/studyquest/internal/engine"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/internal/feed"
	"github.com/limbo/studyquest/internal/repository"
	"github.com/limbo/studyquest/pkg/datekey"
	"github.com/limbo/studyquest/pkg/entity"
)

type CheckInService struct {
	checkInsRepo repository.CheckInsRepositoryI
	clock        datekey.Clock
	hub          *feed.Hub
}

func NewCheckInService(checkInsRepo repository.CheckInsRepositoryI, clock datekey.Clock, hub *feed.Hub) *CheckInService {
	if checkInsRepo == nil || clock == nil || hub == nil {
		panic("check-in service: nil dependency")
	}
	return &CheckInService{
		checkInsRepo: checkInsRepo,
		clock:        clock,
		hub:          hub,
	}
}

func (serv *CheckInService) CheckIn(ctx context.Context, uid uuid.UUID) (*entity.CheckInResult, error) {
	today := datekey.Today(serv.clock)
	exists, err := serv.checkInsRepo.Exists(ctx, uid, today)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	created := false
	if !exists {
		err = serv.checkInsRepo.Create(ctx, uid, today)
		switch {
		case err == nil:
			created = true
		// Lost a race with a concurrent check-in of the same user
		case errors.Is(err, errorvalues.ErrCheckInExists):
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		default:
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	streak, err := serv.streak(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	if created {
		serv.hub.Publish(feed.CheckInsTopic(uid))
	}
	return &entity.CheckInResult{
		Created: created,
		DateKey: today,
		Streak:  streak,
	}, nil
}

func (serv *CheckInService) IsCheckedInToday(ctx context.Context, uid uuid.UUID) (bool, error) {
	exists, err := serv.checkInsRepo.Exists(ctx, uid, datekey.Today(serv.clock))
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	return exists, nil
}

func (serv *CheckInService) Streak(ctx context.Context, uid uuid.UUID) (int, error) {
	return serv.streak(ctx, uid, datekey.Today(serv.clock))
}

func (serv *CheckInService) streak(ctx context.Context, uid uuid.UUID, today string) (int, error) {
	keys, err := serv.checkInsRepo.ListDateKeys(ctx, uid)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return engine.Streak(engine.KeySet(keys), today), nil
}

func (serv *CheckInService) WatchStreak(ctx context.Context, uid uuid.UUID) <-chan int {
	return feed.Watch(ctx, serv.hub, feed.CheckInsTopic(uid), func(ctx context.Context) (int, error) {
		return serv.Streak(ctx, uid)
	})
}

func (serv *CheckInService) History(ctx context.Context, uid uuid.UUID, req *HistoryRequest) ([]entity.CheckIn, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, validationError(err)
	}
	// Day keys order lexically
	if req.From > req.To {
		return nil, errorvalues.ErrInvalidRange
	}
	checkIns, err := serv.checkInsRepo.GetByDateRange(ctx, uid, req.From, req.To)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return checkIns, nil
}

func (serv *CheckInService) Stats(ctx context.Context, uid uuid.UUID) (*entity.CheckInStats, error) {
	today := datekey.Today(serv.clock)
	total, err := serv.checkInsRepo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	streak, err := serv.streak(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	return &entity.CheckInStats{
		Total:          total,
		Streak:         streak,
		CheckedInToday: streak > 0,
		Today:          today,
	}, nil
}
