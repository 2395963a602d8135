package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/limbo/studyquest/internal/engine"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/internal/feed"
	"github.com/limbo/studyquest/internal/repository"
	"github.com/limbo/studyquest/pkg/datekey"
	"github.com/limbo/studyquest/pkg/entity"
)

const maxFocusMinutes = 24 * 60

type StudyService struct {
	sessionsRepo repository.StudySessionsRepositoryI
	clock        datekey.Clock
	hub          *feed.Hub
}

func NewStudyService(sessionsRepo repository.StudySessionsRepositoryI, clock datekey.Clock, hub *feed.Hub) *StudyService {
	if sessionsRepo == nil || clock == nil || hub == nil {
		panic("study service: nil dependency")
	}
	return &StudyService{
		sessionsRepo: sessionsRepo,
		clock:        clock,
		hub:          hub,
	}
}

// Record appends one session on today's key. Durations below a minute count as one.
func (serv *StudyService) Record(ctx context.Context, uid uuid.UUID, source string, taskID *string, minutes int) error {
	session := &entity.StudySession{
		ID:              uuid.New(),
		UserID:          uid,
		DayKey:          datekey.Today(serv.clock),
		Source:          source,
		TaskID:          taskID,
		DurationMinutes: engine.StudyMinutes(minutes),
	}
	if err := serv.sessionsRepo.Create(ctx, session); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	serv.hub.Publish(feed.StudyTopic(uid))
	return nil
}

func (serv *StudyService) RecordManualStudy(ctx context.Context, uid uuid.UUID, minutes int) error {
	if minutes <= 0 {
		return nil
	}
	if err := validate.Var(minutes, "max="+strconv.Itoa(maxFocusMinutes)); err != nil {
		return validationError(err)
	}
	return serv.Record(ctx, uid, entity.StudySourceFocus, nil, minutes)
}

func (serv *StudyService) TodayStudyMinutes(ctx context.Context, uid uuid.UUID) (int, error) {
	minutes, err := serv.sessionsRepo.SumMinutes(ctx, uid, datekey.Today(serv.clock))
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return minutes, nil
}

func (serv *StudyService) WatchTodayStudyMinutes(ctx context.Context, uid uuid.UUID) <-chan int {
	return feed.Watch(ctx, serv.hub, feed.StudyTopic(uid), func(ctx context.Context) (int, error) {
		return serv.TodayStudyMinutes(ctx, uid)
	})
}
