package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/internal/feed"
	"github.com/limbo/studyquest/internal/repository/mocks"
	"github.com/limbo/studyquest/internal/service"
	"github.com/limbo/studyquest/pkg/datekey"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionMatcher matches a study session by everything but its random id.
type sessionMatcher struct {
	uid     uuid.UUID
	source  string
	taskID  *string
	minutes int
}

func (m sessionMatcher) Matches(x interface{}) bool {
	s, ok := x.(*entity.StudySession)
	if !ok {
		return false
	}
	if (s.TaskID == nil) != (m.taskID == nil) || (s.TaskID != nil && *s.TaskID != *m.taskID) {
		return false
	}
	return s.ID != uuid.Nil && s.UserID == m.uid && s.DayKey == testToday &&
		s.Source == m.source && s.DurationMinutes == m.minutes
}

func (m sessionMatcher) String() string {
	return "study session of " + m.source
}

func TestRecordManualStudy(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	sessionsRepo := mocks.NewMockStudySessionsRepositoryI(ctrl)
	serv := service.NewStudyService(sessionsRepo, datekey.FixedClock(testNow), feed.NewHub())
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Minutes      int
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:    "focus session recorded",
			Minutes: 25,
			MockPrepFunc: func() {
				sessionsRepo.EXPECT().Create(gomock.Any(), sessionMatcher{uid: uid, source: "FOCUS", minutes: 25}).Return(nil)
			},
		},
		{
			Desc:         "zero minutes ignored",
			Minutes:      0,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "negative minutes ignored",
			Minutes:      -5,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "longer than a day",
			Minutes:      1441,
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:    "unknown user",
			Minutes: 10,
			Error:   errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				sessionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.RecordManualStudy(ctx, uid, tc.Minutes)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecordClampsToOneMinute(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	sessionsRepo := mocks.NewMockStudySessionsRepositoryI(ctrl)
	serv := service.NewStudyService(sessionsRepo, datekey.FixedClock(testNow), feed.NewHub())
	uid := uuid.New()
	taskID := "reading_1"
	sessionsRepo.EXPECT().Create(gomock.Any(), sessionMatcher{uid: uid, source: "TASK_READING", taskID: &taskID, minutes: 1}).Return(nil)
	assert.NoError(t, serv.Record(context.Background(), uid, "TASK_READING", &taskID, 0))
}

func TestTodayStudyMinutes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	sessionsRepo := mocks.NewMockStudySessionsRepositoryI(ctrl)
	serv := service.NewStudyService(sessionsRepo, datekey.FixedClock(testNow), feed.NewHub())
	uid := uuid.New()
	ctx := context.Background()

	sessionsRepo.EXPECT().SumMinutes(gomock.Any(), uid, testToday).Return(70, nil)
	minutes, err := serv.TodayStudyMinutes(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, 70, minutes)

	sessionsRepo.EXPECT().SumMinutes(gomock.Any(), uid, testToday).Return(0, errors.New("db error"))
	_, err = serv.TodayStudyMinutes(ctx, uid)
	assert.EqualError(t, err, "repository error: db error")
}

func TestWatchTodayStudyMinutes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	sessionsRepo := mocks.NewMockStudySessionsRepositoryI(ctrl)
	serv := service.NewStudyService(sessionsRepo, datekey.FixedClock(testNow), feed.NewHub())
	uid := uuid.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		sessionsRepo.EXPECT().SumMinutes(gomock.Any(), uid, testToday).Return(10, nil),
		sessionsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		sessionsRepo.EXPECT().SumMinutes(gomock.Any(), uid, testToday).Return(40, nil),
	)
	minutes := serv.WatchTodayStudyMinutes(ctx, uid)
	assert.Equal(t, 10, receive(t, minutes))
	require.NoError(t, serv.RecordManualStudy(ctx, uid, 30))
	assert.Equal(t, 40, receive(t, minutes))
}
