package service_test

import (
	"context"
	"os"
	"testing"

	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/internal/feed"
	"github.com/limbo/studyquest/internal/repository"
	"github.com/limbo/studyquest/internal/service"
	"github.com/limbo/studyquest/pkg/datekey"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/limbo/studyquest/pkg/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyFlowIntegrational(t *testing.T) {
	if os.Getenv("STUDYQUEST_INTEGRATION") != "1" {
		t.Skip("set STUDYQUEST_INTEGRATION=1 to run against a postgres container")
	}
	ctx := context.Background()
	pool, err := repository.Connect(ctx, setupTestDB(t))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	clock := datekey.FixedClock(testNow)
	hub := feed.NewHub()
	users := service.NewUserService(repository.NewUsersRepo(pool))
	study := service.NewStudyService(repository.NewStudySessionsRepo(pool), clock, hub)
	tasks := service.NewTaskService(repository.NewTasksRepo(pool), study, clock, hub)
	checkIns := service.NewCheckInService(repository.NewCheckInsRepo(pool), clock, hub)

	user, err := users.Register(ctx, &service.RegisterRequest{Name: "flow_user", Password: "flow_password", Grade: "grade_7"})
	require.NoError(t, err)
	uid := user.ID

	t.Run("daily tasks are created once", func(t *testing.T) {
		created, err := tasks.EnsureDailyTasks(ctx, uid, user.Grade)
		require.NoError(t, err)
		assert.Len(t, created, len(entity.DefaultDailyTemplates))
		again, err := tasks.EnsureDailyTasks(ctx, uid, user.Grade)
		require.NoError(t, err)
		assert.Empty(t, again)
		active, err := tasks.ListActiveTasks(ctx, uid, user.Grade)
		require.NoError(t, err)
		assert.Len(t, active, len(entity.DefaultDailyTemplates))
	})

	t.Run("grade change moves open daily tasks", func(t *testing.T) {
		moved, err := tasks.EnsureDailyTasks(ctx, uid, "grade_8")
		require.NoError(t, err)
		assert.Len(t, moved, len(entity.DefaultDailyTemplates))
		active, err := tasks.ListActiveTasks(ctx, uid, "grade_8")
		require.NoError(t, err)
		assert.Len(t, active, len(entity.DefaultDailyTemplates))
		back, err := tasks.EnsureDailyTasks(ctx, uid, user.Grade)
		require.NoError(t, err)
		assert.Len(t, back, len(entity.DefaultDailyTemplates))
	})

	t.Run("quiz completion writes one session", func(t *testing.T) {
		saved, err := tasks.SaveTasks(ctx, uid, []entity.Task{{
			ID:               "quiz_1",
			Title:            "Fractions quiz",
			Type:             entity.TaskTypePractice,
			EstimatedMinutes: 15,
			Action:           fourQuestionQuiz(),
		}})
		require.NoError(t, err)
		require.Len(t, saved, 1)

		p, err := tasks.GetTaskPayload(ctx, uid, "quiz_1")
		require.NoError(t, err)
		assert.Equal(t, fourQuestionQuiz(), p)

		result, err := tasks.SubmitQuiz(ctx, uid, "quiz_1", []int{1, 1, 1, 0})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, result.Status)

		_, err = tasks.SubmitQuiz(ctx, uid, "quiz_1", []int{1, 1, 1, 1})
		assert.Error(t, err)

		minutes, err := study.TodayStudyMinutes(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 15, minutes)
		count, err := tasks.CompletedTaskCount(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = tasks.SaveTasks(ctx, uid, []entity.Task{{ID: "quiz_1", Title: "Fractions quiz", Type: entity.TaskTypePractice}})
		assert.ErrorIs(t, err, errorvalues.ErrTaskAlreadyCompleted)
		task, err := tasks.GetTask(ctx, uid, "quiz_1")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, task.Status)
	})

	t.Run("exercise partial progress", func(t *testing.T) {
		_, err := tasks.SaveTasks(ctx, uid, []entity.Task{{
			ID:     "exercise_1",
			Title:  "Ten problems",
			Type:   entity.TaskTypePractice,
			Action: payload.Exercise{Items: []string{"p1"}, TotalCount: 10},
		}})
		require.NoError(t, err)
		result, err := tasks.SubmitExercise(ctx, uid, "exercise_1", 6)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusInProgress, result.Status)
		task, err := tasks.GetTask(ctx, uid, "exercise_1")
		require.NoError(t, err)
		assert.InDelta(t, 0.6, task.Progress, 1e-9)
		assert.Nil(t, task.CompletedAt)
	})

	t.Run("check-in is idempotent", func(t *testing.T) {
		first, err := checkIns.CheckIn(ctx, uid)
		require.NoError(t, err)
		assert.True(t, first.Created)
		assert.Equal(t, 1, first.Streak)
		second, err := checkIns.CheckIn(ctx, uid)
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Equal(t, 1, second.Streak)
	})
}
