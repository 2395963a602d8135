package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/studyquest/internal/api"
	"github.com/limbo/studyquest/internal/engine"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/internal/service"
	"github.com/limbo/studyquest/internal/service/mocks"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/limbo/studyquest/pkg/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taskID = "dyn_algebra_1"

func TestListTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: &UserServiceMock{success: true},
		TaskService: tService,
	})
	tasks := []entity.Task{
		{ID: "daily_checkin_2024-03-15", Title: "Daily check-in", Type: entity.TaskTypeDaily, Status: entity.StatusPending},
		{ID: taskID, Title: "Algebra", Type: entity.TaskTypeChallenge, Status: entity.StatusInProgress, Progress: 0.5},
	}
	testCases := []struct {
		Desc          string
		Query         string
		ExpectedCode  int
		ExpectedGrade string
		MockPrepFunc  func()
	}{
		{
			Desc:          "user grade by default",
			ExpectedCode:  http.StatusOK,
			ExpectedGrade: grade,
			MockPrepFunc: func() {
				tService.EXPECT().ListTasks(gomock.Any(), uid, grade).Return(tasks, nil)
			},
		},
		{
			Desc:          "grade from query",
			Query:         "?grade=grade_9",
			ExpectedCode:  http.StatusOK,
			ExpectedGrade: "grade_9",
			MockPrepFunc: func() {
				tService.EXPECT().ListTasks(gomock.Any(), uid, "grade_9").Return(tasks, nil)
			},
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().ListTasks(gomock.Any(), uid, grade).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks"+tc.Query, nil)
			serv.ListTasks(rr, authorized(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				var resp api.TasksResponse
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tc.ExpectedGrade, resp.Grade)
				assert.Len(t, resp.Tasks, 2)
			}
		})
	}
}

func TestGetTaskPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TaskService: tService,
	})
	quiz := payload.Quiz{
		Questions: []payload.QuizQuestion{{Question: "2+2", Options: []string{"3", "4"}, CorrectIndex: 1}},
		PassRate:  0.6,
	}
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "quiz payload",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().GetTaskPayload(gomock.Any(), uid, taskID).Return(quiz, nil)
			},
		},
		{
			Desc:         "no action",
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				tService.EXPECT().GetTaskPayload(gomock.Any(), uid, taskID).Return(nil, errorvalues.ErrActionTypeMismatch)
			},
		},
		{
			Desc:         "another user's task",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				tService.EXPECT().GetTaskPayload(gomock.Any(), uid, taskID).Return(nil, errorvalues.ErrWrongOwner)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+taskID+"/payload", nil)
			serv.GetTaskPayload(rr, withTaskID(r, taskID))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				assert.JSONEq(t, `{"task_id":"dyn_algebra_1","action_type":"QUIZ","payload":{"questions":[{"question":"2+2","options":["3","4"],"correctIndex":1}],"passRate":0.6}}`,
					rr.Body.String())
			}
		})
	}
}

func TestSubmitQuiz(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TaskService: tService,
	})
	answers := []int{1, 0, 2, 3}
	testCases := []struct {
		Desc         string
		Body         io.Reader
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "passed",
			Body:         strings.NewReader(`{"answers":[1,0,2,3]}`),
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().SubmitQuiz(gomock.Any(), uid, taskID, answers).Return(&entity.CompletionResult{
					TaskID:   taskID,
					Status:   entity.StatusCompleted,
					Score:    1,
					Progress: 1,
					Message:  "Quiz passed: 4/4 correct (100%)",
				}, nil)
			},
		},
		{
			Desc:         "answer count mismatch",
			Body:         strings.NewReader(`{"answers":[1,0,2,3]}`),
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				tService.EXPECT().SubmitQuiz(gomock.Any(), uid, taskID, answers).Return(nil, errorvalues.ErrAnswerCountMismatch)
			},
		},
		{
			Desc:         "already completed",
			Body:         strings.NewReader(`{"answers":[1,0,2,3]}`),
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				tService.EXPECT().SubmitQuiz(gomock.Any(), uid, taskID, answers).Return(nil, errorvalues.ErrTaskAlreadyCompleted)
			},
		},
		{
			Desc:         "corrupted body",
			Body:         strings.NewReader("corrupted"),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/"+taskID+"/quiz", tc.Body)
			serv.SubmitQuiz(rr, withTaskID(r, taskID))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestSubmitQuizBelowPassRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TaskService: tService,
	})
	failure := &engine.QuizFailure{Correct: 2, Total: 4, Score: 0.5, PassRate: 0.6}
	tService.EXPECT().SubmitQuiz(gomock.Any(), uid, taskID, []int{1, 1, 1, 1}).Return(nil, failure)

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/"+taskID+"/quiz", strings.NewReader(`{"answers":[1,1,1,1]}`))
	serv.SubmitQuiz(rr, withTaskID(r, taskID))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Result().StatusCode)
	var resp api.QuizFailureResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Correct)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 0.6, resp.PassRate)
	assert.Contains(t, resp.Message, "60%")
}

func TestSubmitConfirmations(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TaskService: tService,
	})
	done := &entity.CompletionResult{TaskID: taskID, Status: entity.StatusCompleted, Score: 1, Progress: 1}

	tService.EXPECT().SubmitReading(gomock.Any(), uid, taskID).Return(done, nil)
	rr := httptest.NewRecorder()
	serv.SubmitReading(rr, withTaskID(httptest.NewRequest(http.MethodPost, "/", nil), taskID))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)

	tService.EXPECT().SubmitVideo(gomock.Any(), uid, taskID).Return(nil, errorvalues.ErrActionTypeMismatch)
	rr = httptest.NewRecorder()
	serv.SubmitVideo(rr, withTaskID(httptest.NewRequest(http.MethodPost, "/", nil), taskID))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Result().StatusCode)

	tService.EXPECT().SubmitMemorization(gomock.Any(), uid, taskID).Return(nil, errorvalues.ErrTaskStateConflict)
	rr = httptest.NewRecorder()
	serv.SubmitMemorization(rr, withTaskID(httptest.NewRequest(http.MethodPost, "/", nil), taskID))
	assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
}

func TestSubmitExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TaskService: tService,
	})
	tService.EXPECT().SubmitExercise(gomock.Any(), uid, taskID, 2).Return(&entity.CompletionResult{
		TaskID:   taskID,
		Status:   entity.StatusInProgress,
		Score:    0.5,
		Progress: 0.5,
		Message:  "2/4 items done",
	}, nil)
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"checked":2}`))
	serv.SubmitExercise(rr, withTaskID(r, taskID))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp entity.CompletionResult
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, entity.StatusInProgress, resp.Status)
	assert.Equal(t, 0.5, resp.Progress)
}

func TestSaveTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TaskService: tService,
	})
	minutes := 15
	testCases := []struct {
		Desc         string
		Body         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc: "reading task",
			Body: `{"tasks":[{"id":"gen_1","title":"Read chapter","type":"PRACTICE","difficulty":"EASY",` +
				`"action_type":"READING","action_payload":{"title":"Ch1","content":"text","durationMinutes":15}}]}`,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				tService.EXPECT().SaveTasks(gomock.Any(), uid, gomock.Any()).DoAndReturn(
					func(ctx context.Context, id uuid.UUID, tasks []entity.Task) ([]entity.Task, error) {
						require.Len(t, tasks, 1)
						assert.Equal(t, payload.KindReading, tasks[0].ActionType)
						assert.Equal(t, payload.Reading{Title: "Ch1", Content: "text", DurationMinutes: &minutes}, tasks[0].Action)
						return tasks, nil
					})
			},
		},
		{
			Desc:         "plain task",
			Body:         `{"tasks":[{"id":"gen_2","title":"Think","type":"REVIEW"}]}`,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				tService.EXPECT().SaveTasks(gomock.Any(), uid, gomock.Any()).DoAndReturn(
					func(ctx context.Context, id uuid.UUID, tasks []entity.Task) ([]entity.Task, error) {
						assert.Nil(t, tasks[0].Action)
						assert.Empty(t, tasks[0].ActionType)
						return tasks, nil
					})
			},
		},
		{
			Desc:         "quiz without questions",
			Body:         `{"tasks":[{"id":"gen_3","title":"Quiz","type":"PRACTICE","action_type":"QUIZ","action_payload":{"questions":[],"passRate":0.5}}]}`,
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unknown action type",
			Body:         `{"tasks":[{"id":"gen_4","title":"Dance","type":"PRACTICE","action_type":"DANCE","action_payload":{}}]}`,
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "payload without action type",
			Body:         `{"tasks":[{"id":"gen_5","title":"Odd","type":"PRACTICE","action_payload":{"items":["a"]}}]}`,
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "validation failure",
			Body:         `{"tasks":[{"id":"gen_6","title":"","type":"PRACTICE"}]}`,
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				tService.EXPECT().SaveTasks(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrValidation)
			},
		},
		{
			Desc:         "completed task",
			Body:         `{"tasks":[{"id":"gen_7","title":"Redo","type":"PRACTICE"}]}`,
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				tService.EXPECT().SaveTasks(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrTaskAlreadyCompleted)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(tc.Body))
			serv.SaveTasks(rr, authorized(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestGenerateDynamicTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TaskService: tService,
	})
	mastery := map[string]float64{"algebra": 0.2, "geometry": 0.7}
	body, err := sonic.ConfigDefault.Marshal(api.MasteryRequest{Mastery: mastery})
	require.NoError(t, err)

	tService.EXPECT().GenerateDynamicTask(gomock.Any(), uid, &service.MasteryRequest{Mastery: mastery}).Return(&entity.Task{
		ID:         taskID,
		Title:      "Challenge: algebra",
		Type:       entity.TaskTypeChallenge,
		Difficulty: entity.DifficultyExpert,
		Status:     entity.StatusPending,
		CreatedAt:  time.Now(),
	}, nil)
	rr := httptest.NewRecorder()
	serv.GenerateDynamicTask(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/tasks/dynamic", bytes.NewReader(body))))
	assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)

	tService.EXPECT().GenerateDynamicTask(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrInvalidMastery)
	rr = httptest.NewRecorder()
	serv.GenerateDynamicTask(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/tasks/dynamic",
		strings.NewReader(`{"mastery":{"algebra":1.5}}`))))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Result().StatusCode)
}

func TestCompleteChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		TaskService: tService,
	})
	tService.EXPECT().CompleteChallengeByTitle(gomock.Any(), uid, "Sprint").Return(&entity.CompletionResult{
		TaskID: "challenge_1", Status: entity.StatusCompleted, Score: 1, Progress: 1, Message: "Challenge completed",
	}, nil)
	rr := httptest.NewRecorder()
	serv.CompleteChallenge(rr, authorized(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Sprint"}`))))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)

	tService.EXPECT().CompleteChallengeByTitle(gomock.Any(), uid, "Nope").Return(nil, errorvalues.ErrTaskNotFound)
	rr = httptest.NewRecorder()
	serv.CompleteChallenge(rr, authorized(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Nope"}`))))
	assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
}

func TestActiveTasksStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTaskServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: &UserServiceMock{success: true},
		TaskService: tService,
	})
	updates := make(chan []entity.Task, 2)
	updates <- []entity.Task{{ID: "a", Title: "A", Status: entity.StatusPending}}
	updates <- []entity.Task{}
	close(updates)
	tService.EXPECT().WatchActiveTasks(gomock.Any(), uid, grade).Return((<-chan []entity.Task)(updates))

	rr := httptest.NewRecorder()
	serv.ActiveTasksStream(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/active/stream", nil)))

	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	events := strings.Split(strings.TrimSpace(rr.Body.String()), "\n\n")
	require.Len(t, events, 2)
	assert.True(t, strings.HasPrefix(events[0], "event: active_tasks\ndata: [{"))
	assert.Equal(t, "event: active_tasks\ndata: []", events[1])
}
