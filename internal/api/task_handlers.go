package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/internal/service"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/limbo/studyquest/pkg/httputil"
	"github.com/limbo/studyquest/pkg/payload"
)

// TaskRequest is a task built outside the service, e.g. by a content generator.
type TaskRequest struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"desc"`
	Type             string          `json:"type"`
	Difficulty       string          `json:"difficulty"`
	Status           string          `json:"status"`
	Progress         float64         `json:"progress"`
	ExperienceReward int             `json:"exp"`
	CoinReward       int             `json:"coin"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	Deadline         *time.Time      `json:"deadline"`
	TargetGrade      *string         `json:"target_grade"`
	ActionType       string          `json:"action_type"`
	ActionPayload    json.RawMessage `json:"action_payload"`
}

type SaveTasksRequest struct {
	Tasks []TaskRequest `json:"tasks"`
}

type TasksResponse struct {
	Grade string        `json:"grade"`
	Tasks []entity.Task `json:"tasks"`
}

type TaskPayloadResponse struct {
	TaskID     string          `json:"task_id"`
	ActionType payload.Kind    `json:"action_type"`
	Payload    payload.Payload `json:"payload"`
}

type MasteryRequest struct {
	Mastery map[string]float64 `json:"mastery"`
}

type ProgressRequest struct {
	Progress float64 `json:"progress"`
}

type QuizRequest struct {
	Answers []int `json:"answers"`
}

type ExerciseRequest struct {
	Checked int `json:"checked"`
}

type ChallengeRequest struct {
	Title string `json:"title"`
}

func (tr *TaskRequest) toEntity() (entity.Task, error) {
	task := entity.Task{
		ID:               tr.ID,
		Title:            tr.Title,
		Description:      tr.Description,
		Type:             entity.TaskType(tr.Type),
		Difficulty:       entity.TaskDifficulty(tr.Difficulty),
		Status:           entity.TaskStatus(tr.Status),
		Progress:         tr.Progress,
		ExperienceReward: tr.ExperienceReward,
		CoinReward:       tr.CoinReward,
		EstimatedMinutes: tr.EstimatedMinutes,
		Deadline:         tr.Deadline,
		TargetGrade:      tr.TargetGrade,
	}
	kind, err := payload.ParseKind(tr.ActionType)
	if err != nil {
		return task, err
	}
	hasPayload := len(tr.ActionPayload) > 0 && string(tr.ActionPayload) != "null"
	if kind == "" {
		if hasPayload {
			return task, fmt.Errorf("%w: payload without action type", errorvalues.ErrPayloadMalformed)
		}
		return task, nil
	}
	task.ActionType = kind
	if !hasPayload {
		return task, fmt.Errorf("%w: %s task without payload", errorvalues.ErrPayloadMalformed, kind)
	}
	task.Action, err = payload.Decode(kind, string(tr.ActionPayload))
	if err != nil {
		return task, err
	}
	return task, nil
}

// gradeScope is the grade from the query string or, when absent, the user's own grade.
func (s *Server) gradeScope(ctx context.Context, r *http.Request, uid uuid.UUID) (string, error) {
	if grade := r.URL.Query().Get("grade"); grade != "" {
		return grade, nil
	}
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		return "", err
	}
	return user.Grade, nil
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, "tasks list", s.taskService.ListTasks)
}

func (s *Server) ListActiveTasks(w http.ResponseWriter, r *http.Request) {
	s.listTasks(w, r, "active tasks list", s.taskService.ListActiveTasks)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request, op string,
	list func(context.Context, uuid.UUID, string) ([]entity.Task, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, op)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	grade, err := s.gradeScope(ctx, r, uid)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	tasks, err := list(ctx, uid, grade)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TasksResponse{
		Grade: grade,
		Tasks: tasks,
	})
	logger.Info("tasks provided", slog.String("op", op), slog.Int("count", len(tasks)))
}

func (s *Server) ActiveTasksStream(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "active tasks stream")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	grade, err := s.gradeScope(ctx, r, uid)
	cancel()
	if err != nil {
		writeServiceError(w, logger, "active tasks stream", err)
		return
	}
	streamEvents(w, r, logger, "active_tasks", s.taskService.WatchActiveTasks(r.Context(), uid, grade))
}

func (s *Server) CompletedTaskCount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "completed count")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	count, err := s.taskService.CompletedTaskCount(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "completed count", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"completed": count})
}

func (s *Server) GetTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "get task")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.GetTask(ctx, uid, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, logger, "get task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) GetTaskPayload(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "task payload")
	if !ok {
		return
	}
	taskID := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	p, err := s.taskService.GetTaskPayload(ctx, uid, taskID)
	if err != nil {
		writeServiceError(w, logger, "task payload", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TaskPayloadResponse{
		TaskID:     taskID,
		ActionType: p.Kind(),
		Payload:    p,
	})
}

func (s *Server) EnsureDailyTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "daily tasks")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	grade, err := s.gradeScope(ctx, r, uid)
	if err != nil {
		writeServiceError(w, logger, "daily tasks", err)
		return
	}
	created, err := s.taskService.EnsureDailyTasks(ctx, uid, grade)
	if err != nil {
		writeServiceError(w, logger, "daily tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TasksResponse{
		Grade: grade,
		Tasks: created,
	})
	logger.Info("daily tasks ensured", slog.Int("created", len(created)))
}

func (s *Server) GenerateDynamicTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "dynamic task")
	if !ok {
		return
	}
	var req MasteryRequest
	if !decodeBody(w, r, logger, "dynamic task", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.GenerateDynamicTask(ctx, uid, &service.MasteryRequest{Mastery: req.Mastery})
	if err != nil {
		writeServiceError(w, logger, "dynamic task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, task)
	logger.Info("dynamic task generated", slog.String("task_id", task.ID), slog.String("difficulty", string(task.Difficulty)))
}

func (s *Server) SaveTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "saving tasks")
	if !ok {
		return
	}
	var req SaveTasksRequest
	if !decodeBody(w, r, logger, "saving tasks", &req) {
		return
	}
	tasks := make([]entity.Task, 0, len(req.Tasks))
	for i := range req.Tasks {
		task, err := req.Tasks[i].toEntity()
		if err != nil {
			writeServiceError(w, logger, "saving tasks", fmt.Errorf("task %d: %w", i, err))
			return
		}
		tasks = append(tasks, task)
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	saved, err := s.taskService.SaveTasks(ctx, uid, tasks)
	if err != nil {
		writeServiceError(w, logger, "saving tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"tasks": saved})
	logger.Info("tasks saved", slog.Int("count", len(saved)))
}

func (s *Server) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "progress update")
	if !ok {
		return
	}
	var req ProgressRequest
	if !decodeBody(w, r, logger, "progress update", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	task, err := s.taskService.UpdateProgress(ctx, uid, chi.URLParam(r, "id"), req.Progress)
	if err != nil {
		writeServiceError(w, logger, "progress update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	s.submit(w, r, "quiz submission", &req, func(ctx context.Context, uid uuid.UUID, taskID string) (*entity.CompletionResult, error) {
		return s.taskService.SubmitQuiz(ctx, uid, taskID, req.Answers)
	})
}

func (s *Server) SubmitReading(w http.ResponseWriter, r *http.Request) {
	s.submit(w, r, "reading submission", nil, s.taskService.SubmitReading)
}

func (s *Server) SubmitVideo(w http.ResponseWriter, r *http.Request) {
	s.submit(w, r, "video submission", nil, s.taskService.SubmitVideo)
}

func (s *Server) SubmitMemorization(w http.ResponseWriter, r *http.Request) {
	s.submit(w, r, "memorization submission", nil, s.taskService.SubmitMemorization)
}

func (s *Server) SubmitExercise(w http.ResponseWriter, r *http.Request) {
	var req ExerciseRequest
	s.submit(w, r, "exercise submission", &req, func(ctx context.Context, uid uuid.UUID, taskID string) (*entity.CompletionResult, error) {
		return s.taskService.SubmitExercise(ctx, uid, taskID, req.Checked)
	})
}

// submit decodes body into req when req is non-nil and answers with the completion result.
func (s *Server) submit(w http.ResponseWriter, r *http.Request, op string, req any,
	do func(context.Context, uuid.UUID, string) (*entity.CompletionResult, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, op)
	if !ok {
		return
	}
	if req != nil && !decodeBody(w, r, logger, op, req) {
		return
	}
	taskID := chi.URLParam(r, "id")
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := do(ctx, uid, taskID)
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info(op+" accepted", slog.String("task_id", taskID), slog.String("status", string(result.Status)))
}

func (s *Server) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r, logger, "challenge completion")
	if !ok {
		return
	}
	var req ChallengeRequest
	if !decodeBody(w, r, logger, "challenge completion", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	result, err := s.taskService.CompleteChallengeByTitle(ctx, uid, req.Title)
	if err != nil {
		writeServiceError(w, logger, "challenge completion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("challenge completed", slog.String("task_id", result.TaskID))
}
