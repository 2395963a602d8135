package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyquest/internal/engine"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/internal/feed"
	"github.com/limbo/studyquest/internal/repository"
	"github.com/limbo/studyquest/pkg/datekey"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/limbo/studyquest/pkg/payload"
)

type TaskService struct {
	tasksRepo  repository.TasksRepositoryI
	study      StudyRecorder
	clock      datekey.Clock
	hub        *feed.Hub
	difficulty engine.DifficultyEngine
	templates  []entity.DailyTaskTemplate
}

func NewTaskService(tasksRepo repository.TasksRepositoryI, study StudyRecorder, clock datekey.Clock, hub *feed.Hub) *TaskService {
	if tasksRepo == nil || study == nil || clock == nil || hub == nil {
		panic("task service: nil dependency")
	}
	return &TaskService{
		tasksRepo:  tasksRepo,
		study:      study,
		clock:      clock,
		hub:        hub,
		difficulty: engine.NewDifficultyEngine(),
		templates:  entity.DefaultDailyTemplates,
	}
}

func (serv *TaskService) GetTask(ctx context.Context, uid uuid.UUID, taskID string) (*entity.Task, error) {
	task, err := serv.tasksRepo.GetByID(ctx, uid, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if !task.OwnedBy(uid) {
		return nil, errorvalues.ErrWrongOwner
	}
	return task, nil
}

func (serv *TaskService) GetTaskPayload(ctx context.Context, uid uuid.UUID, taskID string) (payload.Payload, error) {
	task, err := serv.GetTask(ctx, uid, taskID)
	if err != nil {
		return nil, err
	}
	if task.ActionType == "" {
		return nil, fmt.Errorf("%w: task has no action", errorvalues.ErrActionTypeMismatch)
	}
	if task.Action == nil {
		return nil, errorvalues.ErrPayloadMalformed
	}
	return task.Action, nil
}

func (serv *TaskService) ListTasks(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error) {
	tasks, err := serv.tasksRepo.ListByScope(ctx, uid, grade)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return tasks, nil
}

func (serv *TaskService) ListActiveTasks(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error) {
	tasks, err := serv.tasksRepo.ListActiveByScope(ctx, uid, grade)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return tasks, nil
}

func (serv *TaskService) WatchActiveTasks(ctx context.Context, uid uuid.UUID, grade string) <-chan []entity.Task {
	topics := []string{feed.TasksTopic(uid), feed.GlobalTasksTopic}
	return feed.WatchTopics(ctx, serv.hub, topics, func(ctx context.Context) ([]entity.Task, error) {
		return serv.ListActiveTasks(ctx, uid, grade)
	})
}

func (serv *TaskService) CompletedTaskCount(ctx context.Context, uid uuid.UUID) (int, error) {
	count, err := serv.tasksRepo.CountCompleted(ctx, uid)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return count, nil
}

func (serv *TaskService) EnsureDailyTasks(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error) {
	now := serv.clock.Now()
	today := datekey.FromTime(now)
	tasks, err := serv.tasksRepo.ListByScope(ctx, uid, grade)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	existing := make(map[string]struct{}, len(tasks))
	for _, task := range tasks {
		existing[task.ID] = struct{}{}
	}
	planned := engine.PlanMissing(serv.templates, today, existing, engine.Scope{UserID: &uid, Grade: grade}, now)
	if len(planned) == 0 {
		return planned, nil
	}
	ids, err := serv.tasksRepo.CreateMany(ctx, planned)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	written := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		written[id] = struct{}{}
	}
	created := make([]entity.Task, 0, len(ids))
	for _, task := range planned {
		if _, ok := written[task.ID]; ok {
			created = append(created, task)
		}
	}
	if len(created) > 0 {
		serv.hub.Publish(feed.TasksTopic(uid))
	}
	return created, nil
}

func (serv *TaskService) GenerateDynamicTask(ctx context.Context, uid uuid.UUID, req *MasteryRequest) (*entity.Task, error) {
	if err := validate.Struct(*req); err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrInvalidMastery, validationError(err))
	}
	task := serv.difficulty.Assess(req.Mastery).BuildTask(uid, serv.clock.Now())
	if err := serv.tasksRepo.Upsert(ctx, &task); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	serv.hub.Publish(feed.TasksTopic(uid))
	return &task, nil
}

func (serv *TaskService) SaveTasks(ctx context.Context, uid uuid.UUID, tasks []entity.Task) ([]entity.Task, error) {
	now := serv.clock.Now()
	for i := range tasks {
		if err := bindTask(&tasks[i], uid, now); err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
	}
	if err := serv.tasksRepo.UpsertMany(ctx, tasks); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) || errors.Is(err, errorvalues.ErrTaskAlreadyCompleted) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if len(tasks) > 0 {
		serv.hub.Publish(feed.TasksTopic(uid))
	}
	return tasks, nil
}

// bindTask makes an externally built task owned by uid and consistent with its status.
func bindTask(task *entity.Task, uid uuid.UUID, now time.Time) error {
	owner := uid
	task.UserID = &owner
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.Status == "" {
		task.Status = entity.StatusPending
	}
	if task.Difficulty == "" {
		task.Difficulty = entity.DifficultyEasy
	}
	if err := validate.Var(task.Title, "required,max=200"); err != nil {
		return validationError(err)
	}
	if err := validate.Var(string(task.Type), "oneof=DAILY REVIEW PRACTICE CHALLENGE"); err != nil {
		return validationError(err)
	}
	if err := validate.Var(string(task.Difficulty), "oneof=EASY MEDIUM HARD EXPERT"); err != nil {
		return validationError(err)
	}
	if task.ExperienceReward < 0 || task.CoinReward < 0 || task.EstimatedMinutes < 0 {
		return fmt.Errorf("%w: rewards and estimate must not be negative", errorvalues.ErrInvalidSubmission)
	}
	if task.Action != nil {
		task.ActionType = task.Action.Kind()
	} else if task.ActionType != "" {
		return errorvalues.ErrPayloadMalformed
	}
	switch task.Status {
	case entity.StatusPending, entity.StatusInProgress, entity.StatusCompleted:
	default:
		return fmt.Errorf("%w: unknown status %q", errorvalues.ErrInvalidSubmission, task.Status)
	}
	if task.Status == entity.StatusCompleted {
		applyState(task, engine.State{Status: entity.StatusCompleted, Progress: 1}, now)
		return nil
	}
	if math.IsNaN(task.Progress) || task.Progress < 0 || task.Progress >= 1 {
		return fmt.Errorf("%w: progress of an open task must be within [0, 1)", errorvalues.ErrInvalidSubmission)
	}
	task.CompletedAt = nil
	return nil
}

func (serv *TaskService) UpdateProgress(ctx context.Context, uid uuid.UUID, taskID string, progress float64) (*entity.Task, error) {
	if math.IsNaN(progress) {
		return nil, fmt.Errorf("%w: progress is not a number", errorvalues.ErrInvalidSubmission)
	}
	task, err := serv.GetTask(ctx, uid, taskID)
	if err != nil {
		return nil, err
	}
	if task.Completed() {
		return nil, errorvalues.ErrTaskAlreadyCompleted
	}
	expected := task.Status
	applyState(task, engine.ProgressState(progress), serv.clock.Now())
	if err = serv.updateState(ctx, task, expected); err != nil {
		return nil, err
	}
	serv.publishChange(uid, task)
	return task, nil
}

func (serv *TaskService) SubmitQuiz(ctx context.Context, uid uuid.UUID, taskID string, answers []int) (*entity.CompletionResult, error) {
	return serv.submit(ctx, uid, taskID, engine.QuizAnswers{Answers: answers})
}

func (serv *TaskService) SubmitReading(ctx context.Context, uid uuid.UUID, taskID string) (*entity.CompletionResult, error) {
	return serv.submit(ctx, uid, taskID, engine.Confirmation{Kind: payload.KindReading})
}

func (serv *TaskService) SubmitVideo(ctx context.Context, uid uuid.UUID, taskID string) (*entity.CompletionResult, error) {
	return serv.submit(ctx, uid, taskID, engine.Confirmation{Kind: payload.KindVideo})
}

func (serv *TaskService) SubmitMemorization(ctx context.Context, uid uuid.UUID, taskID string) (*entity.CompletionResult, error) {
	return serv.submit(ctx, uid, taskID, engine.Confirmation{Kind: payload.KindMemorization})
}

func (serv *TaskService) SubmitExercise(ctx context.Context, uid uuid.UUID, taskID string, checked int) (*entity.CompletionResult, error) {
	return serv.submit(ctx, uid, taskID, engine.ExerciseChecks{Checked: checked})
}

func (serv *TaskService) submit(ctx context.Context, uid uuid.UUID, taskID string, sub engine.Submission) (*entity.CompletionResult, error) {
	task, err := serv.GetTask(ctx, uid, taskID)
	if err != nil {
		return nil, err
	}
	if task.ActionType != sub.Action() {
		return nil, errorvalues.ErrActionTypeMismatch
	}
	outcome, err := engine.Transition(engine.StateOf(task), task.Action, sub, task.EstimatedMinutes)
	if err != nil {
		return nil, err
	}
	expected := task.Status
	applyState(task, outcome.Next, serv.clock.Now())
	if err = serv.updateState(ctx, task, expected); err != nil {
		return nil, err
	}
	if outcome.Effects.RecordStudy {
		serv.recordStudy(ctx, uid, task, entity.StudySourceForTask(task.ActionType), outcome.Effects.StudyMinutes)
	}
	serv.publishChange(uid, task)
	return &entity.CompletionResult{
		TaskID:   task.ID,
		Status:   task.Status,
		Score:    outcome.Score,
		Progress: task.Progress,
		Message:  outcome.Message,
	}, nil
}

// CompleteChallengeByTitle completes the first open challenge named title.
// Its time is attributed to exercise work.
func (serv *TaskService) CompleteChallengeByTitle(ctx context.Context, uid uuid.UUID, title string) (*entity.CompletionResult, error) {
	challenges, err := serv.tasksRepo.ListByType(ctx, uid, entity.TaskTypeChallenge)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	var task *entity.Task
	for i := range challenges {
		if challenges[i].Title == title && !challenges[i].Completed() {
			task = &challenges[i]
			break
		}
	}
	if task == nil {
		return nil, errorvalues.ErrTaskNotFound
	}
	expected := task.Status
	applyState(task, engine.State{Status: entity.StatusCompleted, Progress: 1}, serv.clock.Now())
	if err = serv.updateState(ctx, task, expected); err != nil {
		return nil, err
	}
	serv.recordStudy(ctx, uid, task, entity.StudySourceForTask(payload.KindExercise), task.EstimatedMinutes)
	serv.publishChange(uid, task)
	return &entity.CompletionResult{
		TaskID:   task.ID,
		Status:   task.Status,
		Score:    1,
		Progress: task.Progress,
		Message:  "Challenge completed",
	}, nil
}

// recordStudy runs after the completion is stored, so a failure here only loses the session.
func (serv *TaskService) recordStudy(ctx context.Context, uid uuid.UUID, task *entity.Task, source string, minutes int) {
	if err := serv.study.Record(ctx, uid, source, &task.ID, minutes); err != nil {
		slog.ErrorContext(ctx, "recording study session failed",
			slog.String("uid", uid.String()),
			slog.String("task_id", task.ID),
			slog.Int("minutes", minutes),
			slog.String("error", err.Error()),
		)
	}
}

// publishChange wakes every active task feed when a global task changes.
func (serv *TaskService) publishChange(uid uuid.UUID, task *entity.Task) {
	if task.UserID == nil {
		serv.hub.Publish(feed.GlobalTasksTopic)
		return
	}
	serv.hub.Publish(feed.TasksTopic(uid))
}

func (serv *TaskService) updateState(ctx context.Context, task *entity.Task, expected entity.TaskStatus) error {
	if err := serv.tasksRepo.UpdateState(ctx, task, expected); err != nil {
		if errors.Is(err, errorvalues.ErrTaskStateConflict) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func applyState(task *entity.Task, state engine.State, now time.Time) {
	task.Status = state.Status
	task.Progress = state.Progress
	if state.Status == entity.StatusCompleted {
		completedAt := now
		task.CompletedAt = &completedAt
	} else {
		task.CompletedAt = nil
	}
}
