package service

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/studyquest/internal/service CheckInServiceI,StudyServiceI,TaskServiceI,UserServiceI

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/limbo/studyquest/pkg/payload"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
	Grade    string `validate:"omitempty,alphanum_underscore,max=32"`
}

type HistoryRequest struct {
	From string `validate:"required,daykey"`
	To   string `validate:"required,daykey"`
}

type MasteryRequest struct {
	Mastery map[string]float64 `validate:"dive,keys,required,max=100,endkeys,gte=0,lte=1"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// Moves user to another grade. Grade scopes task lists and daily tasks
	UpdateGrade(ctx context.Context, id uuid.UUID, grade string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type CheckInServiceI interface {
	// Checks user in for today. Repeated calls on the same day change nothing
	CheckIn(ctx context.Context, uid uuid.UUID) (*entity.CheckInResult, error)
	IsCheckedInToday(ctx context.Context, uid uuid.UUID) (bool, error)
	// Consecutive days with a check-in ending today
	Streak(ctx context.Context, uid uuid.UUID) (int, error)
	// Emits the streak now and after every check-in until ctx is done
	WatchStreak(ctx context.Context, uid uuid.UUID) <-chan int
	History(ctx context.Context, uid uuid.UUID, req *HistoryRequest) ([]entity.CheckIn, error)
	Stats(ctx context.Context, uid uuid.UUID) (*entity.CheckInStats, error)
}

type TaskServiceI interface {
	GetTask(ctx context.Context, uid uuid.UUID, taskID string) (*entity.Task, error)
	// Decoded action payload of the task, for the execution screen
	GetTaskPayload(ctx context.Context, uid uuid.UUID, taskID string) (payload.Payload, error)
	ListTasks(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error)
	ListActiveTasks(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error)
	WatchActiveTasks(ctx context.Context, uid uuid.UUID, grade string) <-chan []entity.Task
	CompletedTaskCount(ctx context.Context, uid uuid.UUID) (int, error)
	// Creates today's missing daily tasks. Returns the created ones
	EnsureDailyTasks(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error)
	// Builds and stores a task aimed at the weakest topic
	GenerateDynamicTask(ctx context.Context, uid uuid.UUID, req *MasteryRequest) (*entity.Task, error)
	// Stores externally built tasks on behalf of uid
	SaveTasks(ctx context.Context, uid uuid.UUID, tasks []entity.Task) ([]entity.Task, error)
	UpdateProgress(ctx context.Context, uid uuid.UUID, taskID string, progress float64) (*entity.Task, error)
	SubmitQuiz(ctx context.Context, uid uuid.UUID, taskID string, answers []int) (*entity.CompletionResult, error)
	SubmitReading(ctx context.Context, uid uuid.UUID, taskID string) (*entity.CompletionResult, error)
	SubmitVideo(ctx context.Context, uid uuid.UUID, taskID string) (*entity.CompletionResult, error)
	SubmitMemorization(ctx context.Context, uid uuid.UUID, taskID string) (*entity.CompletionResult, error)
	SubmitExercise(ctx context.Context, uid uuid.UUID, taskID string, checked int) (*entity.CompletionResult, error)
	CompleteChallengeByTitle(ctx context.Context, uid uuid.UUID, title string) (*entity.CompletionResult, error)
}

type StudyServiceI interface {
	// Logs a manual focus session. Non-positive durations are ignored
	RecordManualStudy(ctx context.Context, uid uuid.UUID, minutes int) error
	TodayStudyMinutes(ctx context.Context, uid uuid.UUID) (int, error)
	WatchTodayStudyMinutes(ctx context.Context, uid uuid.UUID) <-chan int
}

// StudyRecorder appends study sessions attributed to a source.
type StudyRecorder interface {
	Record(ctx context.Context, uid uuid.UUID, source string, taskID *string, minutes int) error
}
