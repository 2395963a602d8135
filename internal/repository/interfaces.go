package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/studyquest/internal/repository CheckInsRepositoryI,StudySessionsRepositoryI,TasksRepositoryI,UsersRepositoryI

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/studyquest/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TasksRepositoryI interface {
	// Looks up a task visible to uid: owned by uid or global. Owned tasks shadow global ones
	GetByID(ctx context.Context, uid uuid.UUID, id string) (*entity.Task, error)
	// Inserts task or replaces the one with the same owner and id. A completed task is never replaced
	Upsert(ctx context.Context, task *entity.Task) error
	// Upserts all tasks in one transaction. Fails as a whole if any of them is already completed
	UpsertMany(ctx context.Context, tasks []entity.Task) error
	// Inserts tasks whose owner and id are not taken yet and moves open ones to the task's grade.
	// Returns ids of the rows written
	CreateMany(ctx context.Context, tasks []entity.Task) ([]string, error)
	// Lists tasks for grade visible to uid, ordered by deadline
	ListByScope(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error)
	// Same as ListByScope but only PENDING and IN_PROGRESS tasks
	ListActiveByScope(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error)
	// Lists tasks of given type visible to uid
	ListByType(ctx context.Context, uid uuid.UUID, taskType entity.TaskType) ([]entity.Task, error)
	// Writes status, progress and completion time of task if its status is still expected
	UpdateState(ctx context.Context, task *entity.Task, expected entity.TaskStatus) error
	// Counts completed tasks visible to uid
	CountCompleted(ctx context.Context, uid uuid.UUID) (int, error)
}

type CheckInsRepositoryI interface {
	// Creates check-in of uid for the day
	Create(ctx context.Context, uid uuid.UUID, dateKey string) error
	// Inspects if check-in exists
	Exists(ctx context.Context, uid uuid.UUID, dateKey string) (bool, error)
	// Returns every day key uid checked in, newest first
	ListDateKeys(ctx context.Context, uid uuid.UUID) ([]string, error)
	// Provides check-ins of uid for a period of day keys, inclusive
	GetByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.CheckIn, error)
	// Returns count of check-ins of uid
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
}

type StudySessionsRepositoryI interface {
	// Appends study session
	Create(ctx context.Context, session *entity.StudySession) error
	// Sums minutes studied by uid on the day
	SumMinutes(ctx context.Context, uid uuid.UUID, dayKey string) (int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
