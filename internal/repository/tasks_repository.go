package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/limbo/studyquest/pkg/payload"
)

const taskColumns = `id, user_id, title, description, type, difficulty, status, progress, experience_reward, coin_reward, estimated_minutes, deadline, target_grade, action_type, action_payload, completed_at, created_at`

const upsertTaskQuery = `INSERT INTO tasks (` + taskColumns + `) ` +
	`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) ` +
	`ON CONFLICT (owner_key, id) DO UPDATE SET ` +
	`title = EXCLUDED.title, description = EXCLUDED.description, type = EXCLUDED.type, difficulty = EXCLUDED.difficulty, ` +
	`status = EXCLUDED.status, progress = EXCLUDED.progress, experience_reward = EXCLUDED.experience_reward, ` +
	`coin_reward = EXCLUDED.coin_reward, estimated_minutes = EXCLUDED.estimated_minutes, deadline = EXCLUDED.deadline, ` +
	`target_grade = EXCLUDED.target_grade, action_type = EXCLUDED.action_type, action_payload = EXCLUDED.action_payload, ` +
	`completed_at = EXCLUDED.completed_at ` +
	`WHERE tasks.status <> 'COMPLETED';`

// Open rows left under another grade are moved to the requested one. Completed rows stay as they are.
const insertTaskQuery = `INSERT INTO tasks (` + taskColumns + `) ` +
	`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) ` +
	`ON CONFLICT (owner_key, id) DO UPDATE SET target_grade = EXCLUDED.target_grade ` +
	`WHERE tasks.status <> 'COMPLETED' AND tasks.target_grade IS DISTINCT FROM EXCLUDED.target_grade ` +
	`RETURNING id;`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(conn PgConnection) *TasksRepository {
	return &TasksRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row. A payload that fails to decode leaves Action nil
// while ActionType still reports what the row declared.
func scanTask(ctx context.Context, row rowScanner) (*entity.Task, error) {
	var (
		task                         entity.Task
		taskType, difficulty, status string
		actionType, actionPayload    *string
	)
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&taskType,
		&difficulty,
		&status,
		&task.Progress,
		&task.ExperienceReward,
		&task.CoinReward,
		&task.EstimatedMinutes,
		&task.Deadline,
		&task.TargetGrade,
		&actionType,
		&actionPayload,
		&task.CompletedAt,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Type = entity.TaskType(taskType)
	task.Difficulty = entity.TaskDifficulty(difficulty)
	task.Status = entity.TaskStatus(status)
	if actionType != nil && *actionType != "" {
		task.ActionType = payload.Kind(*actionType)
		raw := ""
		if actionPayload != nil {
			raw = *actionPayload
		}
		p, err := payload.Decode(task.ActionType, raw)
		if err != nil {
			slog.WarnContext(ctx, "stored task payload is malformed",
				slog.String("task_id", task.ID),
				slog.String("action_type", *actionType),
				slog.String("error", err.Error()),
			)
		} else {
			task.Action = p
		}
	}
	return &task, nil
}

func taskArgs(task *entity.Task) ([]any, error) {
	var actionType, actionPayload *string
	if task.Action != nil {
		kind, raw, err := payload.Encode(task.Action)
		if err != nil {
			return nil, err
		}
		k := string(kind)
		actionType, actionPayload = &k, &raw
	} else if task.ActionType != "" {
		k := string(task.ActionType)
		actionType = &k
	}
	return []any{
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		string(task.Type),
		string(task.Difficulty),
		string(task.Status),
		task.Progress,
		task.ExperienceReward,
		task.CoinReward,
		task.EstimatedMinutes,
		task.Deadline,
		task.TargetGrade,
		actionType,
		actionPayload,
		task.CompletedAt,
		task.CreatedAt,
	}, nil
}

func ownerKey(task *entity.Task) uuid.UUID {
	if task.UserID == nil {
		return uuid.Nil
	}
	return *task.UserID
}

func (tasksRepo *TasksRepository) GetByID(ctx context.Context, uid uuid.UUID, id string) (*entity.Task, error) {
	row := tasksRepo.conn.QueryRow(
		ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND (user_id = $2 OR user_id IS NULL) ORDER BY user_id NULLS LAST LIMIT 1;`,
		id,
		uid,
	)
	task, err := scanTask(ctx, row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrTaskNotFound
		}
		return nil, errors.New("getting task error: " + err.Error())
	}
	return task, nil
}

func (tasksRepo *TasksRepository) Upsert(ctx context.Context, task *entity.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	args, err := taskArgs(task)
	if err != nil {
		return errors.New("encoding task payload error: " + err.Error())
	}
	ct, err := tasksRepo.conn.Exec(ctx, upsertTaskQuery, args...)
	if err != nil {
		return upsertError(err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", errorvalues.ErrTaskAlreadyCompleted, task.ID)
	}
	return nil
}

func (tasksRepo *TasksRepository) UpsertMany(ctx context.Context, tasks []entity.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	tx, err := tasksRepo.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	for i := range tasks {
		args, err := taskArgs(&tasks[i])
		if err != nil {
			_ = tx.Rollback(ctx)
			return errors.New("encoding task payload error: " + err.Error())
		}
		ct, err := tx.Exec(ctx, upsertTaskQuery, args...)
		if err != nil {
			_ = tx.Rollback(ctx)
			return upsertError(err)
		}
		if ct.RowsAffected() == 0 {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("%w: %s", errorvalues.ErrTaskAlreadyCompleted, tasks[i].ID)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing tasks error: " + err.Error())
	}
	return nil
}

func (tasksRepo *TasksRepository) CreateMany(ctx context.Context, tasks []entity.Task) ([]string, error) {
	if len(tasks) == 0 {
		return nil, nil
	}
	tx, err := tasksRepo.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning transaction error: " + err.Error())
	}
	created := make([]string, 0, len(tasks))
	for i := range tasks {
		args, err := taskArgs(&tasks[i])
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, errors.New("encoding task payload error: " + err.Error())
		}
		var id string
		err = tx.QueryRow(ctx, insertTaskQuery, args...).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return nil, upsertError(err)
		}
		created = append(created, id)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing tasks error: " + err.Error())
	}
	return created, nil
}

func upsertError(err error) error {
	if pgCode(err) == pgForeignKeyMissing {
		return errorvalues.ErrUserNotFound
	}
	return errors.New("saving task error: " + err.Error())
}

func (tasksRepo *TasksRepository) ListByScope(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error) {
	return tasksRepo.query(
		ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE (user_id = $1 OR user_id IS NULL) AND (target_grade IS NULL OR target_grade = $2) ORDER BY deadline ASC NULLS LAST, created_at ASC;`,
		uid,
		grade,
	)
}

func (tasksRepo *TasksRepository) ListActiveByScope(ctx context.Context, uid uuid.UUID, grade string) ([]entity.Task, error) {
	return tasksRepo.query(
		ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE (user_id = $1 OR user_id IS NULL) AND (target_grade IS NULL OR target_grade = $2) AND status <> 'COMPLETED' ORDER BY deadline ASC NULLS LAST, created_at ASC;`,
		uid,
		grade,
	)
}

func (tasksRepo *TasksRepository) ListByType(ctx context.Context, uid uuid.UUID, taskType entity.TaskType) ([]entity.Task, error) {
	return tasksRepo.query(
		ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE (user_id = $1 OR user_id IS NULL) AND type = $2 ORDER BY created_at ASC;`,
		uid,
		string(taskType),
	)
}

func (tasksRepo *TasksRepository) query(ctx context.Context, sql string, args ...any) ([]entity.Task, error) {
	rows, err := tasksRepo.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.New("listing tasks error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Task, 0, 8)
	for rows.Next() {
		task, err := scanTask(ctx, rows)
		if err != nil {
			return nil, errors.New("task row parsing error: " + err.Error())
		}
		result = append(result, *task)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected task rows error: " + err.Error())
	}
	return result, nil
}

func (tasksRepo *TasksRepository) UpdateState(ctx context.Context, task *entity.Task, expected entity.TaskStatus) error {
	ct, err := tasksRepo.conn.Exec(
		ctx,
		`UPDATE tasks SET status = $1, progress = $2, completed_at = $3 WHERE owner_key = $4 AND id = $5 AND status = $6;`,
		string(task.Status),
		task.Progress,
		task.CompletedAt,
		ownerKey(task),
		task.ID,
		string(expected),
	)
	if err != nil {
		return errors.New("updating task state error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskStateConflict
	}
	return nil
}

func (tasksRepo *TasksRepository) CountCompleted(ctx context.Context, uid uuid.UUID) (int, error) {
	row := tasksRepo.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM tasks WHERE (user_id = $1 OR user_id IS NULL) AND status = 'COMPLETED';`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting completed tasks: " + err.Error())
	}
	return count, nil
}
