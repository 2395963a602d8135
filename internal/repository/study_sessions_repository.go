package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/pkg/entity"
)

type StudySessionsRepository struct {
	conn PgConnection
}

func NewStudySessionsRepo(conn PgConnection) *StudySessionsRepository {
	return &StudySessionsRepository{
		conn: conn,
	}
}

func (sessionsRepo *StudySessionsRepository) Create(ctx context.Context, session *entity.StudySession) error {
	if session == nil {
		return errors.New("study session is nil")
	}
	_, err := sessionsRepo.conn.Exec(
		ctx,
		`INSERT INTO study_sessions (id, user_id, day_key, source, task_id, duration_minutes) VALUES ($1, $2, $3, $4, $5, $6);`,
		session.ID,
		session.UserID,
		session.DayKey,
		session.Source,
		session.TaskID,
		session.DurationMinutes,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyMissing {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating study session error: " + err.Error())
	}
	return nil
}

func (sessionsRepo *StudySessionsRepository) SumMinutes(ctx context.Context, uid uuid.UUID, dayKey string) (int, error) {
	row := sessionsRepo.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(duration_minutes), 0) FROM study_sessions WHERE user_id = $1 AND day_key = $2;`,
		uid,
		dayKey,
	)
	var minutes int
	if err := row.Scan(&minutes); err != nil {
		return 0, errors.New("summing study minutes error: " + err.Error())
	}
	return minutes, nil
}
