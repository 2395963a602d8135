package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/pkg/entity"
)

type CheckInsRepository struct {
	conn PgConnection
}

func NewCheckInsRepo(conn PgConnection) *CheckInsRepository {
	return &CheckInsRepository{
		conn: conn,
	}
}

func (checkInsRepo *CheckInsRepository) Create(ctx context.Context, uid uuid.UUID, dateKey string) error {
	_, err := checkInsRepo.conn.Exec(
		ctx,
		`INSERT INTO check_ins (user_id, date_key) VALUES ($1, $2);`,
		uid,
		dateKey,
	)
	if err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrCheckInExists
		case pgForeignKeyMissing:
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating check-in error: " + err.Error())
	}
	return nil
}

func (checkInsRepo *CheckInsRepository) Exists(ctx context.Context, uid uuid.UUID, dateKey string) (bool, error) {
	var exists bool
	row := checkInsRepo.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM check_ins WHERE user_id = $1 AND date_key = $2);`,
		uid,
		dateKey,
	)
	err := row.Scan(&exists)
	if err != nil {
		return false, errors.New("inspecting if check-in exists error: " + err.Error())
	}
	return exists, nil
}

func (checkInsRepo *CheckInsRepository) ListDateKeys(ctx context.Context, uid uuid.UUID) ([]string, error) {
	rows, err := checkInsRepo.conn.Query(
		ctx,
		`SELECT date_key FROM check_ins WHERE user_id = $1 ORDER BY date_key DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing check-in days error: " + err.Error())
	}
	defer rows.Close()
	result := make([]string, 0, 8)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		result = append(result, key)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected check-in rows error: " + err.Error())
	}
	return result, nil
}

func (checkInsRepo *CheckInsRepository) GetByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.CheckIn, error) {
	rows, err := checkInsRepo.conn.Query(
		ctx,
		`SELECT user_id, date_key, created_at FROM check_ins WHERE user_id = $1 AND date_key >= $2 AND date_key <= $3 ORDER BY date_key;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting check-ins for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.CheckIn, 0, 2)
	for rows.Next() {
		checkIn := entity.CheckIn{}
		err = rows.Scan(&checkIn.UserID, &checkIn.DateKey, &checkIn.CreatedAt)
		if err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		result = append(result, checkIn)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected check-in rows error: " + err.Error())
	}
	return result, nil
}

func (checkInsRepo *CheckInsRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	row := checkInsRepo.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM check_ins WHERE user_id = $1;`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting check-ins: " + err.Error())
	}
	return count, nil
}
