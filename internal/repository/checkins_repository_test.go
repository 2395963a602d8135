package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/internal/repository"
	"github.com/limbo/studyquest/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckIn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	checkInsRepo := repository.NewCheckInsRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO check_ins (user_id, date_key) VALUES ($1, $2);`)
	uid := uuid.New()
	dateKey := "2024-03-15"
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, dateKey).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrCheckInExists,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, dateKey).WillReturnError(&pgconn.PgError{
					Code: "23505",
				})
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrUserNotFound,
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, dateKey).WillReturnError(&pgconn.PgError{
					Code: "23503",
				})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating check-in error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectExec(query).WithArgs(uid, dateKey).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := checkInsRepo.Create(ctx, uid, dateKey)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsCheckIn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	checkInsRepo := repository.NewCheckInsRepo(mock)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM check_ins WHERE user_id = $1 AND date_key = $2);`)
	uid := uuid.New()
	dateKey := "2024-03-15"
	testCases := []struct {
		Desc          string
		Error         error
		IsExistResult bool
		MockPrepFunc  func()
	}{
		{
			Desc:  "successful: exists",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, dateKey).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			IsExistResult: true,
		},
		{
			Desc:  "successful: doesn't exist",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, dateKey).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
			IsExistResult: false,
		},
		{
			Desc:  "db error",
			Error: errors.New("inspecting if check-in exists error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, dateKey).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			exists, err := checkInsRepo.Exists(ctx, uid, dateKey)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.IsExistResult, exists)
			}
		})
	}
}

func TestListDateKeys(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	checkInsRepo := repository.NewCheckInsRepo(mock)
	query := regexp.QuoteMeta(`SELECT date_key FROM check_ins WHERE user_id = $1 ORDER BY date_key DESC;`)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		KeysResult   []string
		MockPrepFunc func()
	}{
		{
			Desc:       "successful",
			KeysResult: []string{"2024-03-15", "2024-03-14"},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"date_key"}).AddRow("2024-03-15").AddRow("2024-03-14"))
			},
		},
		{
			Desc:       "no check-ins",
			KeysResult: []string{},
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"date_key"}))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("listing check-in days error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			keys, err := checkInsRepo.ListDateKeys(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.KeysResult, keys)
			}
		})
	}
}

func TestGetCheckInsByDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	checkInsRepo := repository.NewCheckInsRepo(mock)
	query := regexp.QuoteMeta(`SELECT user_id, date_key, created_at FROM check_ins WHERE user_id = $1 AND date_key >= $2 AND date_key <= $3 ORDER BY date_key;`)
	uid := uuid.New()
	from, to := "2024-03-01", "2024-03-31"
	created := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	returned := []entity.CheckIn{
		{UserID: uid, DateKey: "2024-03-02", CreatedAt: created},
		{UserID: uid, DateKey: "2024-03-03", CreatedAt: created.AddDate(0, 0, 1)},
	}
	testCases := []struct {
		Desc           string
		Error          error
		CheckInsResult []entity.CheckIn
		MockPrepFunc   func()
	}{
		{
			Desc:           "success",
			CheckInsResult: returned,
			MockPrepFunc: func() {
				rows := pgxmock.NewRows([]string{"user_id", "date_key", "created_at"})
				for _, c := range returned {
					rows.AddRow(c.UserID, c.DateKey, c.CreatedAt)
				}
				mock.ExpectQuery(query).
					WithArgs(uid, from, to).
					WillReturnRows(rows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting check-ins for period error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid, from, to).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := checkInsRepo.GetByDateRange(ctx, uid, from, to)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.CheckInsResult, result)
			}
		})
	}
}

func TestCountCheckInsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	checkInsRepo := repository.NewCheckInsRepo(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM check_ins WHERE user_id = $1;`)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		CountResult  int
		MockPrepFunc func()
	}{
		{
			Desc:        "successful",
			CountResult: 10,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(10))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("error counting check-ins: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).
					WithArgs(uid).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			count, err := checkInsRepo.CountByUserID(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.CountResult, count)
			}
		})
	}
}
