package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyquest/internal/error_values"
	"github.com/limbo/studyquest/pkg/entity"
)

const (
	userColumns = `id, name, password_hash, grade`

	insertUserQuery     = `INSERT INTO users (name, password_hash, grade) VALUES ($1, $2, $3);`
	selectUserByName    = `SELECT ` + userColumns + ` FROM users WHERE name = $1;`
	selectUserByID      = `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	updateUserQuery     = `UPDATE users SET name = $1, password_hash = $2, grade = $3 WHERE id = $4;`
	deleteUserQuery     = `DELETE FROM users WHERE id = $1;`
	pgUniqueViolation   = "23505"
	pgForeignKeyMissing = "23503"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, insertUserQuery, user.Name, user.PasswordHash, user.Grade)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return ur.findOne(ctx, "by name", selectUserByName, name)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "by id", selectUserByID, uid)
}

func (ur *UsersRepository) findOne(ctx context.Context, by, query string, arg any) (*entity.User, error) {
	var user entity.User
	err := ur.conn.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Name, &user.PasswordHash, &user.Grade)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, errorvalues.ErrUserNotFound
	case err != nil:
		return nil, errors.New("searching user " + by + " error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, updateUserQuery, user.Name, user.PasswordHash, user.Grade, user.ID)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, deleteUserQuery, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// pgCode is the SQLSTATE of err, or "" when err did not come from postgres.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
