package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-book/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Count(ctx context.Context, filter *model.UserFilter) (int64, error)
	UpdateProfile(ctx context.Context, username, name, passwordHash string) error
	UpdateToken(ctx context.Context, username string, token *string) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (username, password, name) VALUES (?, ?, ?)`
	getUserBase     = `SELECT username, password, name, token FROM users WHERE true`
	countUserBase   = `SELECT COUNT(*) FROM users WHERE true`

	updateProfileQuery = `UPDATE users SET name = ?, password = ? WHERE username = ?`
	updateTokenQuery   = `UPDATE users SET token = ? WHERE username = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if _, err := s.conn.ExecContext(ctx, insertUserQuery, data.Username, data.PasswordHash, data.Name); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query, args := buildUserFilter(getUserBase, filter)

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Count(ctx context.Context, filter *model.UserFilter) (int64, error) {
	query, args := buildUserFilter(countUserBase, filter)

	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, username, name, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, updateProfileQuery, name, passwordHash, username)
	return err
}

// UpdateToken overwrites the stored session token. A nil token logs the
// user out; any previously issued token stops matching immediately.
func (s *SQL) UpdateToken(ctx context.Context, username string, token *string) error {
	_, err := s.conn.ExecContext(ctx, updateTokenQuery, token, username)
	return err
}

func buildUserFilter(base string, filter *model.UserFilter) (string, []any) {
	query := base
	args := make([]any, 0, 2)

	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Token != "" {
		query += " AND token = ?"
		args = append(args, filter.Token)
	}

	return query, args
}
