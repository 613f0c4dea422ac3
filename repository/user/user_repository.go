package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/oleksandr-romashko/contacts-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, userID uint64, fields map[string]interface{}) (*model.UserEntity, error)
	ListIDs(ctx context.Context) ([]uint64, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (username, email, password_hash, avatar, role, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, username, email, password_hash, avatar, role, created_at, updated_at FROM users WHERE true`
	listUserIDs     = `SELECT id FROM users ORDER BY id`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Username, data.Email, data.PasswordHash, data.Avatar, data.Role)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Update applies the given column values and returns the fresh row, or nil
// when the user no longer exists.
func (s *SQL) Update(ctx context.Context, userID uint64, fields map[string]interface{}) (*model.UserEntity, error) {
	query := "UPDATE users SET "
	args := make([]any, 0, len(fields)+1)
	for _, col := range []string{"username", "email", "avatar"} {
		if val, ok := fields[col]; ok {
			query += col + " = ?, "
			args = append(args, val)
		}
	}
	query += "updated_at = NOW() WHERE id = ?"
	args = append(args, userID)

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return s.Get(ctx, &model.UserFilter{ID: userID})
}

// ListIDs returns the IDs of every registered user. Used by the reminder
// dispatcher to fan out per-owner birthday queries.
func (s *SQL) ListIDs(ctx context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	if err := s.conn.SelectContext(ctx, &ids, listUserIDs); err != nil {
		return nil, err
	}
	return ids, nil
}
