package contact

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/oleksandr-romashko/contacts-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ContactRepository is the owner-scoped contact store. Every query is
// restricted to rows belonging to the given user; there is no cross-owner
// access path.
type ContactRepository interface {
	Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error)
	GetByID(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error)
	List(ctx context.Context, userID uint64, filter *model.ContactFilter, skip, limit int) ([]model.ContactEntity, error)
	CountByOwner(ctx context.Context, userID uint64) (int64, error)
	ListBirthdayRange(ctx context.Context, userID uint64, start, end model.Date) ([]model.ContactEntity, error)
	Update(ctx context.Context, userID, contactID uint64, fields map[string]interface{}) (*model.ContactEntity, error)
	Delete(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	selectContactBase = `SELECT id, user_id, first_name, last_name, email, phone_number, birthdate, info, created_at, updated_at FROM contacts`

	insertContactQuery = `INSERT INTO contacts (user_id, first_name, last_name, email, phone_number, birthdate, info, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`

	countByOwnerQuery = `SELECT COUNT(*) FROM contacts WHERE user_id = ?`

	// Total ordering: ties on lowercased names and birthdate fall back to id
	// so pagination stays stable across calls.
	listOrderClause = ` ORDER BY LOWER(first_name), LOWER(last_name), birthdate, id`

	birthdayOrderClause = ` ORDER BY birthdate, LOWER(first_name), LOWER(last_name)`
)

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertContactQuery,
		data.UserID, data.FirstName, data.LastName, data.Email, data.PhoneNumber, data.Birthdate, data.Info)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, data.UserID, uint64(lastID))
}

func (s *SQL) GetByID(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error) {
	query := selectContactBase + " WHERE user_id = ? AND id = ?"

	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, query, userID, contactID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, userID uint64, filter *model.ContactFilter, skip, limit int) ([]model.ContactEntity, error) {
	query := selectContactBase + " WHERE user_id = ?"
	args := make([]any, 0, 6)
	args = append(args, userID)

	if filter != nil {
		if filter.FirstName != "" {
			query += " AND LOWER(first_name) LIKE ?"
			args = append(args, likePattern(filter.FirstName))
		}
		if filter.LastName != "" {
			query += " AND LOWER(last_name) LIKE ?"
			args = append(args, likePattern(filter.LastName))
		}
		if filter.Email != "" {
			query += " AND LOWER(email) LIKE ?"
			args = append(args, likePattern(filter.Email))
		}
	}

	query += listOrderClause + " LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactEntity, 0)
	for rows.Next() {
		var it model.ContactEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) CountByOwner(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countByOwnerQuery, userID); err != nil {
		return 0, err
	}
	return total, nil
}

// ListBirthdayRange returns every contact whose birthdate month and day fall
// inside [start, end], year ignored. The window is at most two month buckets
// wide: either a single BETWEEN inside one month, or the tail of the start
// month unioned with the head of the end month when the range wraps.
func (s *SQL) ListBirthdayRange(ctx context.Context, userID uint64, start, end model.Date) ([]model.ContactEntity, error) {
	var (
		query string
		args  []any
	)
	if start.Month() == end.Month() {
		query = selectContactBase + ` WHERE user_id = ?
			AND MONTH(birthdate) = ? AND DAY(birthdate) BETWEEN ? AND ?` + birthdayOrderClause
		args = []any{userID, int(start.Month()), start.Day(), end.Day()}
	} else {
		query = selectContactBase + ` WHERE user_id = ?
			AND ((MONTH(birthdate) = ? AND DAY(birthdate) >= ?)
				OR (MONTH(birthdate) = ? AND DAY(birthdate) <= ?))` + birthdayOrderClause
		args = []any{userID, int(start.Month()), start.Day(), int(end.Month()), end.Day()}
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactEntity, 0)
	for rows.Next() {
		var it model.ContactEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update applies the given column values to an owned contact and returns the
// fresh row, or nil when the contact does not exist for this owner.
func (s *SQL) Update(ctx context.Context, userID, contactID uint64, fields map[string]interface{}) (*model.ContactEntity, error) {
	if len(fields) == 0 {
		return s.GetByID(ctx, userID, contactID)
	}

	setParts := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for _, col := range []string{"first_name", "last_name", "email", "phone_number", "birthdate", "info"} {
		if val, ok := fields[col]; ok {
			setParts = append(setParts, col+" = ?")
			args = append(args, val)
		}
	}
	setParts = append(setParts, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE contacts SET %s WHERE user_id = ? AND id = ?", strings.Join(setParts, ", "))
	args = append(args, userID, contactID)

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	// MySQL reports zero affected rows for a no-op update, so re-read instead
	// of trusting RowsAffected to detect a missing contact.
	return s.GetByID(ctx, userID, contactID)
}

// Delete removes an owned contact and returns the row as it was, or nil when
// nothing matched.
func (s *SQL) Delete(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error) {
	entity, err := s.GetByID(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, nil
	}

	if _, err := s.conn.ExecContext(ctx, "DELETE FROM contacts WHERE user_id = ? AND id = ?", userID, contactID); err != nil {
		return nil, err
	}
	return entity, nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
