package contact

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-book/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	Create(ctx context.Context, req *model.ContactEntity) (*model.ContactEntity, error)
	Get(ctx context.Context, username string, id uint64) (*model.ContactEntity, error)
	Update(ctx context.Context, req *model.ContactEntity) error
	Delete(ctx context.Context, username string, id uint64) error
	Search(ctx context.Context, username string, filter *model.SearchContactRequest) ([]model.ContactEntity, int64, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	insertContactQuery = `INSERT INTO contacts (first_name, last_name, email, phone, username) VALUES (?, ?, ?, ?, ?)`

	// Ownership is checked inside the statement itself: id and owner key in
	// one predicate, so a row owned by someone else is indistinguishable
	// from a missing row.
	getContactQuery    = `SELECT id, first_name, last_name, email, phone, username FROM contacts WHERE id = ? AND username = ?`
	updateContactQuery = `UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ? WHERE id = ? AND username = ?`
	deleteContactQuery = `DELETE FROM contacts WHERE id = ? AND username = ?`

	searchContactBase = `SELECT id, first_name, last_name, email, phone, username FROM contacts WHERE username = ?`
	countContactBase  = `SELECT COUNT(*) FROM contacts WHERE username = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertContactQuery, data.FirstName, data.LastName, data.Email, data.Phone, data.Username)
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

func (s *SQL) Get(ctx context.Context, username string, id uint64) (*model.ContactEntity, error) {
	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, getContactQuery, id, username).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ContactEntity) error {
	_, err := s.conn.ExecContext(ctx, updateContactQuery, data.FirstName, data.LastName, data.Email, data.Phone, data.ID, data.Username)
	return err
}

func (s *SQL) Delete(ctx context.Context, username string, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteContactQuery, id, username)
	return err
}

// Search returns one page of the caller's contacts matching the filter,
// plus the total match count over the same filter. Absent filter fields
// contribute no clause at all. Rows are ordered by id so page boundaries
// are stable across calls.
func (s *SQL) Search(ctx context.Context, username string, filter *model.SearchContactRequest) ([]model.ContactEntity, int64, error) {
	where, args := buildSearchFilter(filter)

	offset := (filter.Page - 1) * filter.Size
	query := searchContactBase + where + " ORDER BY id LIMIT ? OFFSET ?"
	queryArgs := append([]any{username}, args...)
	queryArgs = append(queryArgs, filter.Size, offset)

	rows, err := s.conn.QueryxContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.ContactEntity, 0)
	for rows.Next() {
		var it model.ContactEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// total over the same filter, not the page's row count
	countArgs := append([]any{username}, args...)
	var total int64
	if err := s.conn.GetContext(ctx, &total, countContactBase+where, countArgs...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func buildSearchFilter(filter *model.SearchContactRequest) (string, []any) {
	where := ""
	args := make([]any, 0, 4)

	if filter.Name != "" {
		where += " AND (first_name LIKE ? OR last_name LIKE ?)"
		like := "%" + filter.Name + "%"
		args = append(args, like, like)
	}
	if filter.Email != "" {
		where += " AND email LIKE ?"
		args = append(args, "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		where += " AND phone LIKE ?"
		args = append(args, "%"+filter.Phone+"%")
	}

	return where, args
}
