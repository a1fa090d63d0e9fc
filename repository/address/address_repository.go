package address

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-book/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AddressRepository interface {
	Create(ctx context.Context, req *model.AddressEntity) (*model.AddressEntity, error)
	Get(ctx context.Context, contactID, addressID uint64) (*model.AddressEntity, error)
	ListByContact(ctx context.Context, contactID uint64) ([]model.AddressEntity, error)
	Update(ctx context.Context, req *model.AddressEntity) error
	Delete(ctx context.Context, contactID, addressID uint64) error
}

func NewAddressRepository(conn *sqlx.DB) AddressRepository {
	return &SQL{conn: conn}
}

const (
	insertAddressQuery = `INSERT INTO addresses (street, city, province, country, postal_code, contact_id) VALUES (?, ?, ?, ?, ?, ?)`

	// id and parent contact id in one predicate; the caller proves it owns
	// the contact before reaching for the address.
	getAddressQuery    = `SELECT id, street, city, province, country, postal_code, contact_id FROM addresses WHERE id = ? AND contact_id = ?`
	listAddressQuery   = `SELECT id, street, city, province, country, postal_code, contact_id FROM addresses WHERE contact_id = ? ORDER BY id`
	updateAddressQuery = `UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, postal_code = ? WHERE id = ? AND contact_id = ?`
	deleteAddressQuery = `DELETE FROM addresses WHERE id = ? AND contact_id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.AddressEntity) (*model.AddressEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAddressQuery, data.Street, data.City, data.Province, data.Country, data.PostalCode, data.ContactID)
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

func (s *SQL) Get(ctx context.Context, contactID, addressID uint64) (*model.AddressEntity, error) {
	var entity model.AddressEntity
	if err := s.conn.QueryRowxContext(ctx, getAddressQuery, addressID, contactID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByContact(ctx context.Context, contactID uint64) ([]model.AddressEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listAddressQuery, contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AddressEntity, 0)
	for rows.Next() {
		var it model.AddressEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Update(ctx context.Context, data *model.AddressEntity) error {
	_, err := s.conn.ExecContext(ctx, updateAddressQuery, data.Street, data.City, data.Province, data.Country, data.PostalCode, data.ID, data.ContactID)
	return err
}

func (s *SQL) Delete(ctx context.Context, contactID, addressID uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteAddressQuery, addressID, contactID)
	return err
}
