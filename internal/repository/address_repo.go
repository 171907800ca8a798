package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contactbook/internal/models"
)

type AddressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

var _ Addresses = (*AddressRepository)(nil)

const (
	insertAddressSQL = `INSERT INTO addresses (id, contact_id, street, city, province, country, postal_code) VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectAddressSQL = `SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE contact_id = ? AND id = ?`

	selectAddressesByContactSQL = `SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE contact_id = ? ORDER BY id`

	updateAddressSQL = `UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, postal_code = ? WHERE contact_id = ? AND id = ?`

	deleteAddressSQL = `DELETE FROM addresses WHERE contact_id = ? AND id = ?`
)

func (r *AddressRepository) Create(ctx context.Context, a *models.Address) error {
	_, err := r.db.ExecContext(ctx, insertAddressSQL,
		a.ID, a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode)
	if err != nil {
		return fmt.Errorf("insert address %q: %w", a.ID, err)
	}
	return nil
}

// GetByID fetches an address scoped to its contact. Returns (nil, nil) when the
// id does not exist under that contact.
func (r *AddressRepository) GetByID(ctx context.Context, contactID, id string) (*models.Address, error) {
	a, err := scanAddress(r.db.QueryRowContext(ctx, selectAddressSQL, contactID, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select address %q: %w", id, err)
	}
	return a, nil
}

func (r *AddressRepository) Update(ctx context.Context, a *models.Address) error {
	_, err := r.db.ExecContext(ctx, updateAddressSQL,
		a.Street, a.City, a.Province, a.Country, a.PostalCode, a.ContactID, a.ID)
	if err != nil {
		return fmt.Errorf("update address %q: %w", a.ID, err)
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, contactID, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteAddressSQL, contactID, id); err != nil {
		return fmt.Errorf("delete address %q: %w", id, err)
	}
	return nil
}

func (r *AddressRepository) ListByContact(ctx context.Context, contactID string) ([]models.Address, error) {
	rows, err := r.db.QueryContext(ctx, selectAddressesByContactSQL, contactID)
	if err != nil {
		return nil, fmt.Errorf("list addresses for contact %q: %w", contactID, err)
	}
	defer rows.Close()

	out := make([]models.Address, 0, 4)
	for rows.Next() {
		a, err := scanAddress(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}
	return out, nil
}

func scanAddress(scan func(...any) error) (*models.Address, error) {
	var (
		a models.Address

		street, city, province, country, postalCode sql.NullString
	)
	if err := scan(&a.ID, &a.ContactID, &street, &city, &province, &country, &postalCode); err != nil {
		return nil, err
	}
	a.Street = street.String
	a.City = city.String
	a.Province = province.String
	a.Country = country.String
	a.PostalCode = postalCode.String
	return &a, nil
}
