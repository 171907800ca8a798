package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"contactbook/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ Contacts = (*ContactRepository)(nil)

const (
	insertContactSQL = `INSERT INTO contacts (id, username, first_name, last_name, email, phone) VALUES (?, ?, ?, ?, ?, ?)`

	selectContactSQL = `SELECT id, username, first_name, last_name, email, phone FROM contacts WHERE username = ? AND id = ?`

	updateContactSQL = `UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ? WHERE username = ? AND id = ?`

	deleteContactSQL = `DELETE FROM contacts WHERE username = ? AND id = ?`
)

func (r *ContactRepository) Create(ctx context.Context, c *models.Contact) error {
	_, err := r.db.ExecContext(ctx, insertContactSQL,
		c.ID, c.Username, c.FirstName, c.LastName, c.Email, c.Phone)
	if err != nil {
		return fmt.Errorf("insert contact %q: %w", c.ID, err)
	}
	return nil
}

// GetByID fetches a contact by owner and id. A row matching the id but not the
// owner is indistinguishable from a missing row: both return (nil, nil).
func (r *ContactRepository) GetByID(ctx context.Context, username, id string) (*models.Contact, error) {
	var (
		c         models.Contact
		lastName  sql.NullString
		email     sql.NullString
		phone     sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectContactSQL, username, id).
		Scan(&c.ID, &c.Username, &c.FirstName, &lastName, &email, &phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select contact %q: %w", id, err)
	}
	c.LastName = lastName.String
	c.Email = email.String
	c.Phone = phone.String
	return &c, nil
}

func (r *ContactRepository) Update(ctx context.Context, c *models.Contact) error {
	_, err := r.db.ExecContext(ctx, updateContactSQL,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Username, c.ID)
	if err != nil {
		return fmt.Errorf("update contact %q: %w", c.ID, err)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, username, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteContactSQL, username, id); err != nil {
		return fmt.Errorf("delete contact %q: %w", id, err)
	}
	return nil
}

// buildSearchWhere assembles the WHERE clause for a search. The owner filter is
// always present; each optional substring filter adds an ANDed LIKE condition,
// the name one matching first OR last name. Values travel as bind args only.
func buildSearchWhere(q ContactQuery) (string, []any) {
	conds := []string{"username = ?"}
	args := []any{q.Username}

	if q.Name != "" {
		conds = append(conds, "(first_name LIKE ? OR last_name LIKE ?)")
		pat := "%" + q.Name + "%"
		args = append(args, pat, pat)
	}
	if q.Email != "" {
		conds = append(conds, "email LIKE ?")
		args = append(args, "%"+q.Email+"%")
	}
	if q.Phone != "" {
		conds = append(conds, "phone LIKE ?")
		args = append(args, "%"+q.Phone+"%")
	}

	return strings.Join(conds, " AND "), args
}

// Search runs the filtered page query plus a COUNT over the same predicate.
// Substring matching follows SQLite LIKE semantics (ASCII case-insensitive).
func (r *ContactRepository) Search(ctx context.Context, q ContactQuery) ([]models.Contact, int64, error) {
	where, args := buildSearchWhere(q)

	var total int64
	countQ := "SELECT COUNT(*) FROM contacts WHERE " + where
	if err := r.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	pageQ := "SELECT id, username, first_name, last_name, email, phone FROM contacts WHERE " +
		where + " ORDER BY first_name, last_name, id LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, pageQ, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("search contacts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Contact, 0, q.Limit)
	for rows.Next() {
		var (
			c        models.Contact
			lastName sql.NullString
			email    sql.NullString
			phone    sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Username, &c.FirstName, &lastName, &email, &phone); err != nil {
			return nil, 0, fmt.Errorf("scan contact row: %w", err)
		}
		c.LastName = lastName.String
		c.Email = email.String
		c.Phone = phone.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate contact rows: %w", err)
	}
	return out, total, nil
}
