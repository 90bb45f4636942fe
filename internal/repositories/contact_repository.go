package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"synctech/internal/models"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(sub *models.ContactSubmission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	const q = `
                INSERT INTO contact_submissions (id, name, email, message, status, created_at)
                VALUES ($1,$2,$3,$4,$5,$6)
        `
	if _, err := r.db.Exec(q, sub.ID, sub.Name, sub.Email, sub.Message, sub.Status, sub.CreatedAt); err != nil {
		return fmt.Errorf("create contact submission: %w", err)
	}
	return nil
}

func (r *ContactRepository) List() ([]*models.ContactSubmission, error) {
	const q = `
                SELECT id, name, email, message, status, created_at
                FROM contact_submissions
                ORDER BY created_at DESC
        `
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	var res []*models.ContactSubmission
	for rows.Next() {
		var s models.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &s)
	}
	return res, rows.Err()
}

// UpdateStatus sets the submission's status. Setting an already-set status
// is a no-op, which keeps the new -> read transition idempotent.
func (r *ContactRepository) UpdateStatus(id, status string) error {
	const q = `UPDATE contact_submissions SET status=$1 WHERE id=$2`
	if _, err := r.db.Exec(q, status, id); err != nil {
		return fmt.Errorf("update contact submission status: %w", err)
	}
	return nil
}

func (r *ContactRepository) Delete(id string) error {
	const q = `DELETE FROM contact_submissions WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete contact submission: %w", err)
	}
	return nil
}
