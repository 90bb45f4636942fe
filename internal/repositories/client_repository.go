package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"synctech/internal/models"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(client *models.Client) error {
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	const q = `
                INSERT INTO clients (
                        id, owner_id, name, email, phone, services,
                        work_done, work_left, progress, total_billed, total_paid, created_at
                )
                VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        `
	_, err := r.db.Exec(q,
		client.ID, client.OwnerID, client.Name, client.Email, client.Phone,
		client.Services, client.WorkDone, client.WorkLeft, client.Progress,
		client.TotalBilled, client.TotalPaid, client.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(client *models.Client) error {
	const q = `
                UPDATE clients
                SET name=$1, email=$2, phone=$3, services=$4, work_done=$5,
                    work_left=$6, progress=$7, total_billed=$8, total_paid=$9
                WHERE id=$10 AND owner_id=$11
        `
	_, err := r.db.Exec(q,
		client.Name, client.Email, client.Phone, client.Services,
		client.WorkDone, client.WorkLeft, client.Progress,
		client.TotalBilled, client.TotalPaid,
		client.ID, client.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientRepository) GetByID(id, ownerID string) (*models.Client, error) {
	const q = `
                SELECT id, owner_id, name, email, phone, services, work_done,
                       work_left, progress, total_billed, total_paid, created_at
                FROM clients
                WHERE id=$1 AND owner_id=$2
        `
	var c models.Client
	err := r.db.QueryRow(q, id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Services,
		&c.WorkDone, &c.WorkLeft, &c.Progress, &c.TotalBilled, &c.TotalPaid,
		&c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepository) ListByOwner(ownerID string) ([]*models.Client, error) {
	const q = `
                SELECT id, owner_id, name, email, phone, services, work_done,
                       work_left, progress, total_billed, total_paid, created_at
                FROM clients
                WHERE owner_id=$1
                ORDER BY created_at DESC
        `
	rows, err := r.db.Query(q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []*models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(
			&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Services,
			&c.WorkDone, &c.WorkLeft, &c.Progress, &c.TotalBilled, &c.TotalPaid,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, &c)
	}
	return res, rows.Err()
}

// BillingByOwner aggregates the owner's client roster in one query.
func (r *ClientRepository) BillingByOwner(ownerID string) (count int, billed, paid float64, err error) {
	const q = `
                SELECT COUNT(*), COALESCE(SUM(total_billed), 0), COALESCE(SUM(total_paid), 0)
                FROM clients
                WHERE owner_id=$1
        `
	if err = r.db.QueryRow(q, ownerID).Scan(&count, &billed, &paid); err != nil {
		return 0, 0, 0, fmt.Errorf("aggregate clients: %w", err)
	}
	return count, billed, paid, nil
}

func (r *ClientRepository) Delete(id, ownerID string) error {
	const q = `DELETE FROM clients WHERE id=$1 AND owner_id=$2`
	if _, err := r.db.Exec(q, id, ownerID); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
