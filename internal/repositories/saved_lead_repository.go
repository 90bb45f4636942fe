package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"synctech/internal/models"
)

type SavedLeadRepository struct {
	db *sql.DB
}

func NewSavedLeadRepository(db *sql.DB) *SavedLeadRepository {
	return &SavedLeadRepository{db: db}
}

func (r *SavedLeadRepository) Create(lead *models.SavedLead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	const q = `
                INSERT INTO saved_leads (
                        id, owner_id, schema_version, company_name, summary, pain_points,
                        tech_needs, contact_name, email, phone, website, address,
                        rating, reviews, notes, created_at
                )
                VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        `
	_, err := r.db.Exec(q,
		lead.ID, lead.OwnerID, lead.SchemaVersion,
		lead.CompanyName, lead.Summary, lead.PainPoints, lead.TechNeeds,
		nullStr(lead.ContactName), nullStr(lead.Email), nullStr(lead.Phone),
		nullStr(lead.Website), nullStr(lead.Address),
		nullFloat(lead.Rating), nullStr(lead.Reviews), nullStr(lead.Notes),
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create saved lead: %w", err)
	}
	return nil
}

func (r *SavedLeadRepository) ListByOwner(ownerID string) ([]*models.SavedLead, error) {
	const q = `
                SELECT id, owner_id, schema_version, company_name, summary, pain_points,
                       tech_needs,
                       COALESCE(contact_name, ''), COALESCE(email, ''), COALESCE(phone, ''),
                       COALESCE(website, ''), COALESCE(address, ''),
                       rating, COALESCE(reviews, ''), COALESCE(notes, ''), created_at
                FROM saved_leads
                WHERE owner_id = $1
                ORDER BY created_at DESC
        `
	rows, err := r.db.Query(q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list saved leads: %w", err)
	}
	defer rows.Close()

	var res []*models.SavedLead
	for rows.Next() {
		var l models.SavedLead
		var rating sql.NullFloat64
		if err := rows.Scan(
			&l.ID, &l.OwnerID, &l.SchemaVersion,
			&l.CompanyName, &l.Summary, &l.PainPoints, &l.TechNeeds,
			&l.ContactName, &l.Email, &l.Phone, &l.Website, &l.Address,
			&rating, &l.Reviews, &l.Notes, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		if rating.Valid {
			v := rating.Float64
			l.Rating = &v
		}
		res = append(res, &l)
	}
	return res, rows.Err()
}

func (r *SavedLeadRepository) CountByOwner(ownerID string) (int, error) {
	const q = `SELECT COUNT(*) FROM saved_leads WHERE owner_id=$1`
	var n int
	if err := r.db.QueryRow(q, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count saved leads: %w", err)
	}
	return n, nil
}

// Delete removes the owner's lead. Deleting an id that is already gone is
// not an error.
func (r *SavedLeadRepository) Delete(id, ownerID string) error {
	const q = `DELETE FROM saved_leads WHERE id = $1 AND owner_id = $2`
	if _, err := r.db.Exec(q, id, ownerID); err != nil {
		return fmt.Errorf("delete saved lead: %w", err)
	}
	return nil
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
