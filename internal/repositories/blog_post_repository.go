package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"synctech/internal/models"
)

type BlogPostRepository struct {
	db *sql.DB
}

func NewBlogPostRepository(db *sql.DB) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

func (r *BlogPostRepository) Create(meta *models.BlogPostMeta) error {
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	const q = `
                INSERT INTO blog_posts (id, owner_id, topic, title, created_at)
                VALUES ($1,$2,$3,$4,$5)
        `
	if _, err := r.db.Exec(q, meta.ID, meta.OwnerID, meta.Topic, meta.Title, meta.CreatedAt); err != nil {
		return fmt.Errorf("create blog post: %w", err)
	}
	return nil
}

func (r *BlogPostRepository) CountByOwner(ownerID string) (int, error) {
	const q = `SELECT COUNT(*) FROM blog_posts WHERE owner_id=$1`
	var n int
	if err := r.db.QueryRow(q, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count blog posts: %w", err)
	}
	return n, nil
}

func (r *BlogPostRepository) ListByOwner(ownerID string) ([]*models.BlogPostMeta, error) {
	const q = `
                SELECT id, owner_id, topic, title, created_at
                FROM blog_posts
                WHERE owner_id=$1
                ORDER BY created_at DESC
        `
	rows, err := r.db.Query(q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	defer rows.Close()

	var res []*models.BlogPostMeta
	for rows.Next() {
		var m models.BlogPostMeta
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Topic, &m.Title, &m.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}
