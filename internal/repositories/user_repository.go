package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"synctech/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	const q = `
                INSERT INTO users (id, email, password_hash, role_id, created_at)
                VALUES ($1,$2,$3,$4,$5)
        `
	if _, err := r.db.Exec(q, user.ID, user.Email, user.PasswordHash, user.RoleID, user.CreatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
                SELECT id, email, password_hash, role_id, created_at
                FROM users
                WHERE email=$1
        `
	var u models.User
	err := r.db.QueryRow(q, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id string) (*models.User, error) {
	const q = `
                SELECT id, email, password_hash, role_id, created_at
                FROM users
                WHERE id=$1
        `
	var u models.User
	err := r.db.QueryRow(q, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
