package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synctech/internal/middleware"
	"synctech/internal/models"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) GetByID(id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newTestUserService() *UserService {
	auth := NewAuthService([]byte("test-secret"), time.Hour)
	return NewUserService(newFakeUserStore(), auth)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestUserService()

	user, err := svc.Register("Operator@SyncTech.ie", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "operator@synctech.ie", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	token, logged, err := svc.Login("operator@synctech.ie", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims := &middleware.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Register("not-an-email", "s3cret-pass")
	assert.Error(t, err)

	_, err = svc.Register("ok@example.com", "short")
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Register("op@example.com", "s3cret-pass")
	require.NoError(t, err)
	_, err = svc.Register("op@example.com", "another-pass")
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Register("op@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, _, err = svc.Login("op@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = svc.Login("nobody@example.com", "whatever")
	assert.Error(t, err)
}
