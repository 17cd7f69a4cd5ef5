package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/okiroth/gallery_backend/internal/domain"
)

// memUsers is an in-memory UserRepository for auth tests.
type memUsers struct {
	users  map[string]domain.User
	nextID int
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]domain.User{}, nextID: 1}
}

func (m *memUsers) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := m.users[username]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) Create(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.Username]; ok {
		return domain.ErrDuplicateUsername
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	m.users[user.Username] = *user
	return nil
}

func (m *memUsers) Delete(ctx context.Context, id int) error {
	for name, u := range m.users {
		if u.ID == id {
			delete(m.users, name)
			return nil
		}
	}
	return domain.ErrNotFound
}

func addUser(t *testing.T, repo *memUsers, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}))
}

func TestSharedSecretAuthorize(t *testing.T) {
	a := NewSharedSecretAuthorizer("hunter2")

	p, err := a.Authorize("hunter2")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, p.Role)

	_, err = a.Authorize("wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSharedSecretFailsClosedOnEmptySecret(t *testing.T) {
	a := NewSharedSecretAuthorizer("")

	// Even an empty submitted password must not match an empty secret.
	_, err := a.Authorize("")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.Authorize("anything")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginIssuesTokenTheAuthorizerAccepts(t *testing.T) {
	users := newMemUsers()
	addUser(t, users, "alice", "s3cret", domain.RoleAdmin)

	secret := []byte("signing-key")
	svc := NewAuthService(users, secret, time.Hour)

	token, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	p, err := NewTokenAuthorizer(secret).Authorize(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, domain.RoleAdmin, p.Role)
	assert.NotZero(t, p.UserID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users := newMemUsers()
	addUser(t, users, "alice", "s3cret", domain.RoleAdmin)
	svc := NewAuthService(users, []byte("k"), time.Hour)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestExpiredTokenRejected(t *testing.T) {
	users := newMemUsers()
	addUser(t, users, "alice", "s3cret", domain.RoleAdmin)

	secret := []byte("signing-key")
	svc := NewAuthService(users, secret, -time.Minute)

	token, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	_, err = NewTokenAuthorizer(secret).Authorize(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTokenAuthorizerRejectsForeignSignature(t *testing.T) {
	users := newMemUsers()
	addUser(t, users, "alice", "s3cret", domain.RoleAdmin)
	svc := NewAuthService(users, []byte("key-one"), time.Hour)

	token, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)

	_, err = NewTokenAuthorizer([]byte("key-two")).Authorize(token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = NewTokenAuthorizer(nil).Authorize(token)
	assert.ErrorIs(t, err, ErrUnauthorized, "empty signing secret fails closed")
}
