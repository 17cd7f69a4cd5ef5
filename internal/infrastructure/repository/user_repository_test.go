package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okiroth/gallery_backend/internal/domain"
)

func TestUserCreateAndGet(t *testing.T) {
	repo := NewUserRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	u := &domain.User{Username: "alice", PasswordHash: "hash", Role: domain.RoleAdmin}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, domain.RoleAdmin, got.Role)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	repo := NewUserRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h", Role: domain.RoleManager}))
	err := repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h2", Role: domain.RoleManager})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUserDelete(t *testing.T) {
	repo := NewUserRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	u := &domain.User{Username: "carol", PasswordHash: "h", Role: domain.RoleManager}
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.Delete(ctx, u.ID))
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), domain.ErrNotFound)
}

func TestContactMessageRetention(t *testing.T) {
	repo := NewContactRepository(setupDB(t), DialectSQLite)
	ctx := context.Background()

	msg := &domain.ContactMessage{Kind: domain.MessageKindContact, Name: "dave", Email: "d@example.com", Message: "hi"}
	require.NoError(t, repo.Create(ctx, msg))
	assert.NotZero(t, msg.ID)

	// Nothing is old enough yet.
	n, err := repo.DeleteOlderThan(ctx, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.DeleteOlderThan(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	msgs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
