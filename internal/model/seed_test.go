package model

import (
	"blogs/internal/auth"
	"blogs/internal/config"
	"blogs/internal/entity/db"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedRepo(t *testing.T, name string) Repository {
	t.Helper()
	repo, err := InitRepository(&config.Config{
		DBType: DBTypeSQLite,
		DBPath: "file:" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	return repo
}

func TestSeedAdminCreatesVerifiedAdmin(t *testing.T) {
	repo := newSeedRepo(t, "seed_create")
	ctx := context.Background()

	err := SeedAdmin(ctx, repo, config.Config{
		BootstrapAdminEmail:    " Root@Example.com ",
		BootstrapAdminPassword: "changeme",
	})
	require.NoError(t, err)

	admin, err := repo.GetUserByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.Equal(t, db.UserRoleAdmin, admin.Role)
	assert.Equal(t, "Administrator", admin.Name)
	assert.True(t, admin.IsVerified)
	assert.NoError(t, auth.VerifyPassword(admin.PasswordHash, "changeme"))

	require.NoError(t, SeedAdmin(ctx, repo, config.Config{BootstrapAdminEmail: "root@example.com"}))
	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminPromotesExistingUser(t *testing.T) {
	repo := newSeedRepo(t, "seed_promote")
	ctx := context.Background()

	hash, err := auth.HashPassword("pw123")
	require.NoError(t, err)
	require.NoError(t, repo.CreateUser(ctx, &db.User{Name: "Alice", Email: "a@x.com", PasswordHash: hash, Role: db.UserRoleReader}))

	require.NoError(t, SeedAdmin(ctx, repo, config.Config{BootstrapAdminEmail: "a@x.com"}))
	user, err := repo.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, db.UserRoleAdmin, user.Role)
	assert.NoError(t, auth.VerifyPassword(user.PasswordHash, "pw123"))
}

func TestSeedAdminNeedsPasswordForNewAccount(t *testing.T) {
	repo := newSeedRepo(t, "seed_nopass")
	assert.Error(t, SeedAdmin(context.Background(), repo, config.Config{BootstrapAdminEmail: "root@example.com"}))
	assert.NoError(t, SeedAdmin(context.Background(), repo, config.Config{}))
}
