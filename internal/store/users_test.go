package store

import (
	"context"
	"testing"

	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateUsername(t *testing.T) {
	s, _ := newTestStore(t)
	seedUser(t, s, "frank", false)

	u := &users.User{Username: "frank", Email: "other@example.com"}
	var dup *DuplicateEntryError
	assert.ErrorAs(t, s.CreateUser(context.Background(), u), &dup)
}

func TestGetUserByEmail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	seedUser(t, s, "grace", false)

	u, err := s.GetUserByEmail(ctx, "grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, "grace", u.Username)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserPartial(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "henry", false)

	first := "Henry"
	rows, err := s.UpdateUser(ctx, u.ID, Optional("firstname", &first))
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Firstname)
	assert.Equal(t, "Henry", *got.Firstname)
	// the rest of the row is untouched
	assert.Equal(t, "henry@example.com", got.Email)
}

func TestDeleteUserCascadesCollection(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "ivy", false)
	seedPlatform(t, s, "PC")
	vg := seedVideoGame(t, s, "Noita")
	pub := seedPublication(t, s, vg.ID, "PC")
	require.NoError(t, s.CreateGame(ctx, u.ID, pub.ID))

	require.NoError(t, s.DeleteUser(ctx, u.ID))

	assert.Zero(t, count(t, s.db, &users.User{}))
	assert.Zero(t, count(t, s.db, &catalog.Game{}))
	// the catalog rows belong to everyone
	assert.EqualValues(t, 1, count(t, s.db, &catalog.Publication{}))
}

func TestDeleteAdminForbidden(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	admin := seedUser(t, s, "root", true)
	seedPlatform(t, s, "PC")
	vg := seedVideoGame(t, s, "Quake")
	pub := seedPublication(t, s, vg.ID, "PC")
	require.NoError(t, s.CreateGame(ctx, admin.ID, pub.ID))

	assert.ErrorIs(t, s.DeleteUser(ctx, admin.ID), ErrDeleteForbidden)

	// nothing was touched, not even the admin's collection
	assert.EqualValues(t, 1, count(t, s.db, &users.User{}))
	assert.EqualValues(t, 1, count(t, s.db, &catalog.Game{}))
}

func TestDeleteUserMissing(t *testing.T) {
	s, _ := newTestStore(t)
	assert.ErrorIs(t, s.DeleteUser(context.Background(), 42), ErrNotFound)
}
