package store

import (
	"context"
	"testing"

	"catalog-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignCategory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	vg := seedVideoGame(t, s, "Slay the Spire")
	cat := &catalog.Category{Name: "Roguelike"}
	require.NoError(t, s.CreateCategory(ctx, cat))

	require.NoError(t, s.AssignCategory(ctx, vg.ID, cat.ID))

	got, err := s.GetVideoGame(ctx, vg.ID)
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, "Roguelike", got.Categories[0].Name)

	// linking the same pair again collides
	var dup *DuplicateEntryError
	assert.ErrorAs(t, s.AssignCategory(ctx, vg.ID, cat.ID), &dup)
}

func TestAssignCategoryMissingSide(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	vg := seedVideoGame(t, s, "Spelunky")

	assert.ErrorIs(t, s.AssignCategory(ctx, vg.ID, 404), ErrForeignKeyNotFound)
	assert.ErrorIs(t, s.AssignCategory(ctx, 404, 404), ErrForeignKeyNotFound)
}

func TestUnassignCategory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	vg := seedVideoGame(t, s, "Hades")
	cat := &catalog.Category{Name: "Roguelike"}
	require.NoError(t, s.CreateCategory(ctx, cat))
	require.NoError(t, s.AssignCategory(ctx, vg.ID, cat.ID))

	require.NoError(t, s.UnassignCategory(ctx, vg.ID, cat.ID))
	assert.Zero(t, joinRowCount(t, s.db))

	assert.ErrorIs(t, s.UnassignCategory(ctx, vg.ID, cat.ID), ErrNotFound)
}

func TestDeleteCategoryKeepsVideoGames(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	vg := seedVideoGame(t, s, "Into the Breach")
	cat := &catalog.Category{Name: "Strategy"}
	require.NoError(t, s.CreateCategory(ctx, cat))
	require.NoError(t, s.AssignCategory(ctx, vg.ID, cat.ID))

	require.NoError(t, s.DeleteCategory(ctx, cat.ID))

	assert.Zero(t, count(t, s.db, &catalog.Category{}))
	assert.Zero(t, joinRowCount(t, s.db))
	assert.EqualValues(t, 1, count(t, s.db, &catalog.VideoGame{}))
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateCategory(ctx, &catalog.Category{Name: "Indie"}))

	var dup *DuplicateEntryError
	assert.ErrorAs(t, s.CreateCategory(ctx, &catalog.Category{Name: "Indie"}), &dup)
}
