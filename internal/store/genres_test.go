package store

import (
	"context"
	"testing"

	"catalog-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreCRUD(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	g := &catalog.Genre{Name: "Metroidvania", Description: "exploration platformers"}
	require.NoError(t, s.CreateGenre(ctx, g))

	got, err := s.GetGenre(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metroidvania", got.Name)

	desc := "interconnected-map platformers"
	rows, err := s.UpdateGenre(ctx, g.ID, Optional("description", &desc))
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	list, err := s.ListGenres(ctx, "metroid", ListOptions{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteGenre(ctx, g.ID))
	assert.ErrorIs(t, s.DeleteGenre(ctx, g.ID), ErrNotFound)
	_, err = s.GetGenre(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateGenreDuplicateName(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateGenre(ctx, &catalog.Genre{Name: "RPG"}))

	var dup *DuplicateEntryError
	assert.ErrorAs(t, s.CreateGenre(ctx, &catalog.Genre{Name: "RPG"}), &dup)
}
