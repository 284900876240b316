package store

import (
	"context"
	"testing"

	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetVideoGame(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	vg := seedVideoGame(t, s, "Outer Wilds")
	got, err := s.GetVideoGame(ctx, vg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Outer Wilds", got.Name)

	_, err = s.GetVideoGame(ctx, vg.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateVideoGameWithImage(t *testing.T) {
	s, images := newTestStore(t)

	vg := &catalog.VideoGame{Name: "Hollow Knight"}
	require.NoError(t, s.CreateVideoGame(context.Background(), vg, pngPixel))

	ok, err := images.Exists(VideoGameImageKey(vg.ID))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateVideoGameBadImageRollsBack(t *testing.T) {
	s, images := newTestStore(t)
	ctx := context.Background()

	vg := &catalog.VideoGame{Name: "Tunic"}
	err := s.CreateVideoGame(ctx, vg, []byte("not an image"))
	assert.ErrorIs(t, err, media.ErrInvalidFormat)

	n, err := s.CountVideoGames(ctx, VideoGameFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)

	keys, err := images.List("videogames/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestUpdateVideoGamePartial(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	vg := seedVideoGame(t, s, "Hades")

	name := "Hades II"
	rows, err := s.UpdateVideoGame(ctx, vg.ID, Optional("name", &name), Optional[string]("description", nil))
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	got, err := s.GetVideoGame(ctx, vg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hades II", got.Name)
	// untouched fields keep their values
	assert.Equal(t, "about Hades", got.Description)
}

func TestUpdateVideoGameNoFields(t *testing.T) {
	s, _ := newTestStore(t)
	vg := seedVideoGame(t, s, "Celeste")

	_, err := s.UpdateVideoGame(context.Background(), vg.ID)
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestUpdateVideoGameMissing(t *testing.T) {
	s, _ := newTestStore(t)

	name := "Nope"
	_, err := s.UpdateVideoGame(context.Background(), 42, Optional("name", &name))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteVideoGameCascades(t *testing.T) {
	s, images := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "alice", false)
	seedPlatform(t, s, "SWITCH")
	vg := &catalog.VideoGame{Name: "Stardew Valley"}
	require.NoError(t, s.CreateVideoGame(ctx, vg, pngPixel))
	pub := seedPublication(t, s, vg.ID, "SWITCH")
	require.NoError(t, s.CreateGame(ctx, u.ID, pub.ID))

	cat := &catalog.Category{Name: "Farming"}
	require.NoError(t, s.CreateCategory(ctx, cat))
	require.NoError(t, s.AssignCategory(ctx, vg.ID, cat.ID))

	require.NoError(t, s.DeleteVideoGame(ctx, vg.ID))

	db := s.db
	assert.Zero(t, count(t, db, &catalog.VideoGame{}))
	assert.Zero(t, count(t, db, &catalog.Publication{}))
	assert.Zero(t, count(t, db, &catalog.Game{}))
	assert.Zero(t, joinRowCount(t, db))
	// the category itself survives, only the link goes
	assert.EqualValues(t, 1, count(t, db, &catalog.Category{}))

	ok, err := images.Exists(VideoGameImageKey(vg.ID))
	require.NoError(t, err)
	assert.False(t, ok)

	// a repeat delete of the same game reports it gone
	assert.ErrorIs(t, s.DeleteVideoGame(ctx, vg.ID), ErrNotFound)
}

func TestListVideoGamesByName(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	seedVideoGame(t, s, "Dark Souls")
	seedVideoGame(t, s, "Demon's Souls")
	seedVideoGame(t, s, "Bloodborne")

	got, err := s.ListVideoGames(ctx, VideoGameFilter{Name: "souls"}, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	n, err := s.CountVideoGames(ctx, VideoGameFilter{Name: "souls"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
