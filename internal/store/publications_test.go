package store

import (
	"context"
	"testing"
	"time"

	"catalog-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePublicationMissingParents(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	vg := seedVideoGame(t, s, "Doom")

	pub := &catalog.Publication{
		VideoGameID:  vg.ID,
		PlatformCode: "PC",
		ReleaseDate:  time.Now(),
	}
	assert.ErrorIs(t, s.CreatePublication(ctx, pub), ErrForeignKeyNotFound)

	seedPlatform(t, s, "PC")
	pub2 := &catalog.Publication{
		VideoGameID:  vg.ID + 99,
		PlatformCode: "PC",
		ReleaseDate:  time.Now(),
	}
	assert.ErrorIs(t, s.CreatePublication(ctx, pub2), ErrForeignKeyNotFound)
}

func TestCreatePublicationDuplicateRelease(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	seedPlatform(t, s, "PC")
	vg := seedVideoGame(t, s, "Doom")
	seedPublication(t, s, vg.ID, "PC")

	dup := &catalog.Publication{
		VideoGameID:  vg.ID,
		PlatformCode: "pc", // normalized before insert
		ReleaseDate:  time.Now(),
	}
	var dupErr *DuplicateEntryError
	assert.ErrorAs(t, s.CreatePublication(ctx, dup), &dupErr)
}

func TestUpdatePublicationClearPrice(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	seedPlatform(t, s, "PC")
	vg := seedVideoGame(t, s, "Factorio")

	price := 30.0
	pub := &catalog.Publication{
		VideoGameID:  vg.ID,
		PlatformCode: "PC",
		ReleaseDate:  time.Now(),
		ReleasePrice: &price,
	}
	require.NoError(t, s.CreatePublication(ctx, pub))

	rows, err := s.UpdatePublication(ctx, pub.ID, Null("release_price"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	got, err := s.GetPublication(ctx, pub.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ReleasePrice)
}

func TestDeletePublicationCascadesOwnership(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "carol", false)
	seedPlatform(t, s, "PC")
	vg := seedVideoGame(t, s, "Rimworld")
	pub := seedPublication(t, s, vg.ID, "PC")
	require.NoError(t, s.CreateGame(ctx, u.ID, pub.ID))

	require.NoError(t, s.DeletePublication(ctx, pub.ID))

	assert.Zero(t, count(t, s.db, &catalog.Publication{}))
	assert.Zero(t, count(t, s.db, &catalog.Game{}))
	// the video game and its platform stay
	assert.EqualValues(t, 1, count(t, s.db, &catalog.VideoGame{}))
	assert.EqualValues(t, 1, count(t, s.db, &catalog.Platform{}))

	assert.ErrorIs(t, s.DeletePublication(ctx, pub.ID), ErrNotFound)
}

func TestListPublicationsFiltered(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	seedPlatform(t, s, "PC")
	seedPlatform(t, s, "PS5")
	vg := seedVideoGame(t, s, "Elden Ring")
	seedPublication(t, s, vg.ID, "PC")
	seedPublication(t, s, vg.ID, "PS5")

	pubs, err := s.ListPublications(ctx, PublicationFilter{PlatformCode: "pc"}, ListOptions{})
	require.NoError(t, err)
	require.Len(t, pubs, 1)
	require.NotNil(t, pubs[0].VideoGame)
	assert.Equal(t, "Elden Ring", pubs[0].VideoGame.Name)

	n, err := s.CountPublications(ctx, PublicationFilter{VideoGameID: &vg.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
