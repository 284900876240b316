package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/domain/users"
	"catalog-app/internal/media"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// pngPixel is the PNG signature plus the start of an IHDR chunk, enough for
// content sniffing to see image/png.
var pngPixel = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps the in-memory database and its pragmas alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&users.User{},
		&catalog.Platform{},
		&catalog.VideoGame{},
		&catalog.Publication{},
		&catalog.Game{},
		&catalog.Category{},
		&catalog.Genre{},
	))
	return db
}

func newTestStore(t *testing.T) (*Store, *media.Store) {
	t.Helper()
	images, err := media.NewStore(t.TempDir())
	require.NoError(t, err)
	return New(newTestDB(t), images), images
}

// flakyImages lets the first failAfter Puts through, then fails every Put.
// All other calls pass straight to the wrapped store.
type flakyImages struct {
	ArtifactStore
	failAfter int
	puts      int
}

func (f *flakyImages) Put(key string, data []byte) error {
	f.puts++
	if f.puts > f.failAfter {
		return errors.New("disk full")
	}
	return f.ArtifactStore.Put(key, data)
}

func seedUser(t *testing.T, s *Store, username string, isAdmin bool) *users.User {
	t.Helper()
	hash := "$2a$10$notarealhash"
	u := &users.User{
		Username:       username,
		Email:          username + "@example.com",
		HashedPassword: &hash,
		IsAdmin:        isAdmin,
	}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func seedPlatform(t *testing.T, s *Store, code string) *catalog.Platform {
	t.Helper()
	p := &catalog.Platform{Code: code, Description: code + " console"}
	require.NoError(t, s.CreatePlatform(context.Background(), p, pngPixel))
	return p
}

func seedVideoGame(t *testing.T, s *Store, name string) *catalog.VideoGame {
	t.Helper()
	vg := &catalog.VideoGame{Name: name, Description: "about " + name}
	require.NoError(t, s.CreateVideoGame(context.Background(), vg, nil))
	return vg
}

func seedPublication(t *testing.T, s *Store, videoGameID uint, platformCode string) *catalog.Publication {
	t.Helper()
	pub := &catalog.Publication{
		VideoGameID:  videoGameID,
		PlatformCode: platformCode,
		ReleaseDate:  time.Date(2020, 11, 12, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreatePublication(context.Background(), pub))
	return pub
}

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func joinRowCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM video_game_categories").Scan(&n).Error)
	return n
}
