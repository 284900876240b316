package store

import (
	"context"

	"catalog-app/internal/domain/catalog"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

var videoGameColumns = []string{"name", "description"}

// VideoGameFilter narrows video game lookups. Zero values mean "no filter".
type VideoGameFilter struct {
	ID   *uint
	Name string // case-insensitive substring
}

func (f VideoGameFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}
	return whereNameContains(q, f.Name)
}

func (s *Store) ListVideoGames(ctx context.Context, f VideoGameFilter, opts ListOptions) ([]catalog.VideoGame, error) {
	var games []catalog.VideoGame
	q := f.apply(s.db.WithContext(ctx).Model(&catalog.VideoGame{}))
	if err := opts.apply(q, "id").Find(&games).Error; err != nil {
		return nil, classify(err)
	}
	return games, nil
}

func (s *Store) GetVideoGame(ctx context.Context, id uint) (*catalog.VideoGame, error) {
	var vg catalog.VideoGame
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("Publications").
		First(&vg, "id = ?", id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &vg, nil
}

func (s *Store) VideoGameExists(ctx context.Context, id uint) (bool, error) {
	return exists(s.db.WithContext(ctx).Model(&catalog.VideoGame{}).Where("id = ?", id))
}

// CountVideoGames ignores pagination so clients can compute page counts.
func (s *Store) CountVideoGames(ctx context.Context, f VideoGameFilter) (int64, error) {
	var n int64
	if err := f.apply(s.db.WithContext(ctx).Model(&catalog.VideoGame{})).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// CreateVideoGame inserts the row and, when image bytes are given, writes
// the game's artifact. The artifact write happens last inside the
// transaction; its failure rolls the insert back.
func (s *Store) CreateVideoGame(ctx context.Context, vg *catalog.VideoGame, image []byte) error {
	var written string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vg).Error; err != nil {
			return err
		}
		if image != nil {
			key := VideoGameImageKey(vg.ID)
			if err := s.images.Put(key, image); err != nil {
				return err
			}
			written = key
		}
		return nil
	})
	if err != nil {
		if written != "" {
			_ = s.images.Delete(written)
		}
		return classify(err)
	}
	return nil
}

// UpdateVideoGame applies a sparse field set by id. Zero rows affected means
// the game does not exist.
func (s *Store) UpdateVideoGame(ctx context.Context, id uint, fields ...Field) (int64, error) {
	m, err := assignments(videoGameColumns, fields)
	if err != nil {
		return 0, err
	}
	res := s.db.WithContext(ctx).Model(&catalog.VideoGame{}).Where("id = ?", id).Updates(m)
	if res.Error != nil {
		return 0, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return res.RowsAffected, nil
}

// DeleteVideoGame removes the game and every row that references it (games
// owned by users, publications, category links) in one transaction, then
// removes its image artifact once the commit is durable.
func (s *Store) DeleteVideoGame(ctx context.Context, id uint) error {
	ok, err := s.VideoGameExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cascadeDelete(tx, "video_games", id); err != nil {
			return err
		}
		res := tx.Delete(&catalog.VideoGame{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// root vanished between the existence check and our delete
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return classify(err)
	}

	if err := s.images.Delete(VideoGameImageKey(id)); err != nil {
		log.Warn("video game image left dangling, reconcile later", "id", id, "err", err)
	}
	return nil
}
