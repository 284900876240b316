package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"catalog-app/internal/domain/catalog"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

var platformColumns = []string{"code", "description", "abbreviation"}

// NormalizeCode upper-cases a platform code, the form it has everywhere past
// the HTTP boundary.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *Store) ListPlatforms(ctx context.Context, opts ListOptions) ([]catalog.Platform, error) {
	var platforms []catalog.Platform
	q := s.db.WithContext(ctx).Model(&catalog.Platform{}).Order("code ASC")
	if opts.Page != nil && opts.Limit != nil {
		q = q.Offset((*opts.Page - 1) * *opts.Limit).Limit(*opts.Limit)
	}
	if err := q.Find(&platforms).Error; err != nil {
		return nil, classify(err)
	}
	return platforms, nil
}

func (s *Store) GetPlatform(ctx context.Context, code string) (*catalog.Platform, error) {
	var p catalog.Platform
	err := s.db.WithContext(ctx).First(&p, "code = ?", NormalizeCode(code)).Error
	if err != nil {
		return nil, classify(err)
	}
	return &p, nil
}

func (s *Store) PlatformExists(ctx context.Context, code string) (bool, error) {
	return exists(s.db.WithContext(ctx).Model(&catalog.Platform{}).Where("code = ?", NormalizeCode(code)))
}

func (s *Store) CountPlatforms(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&catalog.Platform{}).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// CreatePlatform inserts the row and writes its image. A platform row
// implies an image artifact, so the image is required; a failed write rolls
// the insert back, and an artifact written for a rolled-back insert is
// removed.
func (s *Store) CreatePlatform(ctx context.Context, p *catalog.Platform, image []byte) error {
	p.Code = NormalizeCode(p.Code)
	var written string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		key := PlatformImageKey(p.Code)
		if err := s.images.Put(key, image); err != nil {
			return err
		}
		written = key
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

// UpdatePlatform applies a sparse field set by code; image bytes, when
// given, replace the platform's artifact. Sending only an image is a valid
// update. A code change renames the artifact only after the row update has
// committed.
func (s *Store) UpdatePlatform(ctx context.Context, code string, image []byte, fields ...Field) (int64, error) {
	code = NormalizeCode(code)
	m, err := assignments(platformColumns, fields)
	if err != nil {
		if !errors.Is(err, ErrNoFieldsToUpdate) || image == nil {
			return 0, err
		}
		m = nil
	}
	newCode := code
	if v, ok := m["code"]; ok {
		nc, _ := v.(string)
		newCode = NormalizeCode(nc)
		m["code"] = newCode
	}

	var affected int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(m) > 0 {
			res := tx.Model(&catalog.Platform{}).Where("code = ?", code).Updates(m)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrNotFound
			}
			affected = res.RowsAffected
		} else {
			ok, err := exists(tx.Model(&catalog.Platform{}).Where("code = ?", code))
			if err != nil {
				return err
			}
			if !ok {
				return ErrNotFound
			}
			affected = 1
		}
		if image != nil {
			// replace under the old key; renamed below once the commit sticks
			return s.images.Put(PlatformImageKey(code), image)
		}
		return nil
	})
	if err != nil {
		return 0, classify(err)
	}

	if newCode != code {
		if err := s.images.Rename(PlatformImageKey(code), PlatformImageKey(newCode)); err != nil {
			log.Warn("platform image left under stale key, reconcile later",
				"from", code, "to", newCode, "err", err)
		}
	}
	return affected, nil
}

// DeletePlatform cascades through the platform's publications and the games
// owned against them, then removes the platform image once the commit is
// durable. A commit failure leaves the artifact untouched.
func (s *Store) DeletePlatform(ctx context.Context, code string) error {
	code = NormalizeCode(code)
	ok, err := s.PlatformExists(ctx, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cascadeDelete(tx, "platforms", code); err != nil {
			return err
		}
		res := tx.Delete(&catalog.Platform{}, "code = ?", code)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return classify(err)
	}

	if err := s.images.Delete(PlatformImageKey(code)); err != nil {
		log.Warn("platform image left dangling, reconcile later", "code", code, "err", err)
	}
	return nil
}

// NewVideoGame is one entry of the compound platform-with-games create. Each
// entry carries its own image bytes.
type NewVideoGame struct {
	Name         string
	Description  string
	ReleaseDate  time.Time
	ReleasePrice *float64
	StorePageURL *string
	Image        []byte
}

// CreatePlatformWithVideoGames creates one platform, N video games and the N
// publications linking them as a single unit: all N+1 inserts commit
// together, and all N+1 image writes either all succeed or are fully
// reverted. Images are staged last, once every insert is in, so an image
// failure rolls back the whole transaction; artifacts already written for a
// rolled-back transaction are removed.
func (s *Store) CreatePlatformWithVideoGames(ctx context.Context, p *catalog.Platform, image []byte, games []NewVideoGame) error {
	p.Code = NormalizeCode(p.Code)
	var written []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}

		ids := make([]uint, len(games))
		for i := range games {
			vg := catalog.VideoGame{Name: games[i].Name, Description: games[i].Description}
			if err := tx.Create(&vg).Error; err != nil {
				return err
			}
			pub := catalog.Publication{
				VideoGameID:  vg.ID,
				PlatformCode: p.Code,
				ReleaseDate:  games[i].ReleaseDate,
				ReleasePrice: games[i].ReleasePrice,
				StorePageURL: games[i].StorePageURL,
			}
			if err := tx.Create(&pub).Error; err != nil {
				return err
			}
			ids[i] = vg.ID
		}

		if err := s.images.Put(PlatformImageKey(p.Code), image); err != nil {
			return err
		}
		written = append(written, PlatformImageKey(p.Code))
		for i, id := range ids {
			key := VideoGameImageKey(id)
			if err := s.images.Put(key, games[i].Image); err != nil {
				return err
			}
			written = append(written, key)
		}
		return nil
	})
	if err != nil {
		for _, key := range written {
			_ = s.images.Delete(key)
		}
		return classify(err)
	}
	return nil
}
