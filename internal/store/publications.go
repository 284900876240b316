package store

import (
	"context"

	"catalog-app/internal/domain/catalog"

	"gorm.io/gorm"
)

var publicationColumns = []string{"release_date", "release_price", "store_page_url"}

// PublicationFilter narrows publication lookups.
type PublicationFilter struct {
	ID           *uint
	VideoGameID  *uint
	PlatformCode string
}

func (f PublicationFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}
	if f.VideoGameID != nil {
		q = q.Where("video_game_id = ?", *f.VideoGameID)
	}
	if f.PlatformCode != "" {
		q = q.Where("platform_code = ?", NormalizeCode(f.PlatformCode))
	}
	return q
}

func (s *Store) ListPublications(ctx context.Context, f PublicationFilter, opts ListOptions) ([]catalog.Publication, error) {
	var pubs []catalog.Publication
	q := f.apply(s.db.WithContext(ctx).Model(&catalog.Publication{})).
		Preload("VideoGame").
		Preload("Platform")
	if err := opts.apply(q, "id").Find(&pubs).Error; err != nil {
		return nil, classify(err)
	}
	return pubs, nil
}

func (s *Store) GetPublication(ctx context.Context, id uint) (*catalog.Publication, error) {
	var pub catalog.Publication
	err := s.db.WithContext(ctx).
		Preload("VideoGame").
		Preload("Platform").
		First(&pub, "id = ?", id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &pub, nil
}

func (s *Store) CountPublications(ctx context.Context, f PublicationFilter) (int64, error) {
	var n int64
	if err := f.apply(s.db.WithContext(ctx).Model(&catalog.Publication{})).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// CreatePublication inserts one release. A missing video game or platform
// surfaces as ErrForeignKeyNotFound, a second release of the same game on
// the same platform as DuplicateEntryError.
func (s *Store) CreatePublication(ctx context.Context, pub *catalog.Publication) error {
	pub.PlatformCode = NormalizeCode(pub.PlatformCode)
	if err := s.db.WithContext(ctx).Create(pub).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (s *Store) UpdatePublication(ctx context.Context, id uint, fields ...Field) (int64, error) {
	m, err := assignments(publicationColumns, fields)
	if err != nil {
		return 0, err
	}
	res := s.db.WithContext(ctx).Model(&catalog.Publication{}).Where("id = ?", id).Updates(m)
	if res.Error != nil {
		return 0, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return res.RowsAffected, nil
}

// DeletePublication removes the release and the ownership rows referencing
// it in one transaction.
func (s *Store) DeletePublication(ctx context.Context, id uint) error {
	ok, err := exists(s.db.WithContext(ctx).Model(&catalog.Publication{}).Where("id = ?", id))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cascadeDelete(tx, "publications", id); err != nil {
			return err
		}
		res := tx.Delete(&catalog.Publication{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return classify(err)
}
