package store

import (
	"context"

	"catalog-app/internal/domain/catalog"

	"gorm.io/gorm"
)

var categoryColumns = []string{"name"}

func (s *Store) ListCategories(ctx context.Context, name string, opts ListOptions) ([]catalog.Category, error) {
	var cats []catalog.Category
	q := whereNameContains(s.db.WithContext(ctx).Model(&catalog.Category{}), name)
	if err := opts.apply(q, "id").Find(&cats).Error; err != nil {
		return nil, classify(err)
	}
	return cats, nil
}

func (s *Store) GetCategory(ctx context.Context, id uint) (*catalog.Category, error) {
	var cat catalog.Category
	if err := s.db.WithContext(ctx).Preload("VideoGames").First(&cat, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &cat, nil
}

func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&catalog.Category{}).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

func (s *Store) CreateCategory(ctx context.Context, cat *catalog.Category) error {
	if err := s.db.WithContext(ctx).Create(cat).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, id uint, fields ...Field) (int64, error) {
	m, err := assignments(categoryColumns, fields)
	if err != nil {
		return 0, err
	}
	res := s.db.WithContext(ctx).Model(&catalog.Category{}).Where("id = ?", id).Updates(m)
	if res.Error != nil {
		return 0, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return res.RowsAffected, nil
}

// DeleteCategory removes the category and its video game links in one
// transaction.
func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	ok, err := exists(s.db.WithContext(ctx).Model(&catalog.Category{}).Where("id = ?", id))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cascadeDelete(tx, "categories", id); err != nil {
			return err
		}
		res := tx.Delete(&catalog.Category{}, "id = ?", id)
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

// AssignCategory links a video game to a category. Linking twice is a
// duplicate entry; a missing side is a foreign-key failure.
func (s *Store) AssignCategory(ctx context.Context, videoGameID, categoryID uint) error {
	err := s.db.WithContext(ctx).
		Exec("INSERT INTO video_game_categories (video_game_id, category_id) VALUES (?, ?)", videoGameID, categoryID).Error
	return classify(err)
}

func (s *Store) UnassignCategory(ctx context.Context, videoGameID, categoryID uint) error {
	res := s.db.WithContext(ctx).
		Exec("DELETE FROM video_game_categories WHERE video_game_id = ? AND category_id = ?", videoGameID, categoryID)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
