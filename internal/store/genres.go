package store

import (
	"context"

	"catalog-app/internal/domain/catalog"
)

var genreColumns = []string{"name", "description"}

func (s *Store) ListGenres(ctx context.Context, name string, opts ListOptions) ([]catalog.Genre, error) {
	var genres []catalog.Genre
	q := whereNameContains(s.db.WithContext(ctx).Model(&catalog.Genre{}), name)
	if err := opts.apply(q, "id").Find(&genres).Error; err != nil {
		return nil, classify(err)
	}
	return genres, nil
}

func (s *Store) GetGenre(ctx context.Context, id uint) (*catalog.Genre, error) {
	var g catalog.Genre
	if err := s.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &g, nil
}

func (s *Store) CountGenres(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&catalog.Genre{}).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

func (s *Store) CreateGenre(ctx context.Context, g *catalog.Genre) error {
	if err := s.db.WithContext(ctx).Create(g).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (s *Store) UpdateGenre(ctx context.Context, id uint, fields ...Field) (int64, error) {
	m, err := assignments(genreColumns, fields)
	if err != nil {
		return 0, err
	}
	res := s.db.WithContext(ctx).Model(&catalog.Genre{}).Where("id = ?", id).Updates(m)
	if res.Error != nil {
		return 0, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return res.RowsAffected, nil
}

// DeleteGenre has no dependents in the foreign-key graph, so no cascade.
func (s *Store) DeleteGenre(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&catalog.Genre{}, "id = ?", id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
