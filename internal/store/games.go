package store

import (
	"context"

	"catalog-app/internal/domain/catalog"
)

// ListGames returns a user's owned publications, oldest ownership first.
func (s *Store) ListGames(ctx context.Context, userID uint, opts ListOptions) ([]catalog.Game, error) {
	var games []catalog.Game
	q := s.db.WithContext(ctx).
		Model(&catalog.Game{}).
		Where("user_id = ?", userID).
		Preload("Publication.VideoGame").
		Preload("Publication.Platform").
		Order("publication_id ASC")
	if opts.Page != nil && opts.Limit != nil {
		q = q.Offset((*opts.Page - 1) * *opts.Limit).Limit(*opts.Limit)
	}
	if err := q.Find(&games).Error; err != nil {
		return nil, classify(err)
	}
	return games, nil
}

func (s *Store) CountGames(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&catalog.Game{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// CreateGame adds a publication to a user's collection. Owning it twice is a
// duplicate entry; a missing user or publication is a foreign-key failure.
func (s *Store) CreateGame(ctx context.Context, userID, publicationID uint) error {
	g := catalog.Game{UserID: userID, PublicationID: publicationID}
	if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (s *Store) DeleteGame(ctx context.Context, userID, publicationID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND publication_id = ?", userID, publicationID).
		Delete(&catalog.Game{})
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
