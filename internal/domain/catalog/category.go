package catalog

import "time"

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex:idx_categories_name" json:"name"`

	VideoGames []VideoGame `gorm:"many2many:video_game_categories;" json:"video_games,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
