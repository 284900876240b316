package catalog

import "time"

type VideoGame struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	Publications []Publication `gorm:"foreignKey:VideoGameID" json:"publications,omitempty"`
	Categories   []Category    `gorm:"many2many:video_game_categories;" json:"categories,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
