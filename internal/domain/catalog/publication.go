package catalog

import "time"

// Publication is one release of a video game on a platform.
type Publication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VideoGameID uint       `gorm:"not null;uniqueIndex:idx_publications_release,priority:1" json:"video_game_id"`
	VideoGame   *VideoGame `json:"video_game,omitempty"`

	PlatformCode string    `gorm:"not null;size:16;index;uniqueIndex:idx_publications_release,priority:2" json:"platform_code"`
	Platform     *Platform `gorm:"foreignKey:PlatformCode;references:Code" json:"platform,omitempty"`

	ReleaseDate  time.Time `gorm:"not null" json:"release_date"`
	ReleasePrice *float64  `json:"release_price,omitempty"`
	StorePageURL *string   `gorm:"column:store_page_url" json:"store_page_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
