package catalog

import "time"

// Platform is keyed by its human-assigned code (PS5, SWITCH, ...), stored
// upper-cased. Each platform row owns exactly one image artifact keyed by
// that code.
type Platform struct {
	Code         string `gorm:"primaryKey;size:16" json:"code"`
	Description  string `gorm:"not null" json:"description"`
	Abbreviation string `json:"abbreviation"`

	Publications []Publication `gorm:"foreignKey:PlatformCode;references:Code" json:"publications,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
