package catalog

import (
	"time"

	"catalog-app/internal/domain/users"
)

// Game records one user's ownership of one publication.
type Game struct {
	UserID uint        `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	User   *users.User `json:"-"`

	PublicationID uint         `gorm:"primaryKey;autoIncrement:false" json:"publication_id"`
	Publication   *Publication `json:"publication,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
