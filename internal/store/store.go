// Package store is the transactional engine behind the catalog HTTP layer.
// Every mutation runs inside one gorm transaction; deletes of entities with
// dependents cascade in foreign-key order (see cascade.go); image artifacts
// are kept in lockstep with the rows that own them; backend failures are
// classified into the error taxonomy in errors.go before they leave the
// package.
package store

import (
	"fmt"

	"gorm.io/gorm"
)

// ArtifactStore is the non-transactional image store the engine coordinates
// with the database. media.Store implements it; tests substitute failing
// implementations.
type ArtifactStore interface {
	Put(key string, data []byte) error
	Rename(oldKey, newKey string) error
	Delete(key string) error
	List(prefix string) ([]string, error)
}

type Store struct {
	db     *gorm.DB
	images ArtifactStore
}

func New(db *gorm.DB, images ArtifactStore) *Store {
	return &Store{db: db, images: images}
}

// PlatformImageKey is the artifact key for a platform's image. The code must
// already be normalized.
func PlatformImageKey(code string) string {
	return "platforms/" + code
}

// VideoGameImageKey is the artifact key for a video game's image.
func VideoGameImageKey(id uint) string {
	return fmt.Sprintf("videogames/%d", id)
}
