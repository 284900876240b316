package store

import (
	"context"
	"strings"

	"catalog-app/internal/domain/users"

	"gorm.io/gorm"
)

var userColumns = []string{"username", "email", "hashed_password", "firstname", "lastname", "is_admin"}

// UserFilter narrows user lookups.
type UserFilter struct {
	ID       *uint
	Username string // case-insensitive substring
	Email    string // exact
}

func (f UserFilter) apply(q *gorm.DB) *gorm.DB {
	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}
	if f.Username != "" {
		q = q.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(f.Username)+"%")
	}
	if f.Email != "" {
		q = q.Where("email = ?", f.Email)
	}
	return q
}

func (s *Store) ListUsers(ctx context.Context, f UserFilter, opts ListOptions) ([]users.User, error) {
	var out []users.User
	q := f.apply(s.db.WithContext(ctx).Model(&users.User{})).Order("id ASC")
	if opts.Page != nil && opts.Limit != nil {
		q = q.Offset((*opts.Page - 1) * *opts.Limit).Limit(*opts.Limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*users.User, error) {
	var u users.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	var u users.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

func (s *Store) GetUserByGoogleSub(ctx context.Context, sub string) (*users.User, error) {
	var u users.User
	if err := s.db.WithContext(ctx).First(&u, "google_sub = ?", sub).Error; err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&users.User{}).Count(&n).Error; err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// CreateUser inserts the row; username/email collisions surface as
// DuplicateEntryError. The password must already be hashed.
func (s *Store) CreateUser(ctx context.Context, u *users.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id uint, fields ...Field) (int64, error) {
	m, err := assignments(userColumns, fields)
	if err != nil {
		return 0, err
	}
	res := s.db.WithContext(ctx).Model(&users.User{}).Where("id = ?", id).Updates(m)
	if res.Error != nil {
		return 0, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}
	return res.RowsAffected, nil
}

// SaveUser persists in-place edits of a loaded user (Google account
// linking).
func (s *Store) SaveUser(ctx context.Context, u *users.User) error {
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		return classify(err)
	}
	return nil
}

// DeleteUser removes a user and the collection rows they own. An admin user
// can never be deleted; the policy check runs before the cascade is even
// planned.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if u.IsAdmin {
		return ErrDeleteForbidden
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cascadeDelete(tx, "users", id); err != nil {
			return err
		}
		res := tx.Delete(&users.User{}, "id = ?", id)
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
