package store

import (
	"strings"

	"gorm.io/gorm"
)

// ListOptions are the pagination and ordering knobs shared by every list
// operation. Page is 1-based; pagination only applies when both Page and
// Limit are present. The default order is ascending by primary key.
type ListOptions struct {
	Page       *int
	Limit      *int
	SortByName bool
}

func (o ListOptions) apply(q *gorm.DB, pk string) *gorm.DB {
	if o.SortByName {
		q = q.Order("name ASC")
	} else {
		q = q.Order(pk + " ASC")
	}
	if o.Page != nil && o.Limit != nil {
		q = q.Offset((*o.Page - 1) * *o.Limit).Limit(*o.Limit)
	}
	return q
}

// whereNameContains adds a case-insensitive substring filter when name is
// non-empty.
func whereNameContains(q *gorm.DB, name string) *gorm.DB {
	if name == "" {
		return q
	}
	return q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
}

// exists checks row count only; it never reads row contents.
func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, classify(err)
	}
	return n > 0, nil
}
