package specification

import "gorm.io/gorm"

// NameLike filters products by case-insensitive substring match. An empty
// fragment matches everything.
type NameLike struct {
	Fragment string
}

func (s NameLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Fragment + "%"
	return db.Where("name ILIKE ?", pattern)
}
