package specification

import "gorm.io/gorm"

type ByTableID struct {
	TableID uint
}

func (s ByTableID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("table_id = ?", s.TableID)
}

// Open matches sessions that have not been closed yet.
type Open struct{}

func (s Open) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("closed_at IS NULL")
}

// OpenSessionsFirst sorts by closed_at ascending with open sessions (NULL
// closed_at) on top. Postgres defaults to NULLS LAST under ASC, so the
// ordering has to be explicit.
type OpenSessionsFirst struct{}

func (s OpenSessionsFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("closed_at ASC NULLS FIRST")
}
