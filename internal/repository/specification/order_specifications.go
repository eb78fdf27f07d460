package specification

import "gorm.io/gorm"

type ByTableSessionID struct {
	TableSessionID uint
}

func (s ByTableSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("table_session_id = ?", s.TableSessionID)
}
