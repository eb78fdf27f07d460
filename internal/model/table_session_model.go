package model

import "time"

// TableSession rows are append-then-close: closed_at is set exactly once.
// cmd/migrate adds a partial unique index on (table_id) WHERE closed_at IS NULL
// so the database itself rejects a second open session for the same table.
type TableSession struct {
	Id       uint       `gorm:"primaryKey;autoIncrement"`
	TableId  uint       `gorm:"not null;index"`
	OpenedAt time.Time  `gorm:"not null"`
	ClosedAt *time.Time `gorm:"index"`
}

func (TableSession) TableName() string {
	return "tables_sessions"
}
