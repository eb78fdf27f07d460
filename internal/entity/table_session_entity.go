package entity

import "time"

// TableSession is one continuous occupancy interval of a table. A nil ClosedAt
// means the table is currently open.
type TableSession struct {
	Id       uint
	TableId  uint
	OpenedAt time.Time
	ClosedAt *time.Time
}

func (s *TableSession) IsOpen() bool {
	return s.ClosedAt == nil
}
