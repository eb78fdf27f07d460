package model

type Table struct {
	Id     uint `gorm:"primaryKey;autoIncrement"`
	Number int  `gorm:"not null;uniqueIndex"`
}

func (Table) TableName() string {
	return "tables"
}
