package model

import "time"

// Order.Price is a snapshot of the product price at insert time, never a live
// reference, so historical totals survive later catalog price changes.
type Order struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	TableSessionId uint      `gorm:"not null;index"`
	ProductId      uint      `gorm:"not null;index"`
	Quantity       int       `gorm:"not null"`
	Price          float64   `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
