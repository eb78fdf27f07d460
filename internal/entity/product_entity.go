package entity

import "time"

type Product struct {
	Id        uint
	Name      string
	Price     float64
	CreatedAt time.Time
	UpdatedAt *time.Time
}
