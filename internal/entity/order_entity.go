package entity

import "time"

type Order struct {
	Id             uint
	TableSessionId uint
	ProductId      uint
	Quantity       int
	Price          float64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// OrderLine is the read model for listing a session's orders: the order joined
// with the product name plus the computed line total.
type OrderLine struct {
	Id             uint
	TableSessionId uint
	ProductId      uint
	ProductName    string
	Quantity       int
	Price          float64
	Total          float64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// OrderSummary is the per-session bill: zero-valued when the session has no
// orders, never null.
type OrderSummary struct {
	Total    float64
	Quantity int
}
