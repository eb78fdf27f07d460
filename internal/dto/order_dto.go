package dto

import "time"

type CreateOrderRequest struct {
	TableSessionId uint `json:"table_session_id" validate:"required,gt=0"`
	ProductId      uint `json:"product_id" validate:"required,gt=0"`
	Quantity       int  `json:"quantity" validate:"required,gt=0"`
}

type OrderResponse struct {
	Id             uint       `json:"id"`
	TableSessionId uint       `json:"table_session_id"`
	ProductId      uint       `json:"product_id"`
	Quantity       int        `json:"quantity"`
	Price          float64    `json:"price"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type OrderLineResponse struct {
	Id             uint       `json:"id"`
	TableSessionId uint       `json:"table_session_id"`
	ProductId      uint       `json:"product_id"`
	Name           string     `json:"name"`
	Quantity       int        `json:"quantity"`
	Price          float64    `json:"price"`
	Total          float64    `json:"total"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type OrderSummaryResponse struct {
	Total    float64 `json:"total"`
	Quantity int     `json:"quantity"`
}
