package dto

import "time"

type CreateProductRequest struct {
	Name  string  `json:"name" validate:"required,min=6"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

// UpdateProductRequest allows shorter names than create (min 2 vs min 6).
type UpdateProductRequest struct {
	Id    uint    `json:"-"`
	Name  string  `json:"name" validate:"required,min=2"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

type ProductResponse struct {
	Id        uint       `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
