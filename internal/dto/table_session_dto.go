package dto

import "time"

type OpenTableSessionRequest struct {
	TableId uint `json:"table_id" validate:"required,gt=0"`
}

type TableSessionResponse struct {
	Id       uint       `json:"id"`
	TableId  uint       `json:"table_id"`
	OpenedAt time.Time  `json:"opened_at"`
	ClosedAt *time.Time `json:"closed_at"`
}
