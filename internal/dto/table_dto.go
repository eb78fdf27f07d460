package dto

type TableResponse struct {
	Id     uint `json:"id"`
	Number int  `json:"number"`
}
