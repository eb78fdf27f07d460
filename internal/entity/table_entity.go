package entity

type Table struct {
	Id     uint
	Number int
}
