package db

type role struct {
	ID   int64
	Name string
}
