package model

import "time"

// Customer is a buying company referenced by prices and orders.
type Customer struct {
	No                 int64
	Name               string
	Tel                string
	RepresentativeName string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Deleted            bool
	DeletedAt          *time.Time
}
