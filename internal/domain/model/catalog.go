package model

import "time"

// Category is a node of the three-level product category tree.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
	Level    int
	Path     string
}

// Product is a sellable item with a default list price in KRW.
type Product struct {
	Code         string
	Name         string
	CategoryID   *int64
	CategoryName string
	CategoryPath string
	Price        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Deleted      bool
	DeletedAt    *time.Time
}
