package models

import "time"

const OrderStatusPlaced = "placed"

type Order struct {
	ID        string
	UserID    string
	PackageID string
	Quantity  int
	Total     int64
	Status    string
	CreatedAt time.Time
}
