package models

import (
	"encoding/json"
	"time"
)

type Brand struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts a brand object or a bare brand id, which is what an
// unpopulated reference looks like on the wire.
func (b *Brand) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*b = Brand{ID: id}
		return nil
	}

	type brand Brand
	var v brand
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Brand(v)
	return nil
}

type Product struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	ProductImage string `json:"productImage"`
	Brand        Brand  `json:"brandID"`
}

type PackageItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Package is a bundle of products sold together. Prices are in whole VND.
type Package struct {
	ID                 string        `json:"_id"`
	Products           []PackageItem `json:"products"`
	TotalPrice         int64         `json:"totalPrice"`
	TotalPriceDiscount int64         `json:"totalPriceDiscount"`
	Discount           float64       `json:"discount"`
	NumberOfShipment   int           `json:"numberOfShipment"`
}

// Name is the display name of the package: its first product's name.
func (p Package) Name() string {
	if len(p.Products) == 0 {
		return "Package"
	}
	return p.Products[0].Product.Name
}

type Order struct {
	ID        string    `json:"_id"`
	PackageID string    `json:"packageId"`
	Quantity  int       `json:"quantity"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
