package models

import "math"

type Brand struct {
	ID   string
	Name string
}

// Product is a single sellable item. Image holds either an object-storage
// key or an absolute URL, depending on how the catalog was loaded.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Image       string
	Brand       Brand
}

type PackageItem struct {
	Product  Product
	Quantity int
}

// Package is a bundle of products sold together at a discount.
// Prices are in whole VND.
type Package struct {
	ID               string
	Items            []PackageItem
	Discount         float64
	NumberOfShipment int
}

// TotalPrice is the undiscounted price of one package.
func (p Package) TotalPrice() int64 {
	var total int64
	for _, it := range p.Items {
		total += it.Product.Price * int64(it.Quantity)
	}
	return total
}

// TotalPriceDiscount is the price of one package after Discount, rounded
// to the nearest dong.
func (p Package) TotalPriceDiscount() int64 {
	return int64(math.Round(float64(p.TotalPrice()) * (1 - p.Discount)))
}

// HasBrand reports whether any product in the package belongs to brandID.
func (p Package) HasBrand(brandID string) bool {
	for _, it := range p.Items {
		if it.Product.Brand.ID == brandID {
			return true
		}
	}
	return false
}
