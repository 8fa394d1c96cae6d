package catalog

import "github.com/dmitrijs2005/storefront/internal/server/models"

// Seed returns the demo catalog. It mirrors the seed migration so that the
// in-memory and PostgreSQL backends serve the same packages.
func Seed() []models.Package {
	leafy := models.Brand{ID: "b-leafy", Name: "Leafy Tea"}
	roast := models.Brand{ID: "b-roast", Name: "Highland Roast"}
	clay := models.Brand{ID: "b-clay", Name: "Bat Trang Clay"}

	oolong := models.Product{ID: "pr-oolong", Name: "Oolong tea", Description: "Semi-oxidised oolong, 100 g", Price: 120000, Image: "products/oolong.png", Brand: leafy}
	lotus := models.Product{ID: "pr-lotus", Name: "Lotus green tea", Description: "Green tea scented with lotus", Price: 185000, Image: "products/lotus.png", Brand: leafy}
	arabica := models.Product{ID: "pr-arabica", Name: "Arabica beans", Description: "Cau Dat arabica, 250 g", Price: 210000, Image: "products/arabica.png", Brand: roast}
	robusta := models.Product{ID: "pr-robusta", Name: "Robusta beans", Description: "Dak Lak robusta, 500 g", Price: 160000, Image: "products/robusta.png", Brand: roast}
	teapot := models.Product{ID: "pr-teapot", Name: "Clay teapot", Description: "Hand-thrown teapot, 300 ml", Price: 350000, Image: "products/teapot.png", Brand: clay}
	cups := models.Product{ID: "pr-cups", Name: "Tea cups (set 4)", Description: "Glazed cups", Price: 90000, Image: "products/cups.png", Brand: clay}

	return []models.Package{
		{ID: "pkg-coffee-duo", Discount: 0.05, NumberOfShipment: 2, Items: []models.PackageItem{
			{Product: arabica, Quantity: 1},
			{Product: robusta, Quantity: 1},
		}},
		{ID: "pkg-tea-monthly", Discount: 0.20, NumberOfShipment: 3, Items: []models.PackageItem{
			{Product: lotus, Quantity: 3},
			{Product: oolong, Quantity: 3},
		}},
		{ID: "pkg-tea-starter", Discount: 0.10, NumberOfShipment: 1, Items: []models.PackageItem{
			{Product: oolong, Quantity: 1},
			{Product: teapot, Quantity: 1},
			{Product: cups, Quantity: 1},
		}},
	}
}
