package httpapi

import (
	"time"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Wire types. Field names follow the JSON the storefront clients expect.

type userResponse struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type credentialsResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         userResponse `json:"user"`
}

type brandResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type productResponse struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Price        int64         `json:"price"`
	ProductImage string        `json:"productImage"`
	Brand        brandResponse `json:"brandID"`
}

type packageItemResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type packageResponse struct {
	ID                 string                `json:"_id"`
	Products           []packageItemResponse `json:"products"`
	TotalPrice         int64                 `json:"totalPrice"`
	TotalPriceDiscount int64                 `json:"totalPriceDiscount"`
	Discount           float64               `json:"discount"`
	NumberOfShipment   int                   `json:"numberOfShipment"`
}

type orderResponse struct {
	ID        string    `json:"_id"`
	PackageID string    `json:"packageId"`
	Quantity  int       `json:"quantity"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type orderRequest struct {
	PackageID string `json:"packageId"`
	Quantity  int    `json:"quantity"`
}

func userFromModel(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func packageFromModel(p models.Package) packageResponse {
	items := make([]packageItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, packageItemResponse{
			Product: productResponse{
				ID:           it.Product.ID,
				Name:         it.Product.Name,
				Description:  it.Product.Description,
				Price:        it.Product.Price,
				ProductImage: it.Product.Image,
				Brand:        brandResponse{ID: it.Product.Brand.ID, Name: it.Product.Brand.Name},
			},
			Quantity: it.Quantity,
		})
	}
	return packageResponse{
		ID:                 p.ID,
		Products:           items,
		TotalPrice:         p.TotalPrice(),
		TotalPriceDiscount: p.TotalPriceDiscount(),
		Discount:           p.Discount,
		NumberOfShipment:   p.NumberOfShipment,
	}
}

func orderFromModel(o models.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		PackageID: o.PackageID,
		Quantity:  o.Quantity,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
