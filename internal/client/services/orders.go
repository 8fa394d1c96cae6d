package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, packageID string, quantity int) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type orderService struct {
	api API
}

func NewOrderService(api API) OrderService {
	return &orderService{api: api}
}

type placeOrderRequest struct {
	PackageID string `json:"packageId"`
	Quantity  int    `json:"quantity"`
}

func (o *orderService) PlaceOrder(ctx context.Context, packageID string, quantity int) (models.Order, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" || quantity < 1 {
		return models.Order{}, fmt.Errorf("%w: need a package id and a positive quantity", common.ErrorValidation)
	}

	var order models.Order
	req := placeOrderRequest{PackageID: packageID, Quantity: quantity}
	if err := o.api.Do(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return models.Order{}, fmt.Errorf("place order: %w", err)
	}
	return order, nil
}

func (o *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := o.api.Do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
