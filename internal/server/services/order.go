package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

// MaxOrderQuantity caps the number of packages in a single order.
const MaxOrderQuantity = 99

type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager) *OrderService {
	return &OrderService{db: db, repomanager: m}
}

// PlaceOrder orders quantity packages for userID at the package's current
// discounted price. An unknown package yields common.ErrorNotFound.
func (s *OrderService) PlaceOrder(ctx context.Context, userID, packageID string, quantity int) (*models.Order, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" || quantity < 1 || quantity > MaxOrderQuantity {
		return nil, common.ErrorValidation
	}

	pkg, err := s.repomanager.Catalog(s.db).GetPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("error loading package: %w", err)
	}

	order := &models.Order{
		UserID:    userID,
		PackageID: pkg.ID,
		Quantity:  quantity,
		Total:     pkg.TotalPriceDiscount() * int64(quantity),
		Status:    models.OrderStatusPlaced,
	}
	created, err := s.repomanager.Orders(s.db).Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("error creating order: %w", err)
	}
	return created, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.repomanager.Orders(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	return orders, nil
}
