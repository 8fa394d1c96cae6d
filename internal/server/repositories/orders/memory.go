package orders

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps orders in process memory, in insertion order.
type MemoryRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.NewString()
	order.CreatedAt = r.now().UTC()
	r.orders = append(r.orders, *order)

	return order, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			result = append(result, r.orders[i])
		}
	}
	return result, nil
}
