package trade

import (
	"github.com/bhslighting/backend/internal/domain/shared"
)

// OrderRepository defines the persistence contract for orders
type OrderRepository interface {
	shared.Repository[Order]
}
