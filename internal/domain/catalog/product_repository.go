package catalog

import (
	"context"

	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	shared.Repository[Product]

	// FindBySlug finds a product by its slug
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// ExistsByName reports whether another product already uses the name
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// ExistsBySlug reports whether another product already uses the slug
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}
