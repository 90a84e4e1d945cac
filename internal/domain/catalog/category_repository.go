package catalog

import (
	"context"

	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ParentFilter narrows a category listing by parent. The zero value
// (Roots and Parent unset) means "all categories".
type ParentFilter struct {
	// Roots selects only categories without a parent
	Roots bool
	// Parent selects only direct children of the given category
	Parent *uuid.UUID
}

// CategoryRepository defines the persistence contract for categories
type CategoryRepository interface {
	shared.Repository[Category]

	// FindBySlug finds a category by its slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// FindByParent lists categories one level deep per the parent filter
	FindByParent(ctx context.Context, parent ParentFilter, filter shared.Filter) ([]Category, error)

	// ExistsByName reports whether another category already uses the name
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// ExistsBySlug reports whether another category already uses the slug
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}
