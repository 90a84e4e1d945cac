package cms

import (
	"context"

	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ArticleRepository defines the persistence contract for articles
type ArticleRepository interface {
	shared.Repository[Article]

	// FindBySlug finds an article by its slug
	FindBySlug(ctx context.Context, slug string) (*Article, error)

	// ExistsBySlug reports whether another article already uses the slug
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
}
