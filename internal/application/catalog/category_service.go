package catalog

import (
	"context"
	"errors"

	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/catalog"
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	storage      media.Storage
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, storage media.Storage) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		storage:      storage,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = shared.Slugify(req.Name)
	}

	if err := s.checkUnique(ctx, req.Name, slug, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, req.ParentID, uuid.Nil); err != nil {
		return nil, err
	}

	if req.Image == nil {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Category image is required")
	}
	image, err := s.storage.Save(ctx, req.Image.OriginalName, req.Image.Content)
	if err != nil {
		return nil, err
	}

	category, err := catalog.NewCategory(req.Name, slug, req.Description, image, req.ParentID)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category, s.storage), nil
}

// Update updates a category. A new image replaces and deletes the
// stored one.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = shared.Slugify(req.Name)
	}

	if err := s.checkUnique(ctx, req.Name, slug, category.ID); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, req.ParentID, category.ID); err != nil {
		return nil, err
	}

	if err := category.Update(req.Name, slug, req.Description, req.ParentID); err != nil {
		return nil, err
	}

	var oldImage string
	if req.Image != nil {
		image, err := s.storage.Save(ctx, req.Image.OriginalName, req.Image.Content)
		if err != nil {
			return nil, err
		}
		oldImage = category.ReplaceImage(image)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	if oldImage != "" {
		_ = s.storage.Delete(ctx, oldImage)
	}

	return ToCategoryResponse(category, s.storage), nil
}

// Delete removes a category and its image file
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.storage.Delete(ctx, category.Image)
	return nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category, s.storage), nil
}

// GetBySlug retrieves a category by slug
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category, s.storage), nil
}

// List answers "categories by parent" queries one level deep: all
// categories, only roots, or only the direct children of a parent
func (s *CategoryService) List(ctx context.Context, parent catalog.ParentFilter, filter shared.Filter) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindByParent(ctx, parent, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i], s.storage)
	}
	return responses, nil
}

func (s *CategoryService) checkUnique(ctx context.Context, name, slug string, excludeID uuid.UUID) error {
	exists, err := s.categoryRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	}

	exists, err = s.categoryRepo.ExistsBySlug(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
	}
	return nil
}

func (s *CategoryService) checkParent(ctx context.Context, parentID *uuid.UUID, selfID uuid.UUID) error {
	if parentID == nil {
		return nil
	}
	if *parentID == selfID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}
	if _, err := s.categoryRepo.FindByID(ctx, *parentID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_PARENT", "Parent category not found")
		}
		return err
	}
	return nil
}
