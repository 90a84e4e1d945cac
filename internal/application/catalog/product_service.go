package catalog

import (
	"context"
	"errors"

	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/catalog"
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	storage      media.Storage
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	storage media.Storage,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
	}
}

// Create creates a new product from a normalized submission
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByName(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
	}
	exists, err = s.productRepo.ExistsBySlug(ctx, req.Slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this slug already exists")
	}

	product, err := catalog.NewProduct(req.Name, req.Slug, req.Price)
	if err != nil {
		return nil, err
	}
	if err := s.applyInput(ctx, product, req.ProductInput); err != nil {
		return nil, err
	}

	product.Images, err = s.storeUploads(ctx, req.Images)
	if err != nil {
		return nil, err
	}
	product.SEOImages, err = s.storeUploads(ctx, req.SEOImages)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Update updates a product from a normalized submission. New uploads
// replace the stored image lists; none keeps them.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsBySlug(ctx, req.Slug, product.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this slug already exists")
	}

	product.Name = req.Name
	product.Slug = req.Slug
	product.Price = req.Price
	if err := s.applyInput(ctx, product, req.ProductInput); err != nil {
		return nil, err
	}

	if len(req.Images) > 0 {
		oldImages := product.Images
		product.Images, err = s.storeUploads(ctx, req.Images)
		if err != nil {
			return nil, err
		}
		for _, img := range oldImages {
			_ = s.storage.Delete(ctx, img)
		}
	}
	if len(req.SEOImages) > 0 {
		oldImages := product.SEOImages
		product.SEOImages, err = s.storeUploads(ctx, req.SEOImages)
		if err != nil {
			return nil, err
		}
		for _, img := range oldImages {
			_ = s.storage.Delete(ctx, img)
		}
	}

	product.Touch()
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete removes a product and its stored images
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range append(product.Images, product.SEOImages...) {
		_ = s.storage.Delete(ctx, img)
	}
	return nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetBySlug retrieves a product by slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses, total, nil
}

// applyInput copies the normalized attributes onto the product,
// keeping only category references that resolve to stored categories
func (s *ProductService) applyInput(ctx context.Context, product *catalog.Product, input ProductInput) error {
	categoryIDs, err := s.existingCategories(ctx, input.CategoryIDs)
	if err != nil {
		return err
	}

	product.ShortDescription = input.ShortDescription
	product.Content = input.Content
	product.SKU = input.SKU
	product.Sizes = input.Sizes
	product.DiscountPrice = input.DiscountPrice
	product.Tax = input.Tax
	product.Stock = input.Stock
	product.Weight = input.Weight
	product.Dimensions = input.Dimensions
	product.Material = input.Material
	product.CategoryIDs = categoryIDs
	product.Tags = input.Tags
	product.Variants = input.Variants
	product.RelatedIDs = input.RelatedIDs
	product.MetaSlug = input.MetaSlug
	product.MetaTitle = input.MetaTitle
	product.MetaDescription = input.MetaDescription
	product.IsPublished = input.IsPublished
	return nil
}

// existingCategories drops references to categories that no longer
// exist instead of failing the whole submission
func (s *ProductService) existingCategories(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	var kept []uuid.UUID
	for _, id := range ids {
		_, err := s.categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		kept = append(kept, id)
	}
	return kept, nil
}

func (s *ProductService) storeUploads(ctx context.Context, files []media.File) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	stored := make([]string, 0, len(files))
	for _, f := range files {
		name, err := s.storage.Save(ctx, f.OriginalName, f.Content)
		if err != nil {
			return nil, err
		}
		stored = append(stored, name)
	}
	return stored, nil
}
