package catalog

import (
	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest carries a decoded category-create submission
type CreateCategoryRequest struct {
	Name        string
	Slug        string
	Description string
	ParentID    *uuid.UUID
	Image       *media.File
}

// UpdateCategoryRequest carries a decoded category-update submission.
// A nil Image keeps the stored one.
type UpdateCategoryRequest struct {
	Name        string
	Slug        string
	Description string
	ParentID    *uuid.UUID
	Image       *media.File
}

// CategoryResponse represents a category in service responses
type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	ImageURL    string  `json:"image_url"`
	ParentID    *string `json:"parent_category"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToCategoryResponse maps a category to its response shape
func ToCategoryResponse(c *catalog.Category, storage media.Storage) *CategoryResponse {
	resp := &CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		ImageURL:    storage.URL(c.Image),
		CreatedAt:   c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   c.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if c.ParentID != nil {
		id := c.ParentID.String()
		resp.ParentID = &id
	}
	return resp
}

// ProductInput is the normalized form of a multipart product
// submission, produced by NormalizeProductForm
type ProductInput struct {
	Name             string
	Slug             string
	ShortDescription string
	Content          string
	SKU              string
	Sizes            string
	Price            decimal.Decimal
	DiscountPrice    decimal.Decimal
	Tax              decimal.Decimal
	Stock            int
	Weight           decimal.Decimal
	Dimensions       catalog.Dimensions
	Material         []string
	CategoryIDs      []uuid.UUID
	Tags             []string
	Variants         []catalog.Variant
	RelatedIDs       []uuid.UUID
	MetaSlug         string
	MetaTitle        string
	MetaDescription  string
	IsPublished      bool
}

// CreateProductRequest carries a normalized product-create submission
type CreateProductRequest struct {
	ProductInput
	Images    []media.File
	SEOImages []media.File
}

// UpdateProductRequest carries a normalized product-update submission.
// Empty Images keeps the stored ones.
type UpdateProductRequest struct {
	ProductInput
	Images    []media.File
	SEOImages []media.File
}

// ProductResponse represents a product in service responses
type ProductResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Slug             string             `json:"slug"`
	ShortDescription string             `json:"short_description,omitempty"`
	Content          string             `json:"content,omitempty"`
	SKU              string             `json:"sku,omitempty"`
	Sizes            string             `json:"sizes,omitempty"`
	Price            decimal.Decimal    `json:"price"`
	DiscountPrice    decimal.Decimal    `json:"discount_price"`
	Tax              decimal.Decimal    `json:"tax"`
	Stock            int                `json:"stock"`
	Weight           decimal.Decimal    `json:"weight"`
	Dimensions       catalog.Dimensions `json:"dimensions"`
	Material         []string           `json:"material"`
	CategoryIDs      []string           `json:"category"`
	Tags             []string           `json:"tags"`
	Variants         []catalog.Variant  `json:"variants"`
	Images           []string           `json:"images"`
	SEOImages        []string           `json:"seo_images"`
	RelatedIDs       []string           `json:"related_products"`
	MetaSlug         string             `json:"meta_slug,omitempty"`
	MetaTitle        string             `json:"meta_title,omitempty"`
	MetaDescription  string             `json:"meta_description,omitempty"`
	IsPublished      bool               `json:"is_published"`
	CreatedAt        string             `json:"created_at"`
	UpdatedAt        string             `json:"updated_at"`
}

// ToProductResponse maps a product to its response shape
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		SKU:              p.SKU,
		Sizes:            p.Sizes,
		Price:            p.Price,
		DiscountPrice:    p.DiscountPrice,
		Tax:              p.Tax,
		Stock:            p.Stock,
		Weight:           p.Weight,
		Dimensions:       p.Dimensions,
		Material:         p.Material,
		CategoryIDs:      uuidStrings(p.CategoryIDs),
		Tags:             p.Tags,
		Variants:         p.Variants,
		Images:           p.Images,
		SEOImages:        p.SEOImages,
		RelatedIDs:       uuidStrings(p.RelatedIDs),
		MetaSlug:         p.MetaSlug,
		MetaTitle:        p.MetaTitle,
		MetaDescription:  p.MetaDescription,
		IsPublished:      p.IsPublished,
		CreatedAt:        p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:        p.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
