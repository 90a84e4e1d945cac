package catalog

import (
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dimensions holds the physical size of a product
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Variant is one configurable product option, e.g. {Option: "Color",
// Values: ["black", "brass"]}
type Variant struct {
	Option string   `json:"option"`
	Values []string `json:"values"`
}

// Product represents a sellable item. Collection-valued attributes
// persist as JSONB columns, keeping the row document-shaped.
type Product struct {
	shared.BaseEntity
	Name             string          `gorm:"type:varchar(255);not null"`
	Slug             string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	ShortDescription string          `gorm:"type:text"`
	Content          string          `gorm:"type:text"`
	SKU              string          `gorm:"type:varchar(100)"`
	Price            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DiscountPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Tax              decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Stock            int             `gorm:"not null;default:0"`
	Weight           decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Sizes            string          `gorm:"type:varchar(255)"`
	Dimensions       Dimensions      `gorm:"type:jsonb;serializer:json"`
	Material         []string        `gorm:"type:jsonb;serializer:json"`
	CategoryIDs      []uuid.UUID     `gorm:"type:jsonb;serializer:json"`
	Tags             []string        `gorm:"type:jsonb;serializer:json"`
	Variants         []Variant       `gorm:"type:jsonb;serializer:json"`
	Images           []string        `gorm:"type:jsonb;serializer:json"`
	SEOImages        []string        `gorm:"type:jsonb;serializer:json"`
	RelatedIDs       []uuid.UUID     `gorm:"type:jsonb;serializer:json"`
	MetaSlug         string          `gorm:"type:varchar(255)"`
	MetaTitle        string          `gorm:"type:varchar(255)"`
	MetaDescription  string          `gorm:"type:text"`
	IsPublished      bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product with the required identity and price
func NewProduct(name, slug string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name is required")
	}
	if err := shared.ValidateSlug(slug); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Slug:       slug,
		Price:      price,
	}, nil
}

// EffectivePrice returns the discount price when set, the list price
// otherwise
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice.IsPositive() {
		return p.DiscountPrice
	}
	return p.Price
}
