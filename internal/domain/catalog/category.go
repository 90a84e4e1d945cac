package catalog

import (
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Category represents a product category. Categories form a tree via
// a nullable parent pointer; a nil parent marks a root.
type Category struct {
	shared.BaseEntity
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Slug        string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string     `gorm:"type:text;not null"`
	Image       string     `gorm:"type:varchar(255);not null"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category. A nil parentID makes it a root.
func NewCategory(name, slug, description, image string, parentID *uuid.UUID) (*Category, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name is required")
	}
	if err := shared.ValidateSlug(slug); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Category description is required")
	}
	if image == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Category image is required")
	}

	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Slug:        slug,
		Description: description,
		Image:       image,
		ParentID:    parentID,
	}, nil
}

// IsRoot reports whether the category has no parent
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// Update changes the category's attributes. Re-parenting to the
// category itself is rejected; deeper cycles are the service's job
// to detect since they need sibling lookups.
func (c *Category) Update(name, slug, description string, parentID *uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name is required")
	}
	if err := shared.ValidateSlug(slug); err != nil {
		return err
	}
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Category description is required")
	}
	if parentID != nil && *parentID == c.ID {
		return shared.NewDomainError("INVALID_PARENT", "Category cannot be its own parent")
	}

	c.Name = name
	c.Slug = slug
	c.Description = description
	c.ParentID = parentID
	c.Touch()
	return nil
}

// ReplaceImage swaps the stored image filename and returns the
// previous one so the caller can clean up the media store
func (c *Category) ReplaceImage(filename string) string {
	old := c.Image
	c.Image = filename
	c.Touch()
	return old
}
