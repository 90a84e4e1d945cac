package partner

import (
	"github.com/bhslighting/backend/internal/domain/shared"
)

// Partner is a brand or distributor displayed on the storefront
type Partner struct {
	shared.BaseEntity
	Name  string `gorm:"type:varchar(255);not null"`
	Image string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (Partner) TableName() string {
	return "partners"
}

// NewPartner creates a partner
func NewPartner(name, image string) (*Partner, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Partner name is required")
	}
	if image == "" {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Partner image is required")
	}

	return &Partner{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Image:      image,
	}, nil
}

// Update changes the partner's name
func (p *Partner) Update(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Partner name is required")
	}
	p.Name = name
	p.Touch()
	return nil
}

// ReplaceImage swaps the stored image and returns the previous filename
func (p *Partner) ReplaceImage(filename string) string {
	old := p.Image
	p.Image = filename
	p.Touch()
	return old
}
