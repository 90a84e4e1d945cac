package partner

import (
	"context"

	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/partner"
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreatePartnerRequest carries a decoded partner-create submission
type CreatePartnerRequest struct {
	Name  string
	Image *media.File
}

// UpdatePartnerRequest carries a decoded partner-update submission.
// A nil Image keeps the stored one.
type UpdatePartnerRequest struct {
	Name  string
	Image *media.File
}

// PartnerResponse represents a partner in service responses
type PartnerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToPartnerResponse maps a partner to its response shape
func ToPartnerResponse(p *partner.Partner, storage media.Storage) *PartnerResponse {
	return &PartnerResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Image:     p.Image,
		ImageURL:  storage.URL(p.Image),
		CreatedAt: p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: p.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// PartnerService handles partner-related business operations
type PartnerService struct {
	partnerRepo partner.PartnerRepository
	storage     media.Storage
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.PartnerRepository, storage media.Storage) *PartnerService {
	return &PartnerService{
		partnerRepo: partnerRepo,
		storage:     storage,
	}
}

// Create creates a new partner
func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	if req.Image == nil {
		return nil, shared.NewDomainError("INVALID_IMAGE", "Partner image is required")
	}

	image, err := s.storage.Save(ctx, req.Image.OriginalName, req.Image.Content)
	if err != nil {
		return nil, err
	}

	p, err := partner.NewPartner(req.Name, image)
	if err != nil {
		return nil, err
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	return ToPartnerResponse(p, s.storage), nil
}

// Update updates a partner. A new image replaces and deletes the
// stored one.
func (s *PartnerService) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.Update(req.Name); err != nil {
		return nil, err
	}

	var oldImage string
	if req.Image != nil {
		image, err := s.storage.Save(ctx, req.Image.OriginalName, req.Image.Content)
		if err != nil {
			return nil, err
		}
		oldImage = p.ReplaceImage(image)
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	if oldImage != "" {
		_ = s.storage.Delete(ctx, oldImage)
	}

	return ToPartnerResponse(p, s.storage), nil
}

// Delete removes a partner and its image file
func (s *PartnerService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.partnerRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.storage.Delete(ctx, p.Image)
	return nil
}

// GetByID retrieves a partner by ID
func (s *PartnerService) GetByID(ctx context.Context, id uuid.UUID) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPartnerResponse(p, s.storage), nil
}

// List retrieves partners with pagination
func (s *PartnerService) List(ctx context.Context, filter shared.Filter) ([]PartnerResponse, int64, error) {
	partners, err := s.partnerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.partnerRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = *ToPartnerResponse(&partners[i], s.storage)
	}
	return responses, total, nil
}
