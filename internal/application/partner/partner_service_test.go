package partner

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/partner"
	"github.com/bhslighting/backend/internal/domain/shared"
)

// MockPartnerRepository is a mock implementation of partner.PartnerRepository
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Partner, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) Save(_ context.Context, originalName string, _ io.Reader) (string, error) {
	name := fmt.Sprintf("stored-%d-%s", len(f.saved), originalName)
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeStorage) Delete(_ context.Context, storedName string) error {
	f.deleted = append(f.deleted, storedName)
	return nil
}

func (f *fakeStorage) Exists(_ context.Context, _ string) (bool, error) { return true, nil }

func (f *fakeStorage) URL(storedName string) string { return "/uploads/" + storedName }

func upload(name string) *media.File {
	return &media.File{OriginalName: name, Content: strings.NewReader("img")}
}

func TestPartnerServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates partner with logo", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		storage := &fakeStorage{}
		service := NewPartnerService(repo, storage)

		repo.On("Save", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil)

		resp, err := service.Create(ctx, CreatePartnerRequest{
			Name:  "Philips",
			Image: upload("philips.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Philips", resp.Name)
		assert.Equal(t, "stored-0-philips.png", resp.Image)
		assert.Equal(t, "/uploads/stored-0-philips.png", resp.ImageURL)
		repo.AssertExpectations(t)
	})

	t.Run("requires an image", func(t *testing.T) {
		service := NewPartnerService(new(MockPartnerRepository), &fakeStorage{})

		_, err := service.Create(ctx, CreatePartnerRequest{Name: "Philips"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_IMAGE", domainErr.Code)
	})

	t.Run("requires a name", func(t *testing.T) {
		service := NewPartnerService(new(MockPartnerRepository), &fakeStorage{})

		_, err := service.Create(ctx, CreatePartnerRequest{Image: upload("logo.png")})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})
}

func TestPartnerServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replacing the logo deletes the old file", func(t *testing.T) {
		existing, err := partner.NewPartner("Philips", "old.png")
		require.NoError(t, err)

		repo := new(MockPartnerRepository)
		storage := &fakeStorage{}
		service := NewPartnerService(repo, storage)

		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil)

		resp, err := service.Update(ctx, existing.ID, UpdatePartnerRequest{
			Name:  "Philips Lighting",
			Image: upload("new.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Philips Lighting", resp.Name)
		assert.Equal(t, "stored-0-new.png", resp.Image)
		assert.Equal(t, []string{"old.png"}, storage.deleted)
	})

	t.Run("nil image keeps the stored one", func(t *testing.T) {
		existing, err := partner.NewPartner("Philips", "old.png")
		require.NoError(t, err)

		repo := new(MockPartnerRepository)
		storage := &fakeStorage{}
		service := NewPartnerService(repo, storage)

		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil)

		resp, err := service.Update(ctx, existing.ID, UpdatePartnerRequest{Name: "Philips"})
		require.NoError(t, err)
		assert.Equal(t, "old.png", resp.Image)
		assert.Empty(t, storage.deleted)
	})

	t.Run("unknown partner", func(t *testing.T) {
		repo := new(MockPartnerRepository)
		service := NewPartnerService(repo, &fakeStorage{})

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdatePartnerRequest{Name: "Philips"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPartnerServiceDelete(t *testing.T) {
	ctx := context.Background()

	existing, err := partner.NewPartner("Philips", "logo.png")
	require.NoError(t, err)

	repo := new(MockPartnerRepository)
	storage := &fakeStorage{}
	service := NewPartnerService(repo, storage)

	repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	repo.On("Delete", ctx, existing.ID).Return(nil)

	require.NoError(t, service.Delete(ctx, existing.ID))
	assert.Equal(t, []string{"logo.png"}, storage.deleted)
	repo.AssertExpectations(t)
}
