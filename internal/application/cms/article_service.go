package cms

import (
	"context"

	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/cms"
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ArticleService handles article-related business operations
type ArticleService struct {
	articleRepo cms.ArticleRepository
	storage     media.Storage
}

// NewArticleService creates a new ArticleService
func NewArticleService(articleRepo cms.ArticleRepository, storage media.Storage) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		storage:     storage,
	}
}

// Create creates a new article, storing uploaded block images and
// resolving placeholders before anything persists
func (s *ArticleService) Create(ctx context.Context, req CreateArticleRequest) (*ArticleResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = shared.Slugify(req.Title)
	}

	exists, err := s.articleRepo.ExistsBySlug(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Article with this slug already exists")
	}

	uploaded, err := s.storeUploads(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	blocks, err := cms.MergeBlocks(nil, req.Blocks, uploaded)
	if err != nil {
		return nil, err
	}

	article, err := cms.NewArticle(req.Title, slug, blocks)
	if err != nil {
		return nil, err
	}
	article.Published = req.Published

	if req.MainImage != nil {
		name, err := s.storage.Save(ctx, req.MainImage.OriginalName, req.MainImage.Content)
		if err != nil {
			return nil, err
		}
		article.SetMainImage(name)
	}

	if err := s.articleRepo.Save(ctx, article); err != nil {
		return nil, err
	}

	return ToArticleResponse(article, s.storage), nil
}

// Update merges the submitted blocks with the stored ones, resolving
// image placeholders against the new uploads
func (s *ArticleService) Update(ctx context.Context, id uuid.UUID, req UpdateArticleRequest) (*ArticleResponse, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = shared.Slugify(req.Title)
	}
	exists, err := s.articleRepo.ExistsBySlug(ctx, slug, article.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Article with this slug already exists")
	}

	uploaded, err := s.storeUploads(ctx, req.Images)
	if err != nil {
		return nil, err
	}

	blocks, err := cms.MergeBlocks(article.Blocks, req.Blocks, uploaded)
	if err != nil {
		return nil, err
	}

	if err := article.Update(req.Title, slug, req.Published, blocks); err != nil {
		return nil, err
	}

	if req.MainImage != nil {
		name, err := s.storage.Save(ctx, req.MainImage.OriginalName, req.MainImage.Content)
		if err != nil {
			return nil, err
		}
		article.SetMainImage(name)
	}

	if err := s.articleRepo.Save(ctx, article); err != nil {
		return nil, err
	}

	return ToArticleResponse(article, s.storage), nil
}

// Delete removes an article together with its stored image files.
// File removal is best-effort, a file already gone is ignored.
func (s *ArticleService) Delete(ctx context.Context, id uuid.UUID) error {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, file := range article.ImageFiles() {
		_ = s.storage.Delete(ctx, file)
	}

	return nil
}

// GetByID retrieves an article by ID
func (s *ArticleService) GetByID(ctx context.Context, id uuid.UUID) (*ArticleResponse, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToArticleResponse(article, s.storage), nil
}

// GetBySlug retrieves an article by slug
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*ArticleResponse, error) {
	article, err := s.articleRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ToArticleResponse(article, s.storage), nil
}

// List retrieves articles with pagination
func (s *ArticleService) List(ctx context.Context, filter shared.Filter) ([]ArticleResponse, int64, error) {
	articles, err := s.articleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.articleRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = *ToArticleResponse(&articles[i], s.storage)
	}
	return responses, total, nil
}

func (s *ArticleService) storeUploads(ctx context.Context, files []media.File) ([]string, error) {
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
