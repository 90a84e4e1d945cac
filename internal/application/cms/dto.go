package cms

import (
	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/cms"
)

// CreateArticleRequest carries a decoded article-create submission.
// Blocks arrive already parsed from the multipart blocks field; image
// uploads ride alongside in arrival order.
type CreateArticleRequest struct {
	Title     string
	Slug      string
	Published bool
	Blocks    []cms.Block
	MainImage *media.File
	Images    []media.File
}

// UpdateArticleRequest carries a decoded article-update submission
type UpdateArticleRequest struct {
	Title     string
	Slug      string
	Published bool
	Blocks    []cms.Block
	MainImage *media.File
	Images    []media.File
}

// ArticleResponse represents an article in service responses
type ArticleResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Slug         string      `json:"slug"`
	MainImage    string      `json:"main_image,omitempty"`
	MainImageURL string      `json:"main_image_url,omitempty"`
	Published    bool        `json:"published"`
	Blocks       []cms.Block `json:"blocks"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
}

// ToArticleResponse maps an article to its response shape
func ToArticleResponse(a *cms.Article, storage media.Storage) *ArticleResponse {
	resp := &ArticleResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Slug:      a.Slug,
		MainImage: a.MainImage,
		Published: a.Published,
		Blocks:    a.Blocks,
		CreatedAt: a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: a.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if a.MainImage != "" {
		resp.MainImageURL = storage.URL(a.MainImage)
	}
	return resp
}
