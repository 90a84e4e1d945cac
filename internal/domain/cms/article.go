package cms

import (
	"github.com/bhslighting/backend/internal/domain/shared"
)

// Article represents a CMS page built from ordered content blocks
type Article struct {
	shared.BaseEntity
	Title     string  `gorm:"type:varchar(255);not null"`
	Slug      string  `gorm:"type:varchar(255);not null;uniqueIndex"`
	MainImage string  `gorm:"type:varchar(255)"`
	Published bool    `gorm:"not null;default:false"`
	Blocks    []Block `gorm:"type:jsonb;serializer:json"`
}

// TableName returns the table name for GORM
func (Article) TableName() string {
	return "articles"
}

// NewArticle creates an article with fully resolved blocks
func NewArticle(title, slug string, blocks []Block) (*Article, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Article title is required")
	}
	if err := shared.ValidateSlug(slug); err != nil {
		return nil, err
	}
	if err := ValidateBlocks(blocks); err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if b.IsPlaceholder() {
			return nil, ErrUnresolvedPlaceholder
		}
	}

	return &Article{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Slug:       slug,
		Blocks:     blocks,
	}, nil
}

// Update replaces the article's content with an already merged,
// placeholder-free block sequence
func (a *Article) Update(title, slug string, published bool, blocks []Block) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Article title is required")
	}
	if err := shared.ValidateSlug(slug); err != nil {
		return err
	}
	if err := ValidateBlocks(blocks); err != nil {
		return err
	}
	for _, b := range blocks {
		if b.IsPlaceholder() {
			return ErrUnresolvedPlaceholder
		}
	}

	a.Title = title
	a.Slug = slug
	a.Published = published
	a.Blocks = blocks
	a.Touch()
	return nil
}

// SetMainImage records the stored filename of the cover image
func (a *Article) SetMainImage(filename string) {
	a.MainImage = filename
	a.Touch()
}

// ImageFiles lists every stored file the article references, the cover
// image first. Used to clean up the media store on delete.
func (a *Article) ImageFiles() []string {
	var files []string
	if a.MainImage != "" {
		files = append(files, a.MainImage)
	}
	for _, b := range a.Blocks {
		if b.IsImage() && b.Content != "" {
			files = append(files, b.Content)
		}
	}
	return files
}
