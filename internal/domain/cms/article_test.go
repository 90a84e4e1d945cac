package cms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	t.Run("creates article with resolved blocks", func(t *testing.T) {
		article, err := NewArticle("Lighting trends", "lighting-trends", []Block{
			{ID: "b1", Kind: BlockKindText, Content: "intro"},
			{ID: "b2", Kind: BlockKindImage, Content: "hero.jpg"},
		})
		require.NoError(t, err)
		require.NotNil(t, article)

		assert.Equal(t, "Lighting trends", article.Title)
		assert.Equal(t, "lighting-trends", article.Slug)
		assert.False(t, article.Published)
		assert.NotEmpty(t, article.ID)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewArticle("", "slug", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("fails with invalid slug", func(t *testing.T) {
		_, err := NewArticle("Title", "Not A Slug", nil)
		require.Error(t, err)
	})

	t.Run("refuses to persist a placeholder", func(t *testing.T) {
		_, err := NewArticle("Title", "title", []Block{
			{ID: "b1", Kind: BlockKindImage, Content: PlaceholderContent},
		})
		assert.ErrorIs(t, err, ErrUnresolvedPlaceholder)
	})
}

func TestArticleImageFiles(t *testing.T) {
	t.Run("lists main image and every image block", func(t *testing.T) {
		article, err := NewArticle("Title", "title", []Block{
			{ID: "b1", Kind: BlockKindText, Content: "text"},
			{ID: "b2", Kind: BlockKindImage, Content: "one.jpg"},
			{ID: "b3", Kind: BlockKindImage, Content: "two.jpg"},
		})
		require.NoError(t, err)
		article.SetMainImage("cover.jpg")

		assert.Equal(t, []string{"cover.jpg", "one.jpg", "two.jpg"}, article.ImageFiles())
	})

	t.Run("article without images lists nothing", func(t *testing.T) {
		article, err := NewArticle("Title", "title", []Block{
			{ID: "b1", Kind: BlockKindText, Content: "text only"},
		})
		require.NoError(t, err)

		assert.Empty(t, article.ImageFiles())
	})
}

func TestArticleUpdate(t *testing.T) {
	t.Run("replaces content and bumps timestamp", func(t *testing.T) {
		article, err := NewArticle("Old", "old", nil)
		require.NoError(t, err)

		err = article.Update("New", "new", true, []Block{
			{ID: "b1", Kind: BlockKindText, Content: "fresh"},
		})
		require.NoError(t, err)

		assert.Equal(t, "New", article.Title)
		assert.Equal(t, "new", article.Slug)
		assert.True(t, article.Published)
		assert.Len(t, article.Blocks, 1)
	})

	t.Run("rejects unresolved placeholder", func(t *testing.T) {
		article, err := NewArticle("Old", "old", nil)
		require.NoError(t, err)

		err = article.Update("New", "new", false, []Block{
			{ID: "b1", Kind: BlockKindImage, Content: PlaceholderContent},
		})
		assert.ErrorIs(t, err, ErrUnresolvedPlaceholder)
	})
}
