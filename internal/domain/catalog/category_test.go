package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates root category", func(t *testing.T) {
		category, err := NewCategory("Luminaires", "luminaires", "Indoor lighting", "luminaires.jpg", nil)
		require.NoError(t, err)
		require.NotNil(t, category)

		assert.Equal(t, "Luminaires", category.Name)
		assert.Equal(t, "luminaires", category.Slug)
		assert.Nil(t, category.ParentID)
		assert.True(t, category.IsRoot())
		assert.NotEmpty(t, category.ID)
	})

	t.Run("creates child category", func(t *testing.T) {
		parentID := uuid.New()
		category, err := NewCategory("Suspensions", "suspensions", "Hanging lamps", "suspensions.jpg", &parentID)
		require.NoError(t, err)

		require.NotNil(t, category.ParentID)
		assert.Equal(t, parentID, *category.ParentID)
		assert.False(t, category.IsRoot())
	})

	t.Run("fails with missing required fields", func(t *testing.T) {
		cases := []struct {
			name        string
			catName     string
			slug        string
			description string
			image       string
		}{
			{"empty name", "", "slug", "desc", "img.jpg"},
			{"empty slug", "Name", "", "desc", "img.jpg"},
			{"empty description", "Name", "slug", "", "img.jpg"},
			{"empty image", "Name", "slug", "desc", ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewCategory(tc.catName, tc.slug, tc.description, tc.image, nil)
				require.Error(t, err)
			})
		}
	})
}

func TestCategoryUpdate(t *testing.T) {
	t.Run("rejects self-parenting", func(t *testing.T) {
		category, err := NewCategory("Luminaires", "luminaires", "desc", "img.jpg", nil)
		require.NoError(t, err)

		err = category.Update("Luminaires", "luminaires", "desc", &category.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "own parent")
	})

	t.Run("re-parents to another category", func(t *testing.T) {
		category, err := NewCategory("Suspensions", "suspensions", "desc", "img.jpg", nil)
		require.NoError(t, err)

		newParent := uuid.New()
		err = category.Update("Suspensions", "suspensions", "desc", &newParent)
		require.NoError(t, err)
		assert.Equal(t, newParent, *category.ParentID)
	})
}

func TestCategoryReplaceImage(t *testing.T) {
	category, err := NewCategory("Luminaires", "luminaires", "desc", "old.jpg", nil)
	require.NoError(t, err)

	old := category.ReplaceImage("new.jpg")
	assert.Equal(t, "old.jpg", old)
	assert.Equal(t, "new.jpg", category.Image)
}
