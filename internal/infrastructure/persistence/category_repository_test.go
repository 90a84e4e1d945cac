package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bhslighting/backend/internal/domain/catalog"
	"github.com/bhslighting/backend/internal/domain/shared"
)

// newMockCategoryRepository creates a GormCategoryRepository with a mocked SQL connection
func newMockCategoryRepository(t *testing.T) (*GormCategoryRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCategoryRepository(gormDB), mock, mockDB
}

func categoryRows(id uuid.UUID, name, slug string, parentID *uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "description", "image", "parent_id"}).
		AddRow(id, name, slug, "desc", "img.jpg", parentID)
}

func TestGormCategoryRepository_FindByID(t *testing.T) {
	t.Run("finds existing category", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		categoryID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(categoryID, 1).
			WillReturnRows(categoryRows(categoryID, "Lustres", "lustres", nil))

		category, err := repo.FindByID(context.Background(), categoryID)

		assert.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, categoryID, category.ID)
		assert.Equal(t, "Lustres", category.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing category", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		categoryID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(categoryID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		category, err := repo.FindByID(context.Background(), categoryID)

		assert.Nil(t, category)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCategoryRepository_FindBySlug(t *testing.T) {
	t.Run("finds category by slug", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		categoryID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE slug = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("appliques", 1).
			WillReturnRows(categoryRows(categoryID, "Appliques", "appliques", nil))

		category, err := repo.FindBySlug(context.Background(), "appliques")

		assert.NoError(t, err)
		require.NotNil(t, category)
		assert.Equal(t, "appliques", category.Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCategoryRepository_FindByParent(t *testing.T) {
	t.Run("roots filter keeps only categories without a parent", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE parent_id IS NULL ORDER BY .*`).
			WillReturnRows(categoryRows(uuid.New(), "Lustres", "lustres", nil))

		categories, err := repo.FindByParent(context.Background(), catalog.ParentFilter{Roots: true}, shared.Filter{})

		assert.NoError(t, err)
		assert.Len(t, categories, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("parent filter keeps only direct children", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		parentID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "categories" WHERE parent_id = \$1 ORDER BY .*`).
			WithArgs(parentID).
			WillReturnRows(categoryRows(uuid.New(), "Suspensions", "suspensions", &parentID))

		categories, err := repo.FindByParent(context.Background(), catalog.ParentFilter{Parent: &parentID}, shared.Filter{})

		assert.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, parentID, *categories[0].ParentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero filter lists everything", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "categories" ORDER BY .*`).
			WillReturnRows(categoryRows(uuid.New(), "Lustres", "lustres", nil))

		categories, err := repo.FindByParent(context.Background(), catalog.ParentFilter{}, shared.Filter{})

		assert.NoError(t, err)
		assert.Len(t, categories, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCategoryRepository_ExistsBySlug(t *testing.T) {
	t.Run("excludes the given id", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		selfID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE slug = \$1 AND id <> \$2`).
			WithArgs("lustres", selfID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsBySlug(context.Background(), "lustres", selfID)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports duplicates without exclusion", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "categories" WHERE slug = \$1`).
			WithArgs("lustres").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsBySlug(context.Background(), "lustres", uuid.Nil)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCategoryRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when nothing is deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockCategoryRepository(t)
		defer mockDB.Close()

		categoryID := uuid.New()

		mock.ExpectExec(`DELETE FROM "categories" WHERE id = \$1`).
			WithArgs(categoryID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), categoryID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "name", ValidateSortField("name", CategorySortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("drop table", CategorySortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("", CategorySortFields, "created_at"))
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "DESC", ValidateSortOrder("junk"))
}
