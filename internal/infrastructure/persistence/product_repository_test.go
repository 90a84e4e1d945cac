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

	"github.com/bhslighting/backend/internal/domain/shared"
)

// newMockProductRepository creates a GormProductRepository with a mocked SQL connection
func newMockProductRepository(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormProductRepository(gormDB), mock, mockDB
}

func productRows(id uuid.UUID, name, slug string, stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "stock"}).
		AddRow(id, name, slug, stock)
}

func TestGormProductRepository_FindAll(t *testing.T) {
	t.Run("min_quantity filters on the stock column", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE stock >= \$1 ORDER BY created_at DESC`).
			WithArgs(1).
			WillReturnRows(productRows(uuid.New(), "Lustre Moderne", "lustre-moderne", 4))

		products, err := repo.FindAll(context.Background(), shared.Filter{
			Filters: map[string]interface{}{"min_quantity": 1},
		})

		assert.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, 4, products[0].Stock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stock is an accepted sort field", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY stock ASC`).
			WillReturnRows(productRows(uuid.New(), "Applique Murale", "applique-murale", 0))

		products, err := repo.FindAll(context.Background(), shared.Filter{
			OrderBy:  "stock",
			OrderDir: "asc",
		})

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("category filter uses jsonb containment", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		categoryID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE category_ids @> \$1 ORDER BY created_at DESC`).
			WithArgs(`["` + categoryID.String() + `"]`).
			WillReturnRows(productRows(uuid.New(), "Suspension Luna", "suspension-luna", 2))

		products, err := repo.FindAll(context.Background(), shared.Filter{
			Filters: map[string]interface{}{"category_id": categoryID.String()},
		})

		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_Count(t *testing.T) {
	t.Run("min_quantity filters on the stock column", func(t *testing.T) {
		repo, mock, mockDB := newMockProductRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE stock >= \$1`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.Count(context.Background(), shared.Filter{
			Filters: map[string]interface{}{"min_quantity": 1},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
