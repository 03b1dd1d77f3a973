package category

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"tyzox-be/internal/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(1, "Gloves", "gloves").
			AddRow(2, "Shoes", "shoes")
		mock.ExpectQuery("SELECT id, name, slug FROM categories ORDER BY name ASC").
			WillReturnRows(rows)

		res, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "gloves", res[0].Slug)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, slug FROM categories").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}))

		res, err := repo.List(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, slug FROM categories").
			WillReturnError(errors.New("db down"))

		_, err := repo.List(context.Background())
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, slug FROM categories WHERE id = \\$1").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(3, "Bags", "bags"))

		c, err := repo.GetByID(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "Bags", c.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, slug FROM categories WHERE id = \\$1").
			WithArgs(int64(9)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 9)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs("Gloves", "gloves").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(1, "Gloves", "gloves"))

		c, err := repo.Create(context.Background(), "Gloves", "gloves")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs("Gloves", "gloves").
			WillReturnError(&pq.Error{Code: apperror.PgUniqueViolation})

		_, err := repo.Create(context.Background(), "Gloves", "gloves")
		assert.ErrorIs(t, err, ErrCategoryExists)
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})
}

func TestRepository_Rename(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE categories SET name = \\$1 WHERE id = \\$2").
			WithArgs("Boxing Gloves", int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(1, "Boxing Gloves", "gloves"))

		c, err := repo.Rename(context.Background(), 1, "Boxing Gloves")
		assert.NoError(t, err)
		assert.Equal(t, "Boxing Gloves", c.Name)
		assert.Equal(t, "gloves", c.Slug)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE categories").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Rename(context.Background(), 5, "x")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories WHERE id = \\$1").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories").
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 2), ErrCategoryNotFound)
	})

	t.Run("InUse", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM categories").
			WithArgs(int64(3)).
			WillReturnError(&pq.Error{Code: apperror.PgForeignKeyViolation})

		err := repo.Delete(context.Background(), 3)
		assert.ErrorIs(t, err, ErrCategoryInUse)
	})
}
