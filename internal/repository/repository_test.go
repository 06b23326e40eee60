package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/model"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(sqlx.NewDb(db, "sqlmock"), zap.NewExample())
	require.NoError(t, err)
	return repo, mock
}

func TestRepository_GetAuthor(t *testing.T) {
	t.Parallel()
	query := regexp.QuoteMeta(
		"SELECT author_id, first_name, family_name, date_of_birth, date_of_death FROM author WHERE author_id = $1 LIMIT 1")

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(query).
			WithArgs("a1").
			WillReturnRows(sqlmock.
				NewRows([]string{"author_id", "first_name", "family_name", "date_of_birth", "date_of_death"}).
				AddRow("a1", "Frank", "Herbert", nil, nil))

		author, err := repo.GetAuthor(context.Background(), "a1")
		require.NoError(t, err)
		require.Equal(t, "a1", author.ID)
		require.Equal(t, "Herbert, Frank", author.Name())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(query).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"author_id", "first_name", "family_name", "date_of_birth", "date_of_death"}))

		_, err := repo.GetAuthor(context.Background(), "missing")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateGenre_UniqueViolation(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO genre (genre_id,name) VALUES ($1,$2) returning genre_id, name")).
		WithArgs(sqlmock.AnyArg(), "Fantasy").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateGenre(context.Background(), model.GenreInput{Name: "Fantasy"})
	require.ErrorIs(t, err, errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteAuthor_BlockedByBooks(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM author WHERE author_id = $1")).
		WithArgs("a1").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	err := repo.DeleteAuthor(context.Background(), "a1")
	require.ErrorIs(t, err, errs.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteBookInstance(t *testing.T) {
	t.Parallel()
	query := regexp.QuoteMeta("DELETE FROM book_instance WHERE book_instance_id = $1")

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectExec(query).
			WithArgs("i1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteBookInstance(context.Background(), "i1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows is not found", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectExec(query).
			WithArgs("gone").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteBookInstance(context.Background(), "gone")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateBookInstance_DueBackDefaulted(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	// no due_back in the column list, the schema default applies
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO book_instance (book_instance_id,book_id,imprint,status) VALUES ($1,$2,$3,$4) returning book_instance_id, book_id, imprint, status, due_back")).
		WithArgs(sqlmock.AnyArg(), "b1", "Ace Books, 1990", "Maintenance").
		WillReturnRows(sqlmock.
			NewRows([]string{"book_instance_id", "book_id", "imprint", "status", "due_back"}).
			AddRow("i1", "b1", "Ace Books, 1990", "Maintenance",
				time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))

	inst, err := repo.CreateBookInstance(context.Background(), model.BookInstanceInput{
		BookID:  "b1",
		Imprint: "Ace Books, 1990",
		Status:  model.StatusMaintenance,
	})
	require.NoError(t, err)
	require.Equal(t, "i1", inst.ID)
	require.Equal(t, "2026-01-15", inst.DueBackInput())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountBookInstances(t *testing.T) {
	t.Parallel()

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM book_instance")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

		n, err := repo.CountBookInstances(context.Background(), false)
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("available only", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM book_instance WHERE status = $1")).
			WithArgs("Available").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		n, err := repo.CountBookInstances(context.Background(), true)
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListBookGenres(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT g.genre_id, g.name FROM genre g JOIN book_genre bg on bg.genre_id = g.genre_id WHERE bg.book_id = $1 ORDER BY g.name")).
		WithArgs("b1").
		WillReturnRows(sqlmock.
			NewRows([]string{"genre_id", "name"}).
			AddRow("g1", "Fantasy").
			AddRow("g2", "Science Fiction"))

	genres, err := repo.ListBookGenres(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, genres, 2)
	require.Equal(t, "Fantasy", genres[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
