package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
	CreateAuthor(ctx context.Context, in model.AuthorInput) (model.Author, error)
	UpdateAuthor(ctx context.Context, id string, in model.AuthorInput) (model.Author, error)
	DeleteAuthor(ctx context.Context, id string) error

	GetGenre(ctx context.Context, id string) (model.Genre, error)
	GetGenreByName(ctx context.Context, name string) (model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
	CreateGenre(ctx context.Context, in model.GenreInput) (model.Genre, error)
	UpdateGenre(ctx context.Context, id string, in model.GenreInput) (model.Genre, error)
	DeleteGenre(ctx context.Context, id string) error

	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.BookListItem, error)
	ListBooksByAuthor(ctx context.Context, authorID string) ([]model.Book, error)
	ListBookSummariesByAuthor(ctx context.Context, authorID string) ([]model.BookSummary, error)
	ListBooksByGenre(ctx context.Context, genreID string) ([]model.Book, error)
	ListBookGenres(ctx context.Context, bookID string) ([]model.Genre, error)
	CreateBook(ctx context.Context, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, id string, in model.BookInput) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error

	GetBookInstance(ctx context.Context, id string) (model.BookInstance, error)
	ListBookInstances(ctx context.Context) ([]model.BookInstanceListItem, error)
	ListBookInstancesByBook(ctx context.Context, bookID string) ([]model.BookInstance, error)
	CreateBookInstance(ctx context.Context, in model.BookInstanceInput) (model.BookInstance, error)
	UpdateBookInstance(ctx context.Context, id string, in model.BookInstanceInput) (model.BookInstance, error)
	DeleteBookInstance(ctx context.Context, id string) error

	CountBooks(ctx context.Context) (int, error)
	CountBookInstances(ctx context.Context, onlyAvailable bool) (int, error)
	CountAuthors(ctx context.Context) (int, error)
	CountGenres(ctx context.Context) (int, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorTableName       = `author`
	genreTableName        = `genre`
	bookTableName         = `book`
	bookGenreTableName    = `book_genre`
	bookInstanceTableName = `book_instance`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// dbErr maps storage-layer failures onto the error taxonomy. Constraint
// violations are classified so callers get a validation-grade rejection even
// when bad input slips past the form pipeline.
func dbErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation:
			return errs.ErrConflict
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.InvalidTextRepresentation:
			return errs.ErrInvalid
		}
	}
	return err
}

const authorColumns = "author_id, first_name, family_name, date_of_birth, date_of_death"

func (r *repository) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	query, args, err := qb.Select(authorColumns).
		From(authorTableName).
		Where(sq.Eq{"author_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		return model.Author{}, dbErr(err)
	}
	return author, nil
}

func (r *repository) ListAuthors(ctx context.Context) ([]model.Author, error) {
	query, args, err := qb.Select(authorColumns).
		From(authorTableName).
		OrderBy("family_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var authors []model.Author
	if err := r.db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return authors, nil
}

func (r *repository) CreateAuthor(ctx context.Context, in model.AuthorInput) (model.Author, error) {
	query, args, err := qb.Insert(authorTableName).
		Columns("author_id", "first_name", "family_name", "date_of_birth", "date_of_death").
		Values(uuid.New(), in.FirstName, in.FamilyName, in.DateOfBirth, in.DateOfDeath).
		Suffix("returning " + authorColumns).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		r.log.Error("CreateAuthor", zap.String("q", query), zap.Any("args", args))
		return model.Author{}, dbErr(err)
	}
	return author, nil
}

func (r *repository) UpdateAuthor(ctx context.Context, id string, in model.AuthorInput) (model.Author, error) {
	query, args, err := qb.Update(authorTableName).
		Set("first_name", in.FirstName).
		Set("family_name", in.FamilyName).
		Set("date_of_birth", in.DateOfBirth).
		Set("date_of_death", in.DateOfDeath).
		Where(sq.Eq{"author_id": id}).
		Suffix("returning " + authorColumns).
		ToSql()
	if err != nil {
		return model.Author{}, err
	}

	var author model.Author
	if err := r.db.GetContext(ctx, &author, query, args...); err != nil {
		return model.Author{}, dbErr(err)
	}
	return author, nil
}

func (r *repository) DeleteAuthor(ctx context.Context, id string) error {
	query, args, err := qb.Delete(authorTableName).
		Where(sq.Eq{"author_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

const genreColumns = "genre_id, name"

func (r *repository) GetGenre(ctx context.Context, id string) (model.Genre, error) {
	query, args, err := qb.Select(genreColumns).
		From(genreTableName).
		Where(sq.Eq{"genre_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		return model.Genre{}, dbErr(err)
	}
	return genre, nil
}

func (r *repository) GetGenreByName(ctx context.Context, name string) (model.Genre, error) {
	query, args, err := qb.Select(genreColumns).
		From(genreTableName).
		Where(sq.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		return model.Genre{}, dbErr(err)
	}
	return genre, nil
}

func (r *repository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	query, args, err := qb.Select(genreColumns).
		From(genreTableName).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var genres []model.Genre
	if err := r.db.SelectContext(ctx, &genres, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return genres, nil
}

func (r *repository) CreateGenre(ctx context.Context, in model.GenreInput) (model.Genre, error) {
	query, args, err := qb.Insert(genreTableName).
		Columns("genre_id", "name").
		Values(uuid.New(), in.Name).
		Suffix("returning " + genreColumns).
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		return model.Genre{}, dbErr(err)
	}
	return genre, nil
}

func (r *repository) UpdateGenre(ctx context.Context, id string, in model.GenreInput) (model.Genre, error) {
	query, args, err := qb.Update(genreTableName).
		Set("name", in.Name).
		Where(sq.Eq{"genre_id": id}).
		Suffix("returning " + genreColumns).
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}

	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, query, args...); err != nil {
		return model.Genre{}, dbErr(err)
	}
	return genre, nil
}

func (r *repository) DeleteGenre(ctx context.Context, id string) error {
	query, args, err := qb.Delete(genreTableName).
		Where(sq.Eq{"genre_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

const bookColumns = "book_id, title, summary, isbn, author_id"

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns).
		From(bookTableName).
		Where(sq.Eq{"book_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, dbErr(err)
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.BookListItem, error) {
	query, args, err := qb.Select("b.book_id", "b.title", "a.family_name || ', ' || a.first_name as author_name").
		From(bookTableName + " b").
		Join(authorTableName + " a on a.author_id = b.author_id").
		OrderBy("b.title").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.BookListItem
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return books, nil
}

func (r *repository) ListBooksByAuthor(ctx context.Context, authorID string) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns).
		From(bookTableName).
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return books, nil
}

func (r *repository) ListBookSummariesByAuthor(ctx context.Context, authorID string) ([]model.BookSummary, error) {
	query, args, err := qb.Select("book_id", "title", "summary").
		From(bookTableName).
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.BookSummary
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return books, nil
}

func (r *repository) ListBooksByGenre(ctx context.Context, genreID string) ([]model.Book, error) {
	query, args, err := qb.Select("b.book_id", "b.title", "b.summary", "b.isbn", "b.author_id").
		From(bookTableName + " b").
		Join(bookGenreTableName + " bg on bg.book_id = b.book_id").
		Where(sq.Eq{"bg.genre_id": genreID}).
		OrderBy("b.title").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return books, nil
}

func (r *repository) ListBookGenres(ctx context.Context, bookID string) ([]model.Genre, error) {
	query, args, err := qb.Select("g.genre_id", "g.name").
		From(genreTableName + " g").
		Join(bookGenreTableName + " bg on bg.genre_id = g.genre_id").
		Where(sq.Eq{"bg.book_id": bookID}).
		OrderBy("g.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	var genres []model.Genre
	if err := r.db.SelectContext(ctx, &genres, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return genres, nil
}

func (r *repository) CreateBook(ctx context.Context, in model.BookInput) (model.Book, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Book{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Insert(bookTableName).
		Columns("book_id", "title", "summary", "isbn", "author_id").
		Values(uuid.New(), in.Title, in.Summary, in.ISBN, in.AuthorID).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := tx.GetContext(ctx, &book, query, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, dbErr(err)
	}
	if err := insertBookGenres(ctx, tx, book.ID, in.GenreIDs); err != nil {
		return model.Book{}, dbErr(err)
	}
	if err := tx.Commit(); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, id string, in model.BookInput) (model.Book, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Book{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Update(bookTableName).
		Set("title", in.Title).
		Set("summary", in.Summary).
		Set("isbn", in.ISBN).
		Set("author_id", in.AuthorID).
		Where(sq.Eq{"book_id": id}).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := tx.GetContext(ctx, &book, query, args...); err != nil {
		return model.Book{}, dbErr(err)
	}

	del, args, err := qb.Delete(bookGenreTableName).
		Where(sq.Eq{"book_id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return model.Book{}, dbErr(err)
	}
	if err := insertBookGenres(ctx, tx, id, in.GenreIDs); err != nil {
		return model.Book{}, dbErr(err)
	}
	if err := tx.Commit(); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func insertBookGenres(ctx context.Context, tx *sqlx.Tx, bookID string, genreIDs []string) error {
	if len(genreIDs) == 0 {
		return nil
	}
	ins := qb.Insert(bookGenreTableName).Columns("book_id", "genre_id")
	for _, genreID := range genreIDs {
		ins = ins.Values(bookID, genreID)
	}
	query, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	query, args, err := qb.Delete(bookTableName).
		Where(sq.Eq{"book_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

const bookInstanceColumns = "book_instance_id, book_id, imprint, status, due_back"

func (r *repository) GetBookInstance(ctx context.Context, id string) (model.BookInstance, error) {
	query, args, err := qb.Select(bookInstanceColumns).
		From(bookInstanceTableName).
		Where(sq.Eq{"book_instance_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BookInstance{}, err
	}

	var inst model.BookInstance
	if err := r.db.GetContext(ctx, &inst, query, args...); err != nil {
		return model.BookInstance{}, dbErr(err)
	}
	return inst, nil
}

func (r *repository) ListBookInstances(ctx context.Context) ([]model.BookInstanceListItem, error) {
	query, args, err := qb.Select("bi.book_instance_id", "bi.book_id", "bi.imprint", "bi.status", "bi.due_back", "b.title as book_title").
		From(bookInstanceTableName + " bi").
		Join(bookTableName + " b on b.book_id = bi.book_id").
		OrderBy("b.title").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.BookInstanceListItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return items, nil
}

func (r *repository) ListBookInstancesByBook(ctx context.Context, bookID string) ([]model.BookInstance, error) {
	query, args, err := qb.Select(bookInstanceColumns).
		From(bookInstanceTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("due_back").
		ToSql()
	if err != nil {
		return nil, err
	}

	var insts []model.BookInstance
	if err := r.db.SelectContext(ctx, &insts, query, args...); err != nil {
		return nil, dbErr(err)
	}
	return insts, nil
}

func (r *repository) CreateBookInstance(ctx context.Context, in model.BookInstanceInput) (model.BookInstance, error) {
	ins := qb.Insert(bookInstanceTableName)
	if in.DueBack != nil {
		ins = ins.Columns("book_instance_id", "book_id", "imprint", "status", "due_back").
			Values(uuid.New(), in.BookID, in.Imprint, in.Status, in.DueBack)
	} else {
		// let the schema default due_back to now()
		ins = ins.Columns("book_instance_id", "book_id", "imprint", "status").
			Values(uuid.New(), in.BookID, in.Imprint, in.Status)
	}
	query, args, err := ins.Suffix("returning " + bookInstanceColumns).ToSql()
	if err != nil {
		return model.BookInstance{}, err
	}

	var inst model.BookInstance
	if err := r.db.GetContext(ctx, &inst, query, args...); err != nil {
		r.log.Error("CreateBookInstance", zap.String("q", query), zap.Any("args", args))
		return model.BookInstance{}, dbErr(err)
	}
	return inst, nil
}

func (r *repository) UpdateBookInstance(ctx context.Context, id string, in model.BookInstanceInput) (model.BookInstance, error) {
	upd := qb.Update(bookInstanceTableName).
		Set("book_id", in.BookID).
		Set("imprint", in.Imprint).
		Set("status", in.Status)
	if in.DueBack != nil {
		upd = upd.Set("due_back", in.DueBack)
	}
	query, args, err := upd.
		Where(sq.Eq{"book_instance_id": id}).
		Suffix("returning " + bookInstanceColumns).
		ToSql()
	if err != nil {
		return model.BookInstance{}, err
	}

	var inst model.BookInstance
	if err := r.db.GetContext(ctx, &inst, query, args...); err != nil {
		return model.BookInstance{}, dbErr(err)
	}
	return inst, nil
}

func (r *repository) DeleteBookInstance(ctx context.Context, id string) error {
	query, args, err := qb.Delete(bookInstanceTableName).
		Where(sq.Eq{"book_instance_id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.exec(ctx, query, args)
}

func (r *repository) exec(ctx context.Context, query string, args []interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dbErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(bookTableName))
}

func (r *repository) CountBookInstances(ctx context.Context, onlyAvailable bool) (int, error) {
	q := qb.Select("count(*)").From(bookInstanceTableName)
	if onlyAvailable {
		q = q.Where(sq.Eq{"status": model.StatusAvailable})
	}
	return r.count(ctx, q)
}

func (r *repository) CountAuthors(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(authorTableName))
}

func (r *repository) CountGenres(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(genreTableName))
}

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, dbErr(err)
	}
	return count, nil
}
