package handler

import (
	"context"

	"github.com/myan0020/locallibrary/internal/model"
	"github.com/myan0020/locallibrary/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	Index(ctx context.Context) (model.IndexCounts, error)

	AuthorList(ctx context.Context) ([]model.Author, error)
	AuthorDetail(ctx context.Context, id string) (model.AuthorDetail, error)
	AuthorDeleteView(ctx context.Context, id string) (model.AuthorDeleteView, error)
	GetAuthor(ctx context.Context, id string) (model.Author, error)
	CreateAuthor(ctx context.Context, in model.AuthorInput) (model.Author, error)
	UpdateAuthor(ctx context.Context, id string, in model.AuthorInput) (model.Author, error)
	DeleteAuthor(ctx context.Context, id string) error

	GenreList(ctx context.Context) ([]model.Genre, error)
	GenreDetail(ctx context.Context, id string) (model.GenreDetail, error)
	GetGenre(ctx context.Context, id string) (model.Genre, error)
	CreateGenre(ctx context.Context, in model.GenreInput) (model.Genre, error)
	UpdateGenre(ctx context.Context, id string, in model.GenreInput) (model.Genre, error)
	DeleteGenre(ctx context.Context, id string) error

	BookList(ctx context.Context) ([]model.BookListItem, error)
	BookDetail(ctx context.Context, id string) (model.BookDetail, error)
	BookFormData(ctx context.Context) (model.BookFormData, error)
	BookUpdateView(ctx context.Context, id string) (model.BookUpdateView, error)
	CreateBook(ctx context.Context, in model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, id string, in model.BookInput) (model.Book, error)
	DeleteBook(ctx context.Context, id string) error

	BookInstanceList(ctx context.Context) ([]model.BookInstanceListItem, error)
	BookInstanceDetail(ctx context.Context, id string) (model.BookInstanceDetail, error)
	BookInstanceUpdateView(ctx context.Context, id string) (model.BookInstanceUpdateView, error)
	CreateBookInstance(ctx context.Context, in model.BookInstanceInput) (model.BookInstance, error)
	UpdateBookInstance(ctx context.Context, id string, in model.BookInstanceInput) (model.BookInstance, error)
	DeleteBookInstance(ctx context.Context, id string) error
}

var _ CatalogService = (*service.Service)(nil)
