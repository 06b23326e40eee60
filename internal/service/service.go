package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/model"
	catalogRepo "github.com/myan0020/locallibrary/internal/repository"
	"github.com/myan0020/locallibrary/pkg/kafka"
)

// Enqueuer publishes catalog change events. A nil enqueuer disables events.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

type Service struct {
	log    *zap.Logger
	repo   catalogRepo.Repository
	events Enqueuer
}

func NewService(repo catalogRepo.Repository, events Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}

// emit is fire-and-forget: a broker outage must not fail the write it trails.
func (s *Service) emit(kind, id, action string) {
	if s.events == nil {
		return
	}
	if err := s.events.Enqueue(kafka.CatalogTopic, model.CatalogEvent{Kind: kind, ID: id, Action: action}); err != nil {
		s.log.Warn("enqueue catalog event", zap.String("kind", kind), zap.String("id", id), zap.Error(err))
	}
}

// Index fans out the five landing-page counts.
func (s *Service) Index(ctx context.Context) (model.IndexCounts, error) {
	var counts model.IndexCounts
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		counts.Books, err = s.repo.CountBooks(ctx)
		return err
	})
	gg.Go(func() (err error) {
		counts.BookInstances, err = s.repo.CountBookInstances(ctx, false)
		return err
	})
	gg.Go(func() (err error) {
		counts.AvailableInstances, err = s.repo.CountBookInstances(ctx, true)
		return err
	})
	gg.Go(func() (err error) {
		counts.Authors, err = s.repo.CountAuthors(ctx)
		return err
	})
	gg.Go(func() (err error) {
		counts.Genres, err = s.repo.CountGenres(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.IndexCounts{}, err
	}
	return counts, nil
}

func (s *Service) AuthorList(ctx context.Context) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx)
}

// AuthorDetail fetches the author and their books concurrently. A missing
// author fails the whole read with ErrNotFound, never an empty author.
func (s *Service) AuthorDetail(ctx context.Context, id string) (model.AuthorDetail, error) {
	var detail model.AuthorDetail
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		detail.Author, err = s.repo.GetAuthor(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		detail.Books, err = s.repo.ListBookSummariesByAuthor(ctx, id)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.AuthorDetail{}, err
	}
	return detail, nil
}

func (s *Service) AuthorDeleteView(ctx context.Context, id string) (model.AuthorDeleteView, error) {
	var view model.AuthorDeleteView
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		view.Author, err = s.repo.GetAuthor(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		view.Books, err = s.repo.ListBooksByAuthor(ctx, id)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.AuthorDeleteView{}, err
	}
	return view, nil
}

func (s *Service) GetAuthor(ctx context.Context, id string) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) CreateAuthor(ctx context.Context, in model.AuthorInput) (model.Author, error) {
	author, err := s.repo.CreateAuthor(ctx, in)
	if err != nil {
		return model.Author{}, err
	}
	s.emit("author", author.ID, "create")
	return author, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, id string, in model.AuthorInput) (model.Author, error) {
	author, err := s.repo.UpdateAuthor(ctx, id, in)
	if err != nil {
		return model.Author{}, err
	}
	s.emit("author", author.ID, "update")
	return author, nil
}

// DeleteAuthor removes the author unconditionally once it exists; books still
// referencing the author surface as ErrConflict from the storage layer.
func (s *Service) DeleteAuthor(ctx context.Context, id string) error {
	if _, err := s.repo.GetAuthor(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteAuthor(ctx, id); err != nil {
		return err
	}
	s.emit("author", id, "delete")
	return nil
}

func (s *Service) GenreList(ctx context.Context) ([]model.Genre, error) {
	return s.repo.ListGenres(ctx)
}

func (s *Service) GenreDetail(ctx context.Context, id string) (model.GenreDetail, error) {
	var detail model.GenreDetail
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		detail.Genre, err = s.repo.GetGenre(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		detail.Books, err = s.repo.ListBooksByGenre(ctx, id)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.GenreDetail{}, err
	}
	return detail, nil
}

func (s *Service) GetGenre(ctx context.Context, id string) (model.Genre, error) {
	return s.repo.GetGenre(ctx, id)
}

// CreateGenre resolves an exact name match to the existing record instead of
// duplicating it. A lost create race falls back to re-reading the winner.
func (s *Service) CreateGenre(ctx context.Context, in model.GenreInput) (model.Genre, error) {
	existing, err := s.repo.GetGenreByName(ctx, in.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Genre{}, err
	}
	genre, err := s.repo.CreateGenre(ctx, in)
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return s.repo.GetGenreByName(ctx, in.Name)
		}
		return model.Genre{}, err
	}
	s.emit("genre", genre.ID, "create")
	return genre, nil
}

func (s *Service) UpdateGenre(ctx context.Context, id string, in model.GenreInput) (model.Genre, error) {
	genre, err := s.repo.UpdateGenre(ctx, id, in)
	if err != nil {
		return model.Genre{}, err
	}
	s.emit("genre", genre.ID, "update")
	return genre, nil
}

func (s *Service) DeleteGenre(ctx context.Context, id string) error {
	if _, err := s.repo.GetGenre(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteGenre(ctx, id); err != nil {
		return err
	}
	s.emit("genre", id, "delete")
	return nil
}

func (s *Service) BookList(ctx context.Context) ([]model.BookListItem, error) {
	return s.repo.ListBooks(ctx)
}

// BookDetail expands the book's references in one branch while the copies
// are listed in the other.
func (s *Service) BookDetail(ctx context.Context, id string) (model.BookDetail, error) {
	var detail model.BookDetail
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		book, err := s.repo.GetBook(ctx, id)
		if err != nil {
			return err
		}
		author, err := s.repo.GetAuthor(ctx, book.AuthorID)
		if err != nil {
			return err
		}
		genres, err := s.repo.ListBookGenres(ctx, id)
		if err != nil {
			return err
		}
		detail.Book, detail.Author, detail.Genres = book, author, genres
		return nil
	})
	gg.Go(func() (err error) {
		detail.Instances, err = s.repo.ListBookInstancesByBook(ctx, id)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.BookDetail{}, err
	}
	return detail, nil
}

func (s *Service) BookFormData(ctx context.Context) (model.BookFormData, error) {
	var data model.BookFormData
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		data.Authors, err = s.repo.ListAuthors(ctx)
		return err
	})
	gg.Go(func() (err error) {
		data.Genres, err = s.repo.ListGenres(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.BookFormData{}, err
	}
	return data, nil
}

func (s *Service) BookUpdateView(ctx context.Context, id string) (model.BookUpdateView, error) {
	var view model.BookUpdateView
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		view.Detail, err = s.BookDetail(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		view.Form, err = s.BookFormData(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.BookUpdateView{}, err
	}
	return view, nil
}

func (s *Service) CreateBook(ctx context.Context, in model.BookInput) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, in)
	if err != nil {
		return model.Book{}, err
	}
	s.emit("book", book.ID, "create")
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, id string, in model.BookInput) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, id, in)
	if err != nil {
		return model.Book{}, err
	}
	s.emit("book", book.ID, "update")
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	if _, err := s.repo.GetBook(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.emit("book", id, "delete")
	return nil
}

func (s *Service) BookInstanceList(ctx context.Context) ([]model.BookInstanceListItem, error) {
	return s.repo.ListBookInstances(ctx)
}

func (s *Service) BookInstanceDetail(ctx context.Context, id string) (model.BookInstanceDetail, error) {
	inst, err := s.repo.GetBookInstance(ctx, id)
	if err != nil {
		return model.BookInstanceDetail{}, err
	}
	book, err := s.repo.GetBook(ctx, inst.BookID)
	if err != nil {
		return model.BookInstanceDetail{}, err
	}
	return model.BookInstanceDetail{Instance: inst, Book: book}, nil
}

func (s *Service) BookInstanceUpdateView(ctx context.Context, id string) (model.BookInstanceUpdateView, error) {
	var view model.BookInstanceUpdateView
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		view.Instance, err = s.repo.GetBookInstance(ctx, id)
		return err
	})
	gg.Go(func() (err error) {
		view.Books, err = s.repo.ListBooks(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.BookInstanceUpdateView{}, err
	}
	return view, nil
}

func (s *Service) CreateBookInstance(ctx context.Context, in model.BookInstanceInput) (model.BookInstance, error) {
	if in.Status == "" {
		in.Status = model.StatusMaintenance
	}
	inst, err := s.repo.CreateBookInstance(ctx, in)
	if err != nil {
		return model.BookInstance{}, err
	}
	s.emit("bookinstance", inst.ID, "create")
	return inst, nil
}

func (s *Service) UpdateBookInstance(ctx context.Context, id string, in model.BookInstanceInput) (model.BookInstance, error) {
	if in.Status == "" {
		in.Status = model.StatusMaintenance
	}
	inst, err := s.repo.UpdateBookInstance(ctx, id, in)
	if err != nil {
		return model.BookInstance{}, err
	}
	s.emit("bookinstance", inst.ID, "update")
	return inst, nil
}

func (s *Service) DeleteBookInstance(ctx context.Context, id string) error {
	if _, err := s.repo.GetBookInstance(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteBookInstance(ctx, id); err != nil {
		return err
	}
	s.emit("bookinstance", id, "delete")
	return nil
}
