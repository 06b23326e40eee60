package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/model"
	repo_mocks "github.com/myan0020/locallibrary/internal/repository/mocks"
	"github.com/myan0020/locallibrary/internal/service"
	"github.com/myan0020/locallibrary/pkg/kafka"
)

func newService(t *testing.T, events service.Enqueuer) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	repo := repo_mocks.NewMockRepository(c)
	return service.NewService(repo, events, zap.NewExample().Named("test")), repo
}

func TestService_CreateGenre_Dedupe(t *testing.T) {
	t.Parallel()
	existing := model.Genre{ID: "g1", Name: "Fantasy"}

	t.Run("existing name resolves to existing record", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, nil)
		repo.EXPECT().
			GetGenreByName(gomock.Any(), "Fantasy").
			Return(existing, nil)
		// no CreateGenre expectation: persisting here fails the test

		genre, err := svc.CreateGenre(context.Background(), model.GenreInput{Name: "Fantasy"})
		require.NoError(t, err)
		require.Equal(t, existing, genre)
		require.Equal(t, "/catalog/genre/g1", genre.URL())
	})

	t.Run("new name persists", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, nil)
		repo.EXPECT().
			GetGenreByName(gomock.Any(), "Horror").
			Return(model.Genre{}, errs.ErrNotFound)
		repo.EXPECT().
			CreateGenre(gomock.Any(), model.GenreInput{Name: "Horror"}).
			Return(model.Genre{ID: "g2", Name: "Horror"}, nil)

		genre, err := svc.CreateGenre(context.Background(), model.GenreInput{Name: "Horror"})
		require.NoError(t, err)
		require.Equal(t, "g2", genre.ID)
	})

	t.Run("lost create race re-reads the winner", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, nil)
		gomock.InOrder(
			repo.EXPECT().
				GetGenreByName(gomock.Any(), "Fantasy").
				Return(model.Genre{}, errs.ErrNotFound),
			repo.EXPECT().
				CreateGenre(gomock.Any(), model.GenreInput{Name: "Fantasy"}).
				Return(model.Genre{}, errs.ErrConflict),
			repo.EXPECT().
				GetGenreByName(gomock.Any(), "Fantasy").
				Return(existing, nil),
		)

		genre, err := svc.CreateGenre(context.Background(), model.GenreInput{Name: "Fantasy"})
		require.NoError(t, err)
		require.Equal(t, existing, genre)
	})
}

func TestService_AuthorDetail(t *testing.T) {
	t.Parallel()

	t.Run("author plus books, concurrently", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, nil)
		author := model.Author{ID: "A1", FirstName: "Frank", FamilyName: "Herbert"}
		books := []model.BookSummary{
			{ID: "b1", Title: "Dune", Summary: "Desert planet"},
			{ID: "b2", Title: "Dune Messiah", Summary: "The sequel"},
		}
		repo.EXPECT().GetAuthor(gomock.Any(), "A1").Return(author, nil)
		repo.EXPECT().ListBookSummariesByAuthor(gomock.Any(), "A1").Return(books, nil)

		detail, err := svc.AuthorDetail(context.Background(), "A1")
		require.NoError(t, err)
		require.Equal(t, author, detail.Author)
		require.Equal(t, books, detail.Books)
	})

	t.Run("missing author is not an empty author", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, nil)
		repo.EXPECT().GetAuthor(gomock.Any(), "A2").Return(model.Author{}, errs.ErrNotFound)
		repo.EXPECT().ListBookSummariesByAuthor(gomock.Any(), "A2").Return(nil, nil).AnyTimes()

		_, err := svc.AuthorDetail(context.Background(), "A2")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("failing branch fails the whole read", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, nil)
		repo.EXPECT().GetAuthor(gomock.Any(), "A1").Return(model.Author{ID: "A1"}, nil).AnyTimes()
		repo.EXPECT().ListBookSummariesByAuthor(gomock.Any(), "A1").Return(nil, errors.New("db down"))

		_, err := svc.AuthorDetail(context.Background(), "A1")
		require.Error(t, err)
		require.NotErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_BookDetail_PopulatesReferences(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t, nil)
	book := model.Book{ID: "b1", Title: "Dune", AuthorID: "A1"}
	author := model.Author{ID: "A1", FamilyName: "Herbert"}
	genres := []model.Genre{{ID: "g1", Name: "Science Fiction"}}
	instances := []model.BookInstance{{ID: "i1", BookID: "b1", Status: model.StatusAvailable}}

	repo.EXPECT().GetBook(gomock.Any(), "b1").Return(book, nil)
	repo.EXPECT().GetAuthor(gomock.Any(), "A1").Return(author, nil)
	repo.EXPECT().ListBookGenres(gomock.Any(), "b1").Return(genres, nil)
	repo.EXPECT().ListBookInstancesByBook(gomock.Any(), "b1").Return(instances, nil)

	detail, err := svc.BookDetail(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, book, detail.Book)
	require.Equal(t, author, detail.Author)
	require.Equal(t, genres, detail.Genres)
	require.Equal(t, instances, detail.Instances)
}

func TestService_Index_FansOutCounts(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t, nil)
	repo.EXPECT().CountBooks(gomock.Any()).Return(4, nil)
	repo.EXPECT().CountBookInstances(gomock.Any(), false).Return(10, nil)
	repo.EXPECT().CountBookInstances(gomock.Any(), true).Return(3, nil)
	repo.EXPECT().CountAuthors(gomock.Any()).Return(2, nil)
	repo.EXPECT().CountGenres(gomock.Any()).Return(5, nil)

	counts, err := svc.Index(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.IndexCounts{
		Books:              4,
		BookInstances:      10,
		AvailableInstances: 3,
		Authors:            2,
		Genres:             5,
	}, counts)
}

func TestService_CreateBookInstance_DefaultsStatus(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t, nil)
	due := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().
		CreateBookInstance(gomock.Any(), model.BookInstanceInput{
			BookID:  "b1",
			Imprint: "Ace Books, 1990",
			Status:  model.StatusMaintenance,
			DueBack: &due,
		}).
		Return(model.BookInstance{ID: "i1", Status: model.StatusMaintenance}, nil)

	inst, err := svc.CreateBookInstance(context.Background(), model.BookInstanceInput{
		BookID:  "b1",
		Imprint: "Ace Books, 1990",
		DueBack: &due,
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusMaintenance, inst.Status)
}

func TestService_DeleteLooksUpFirst(t *testing.T) {
	t.Parallel()

	t.Run("missing instance", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, nil)
		repo.EXPECT().GetBookInstance(gomock.Any(), "gone").Return(model.BookInstance{}, errs.ErrNotFound)
		// no DeleteBookInstance expectation

		err := svc.DeleteBookInstance(context.Background(), "gone")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("present author", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t, nil)
		repo.EXPECT().GetAuthor(gomock.Any(), "A1").Return(model.Author{ID: "A1"}, nil)
		repo.EXPECT().DeleteAuthor(gomock.Any(), "A1").Return(nil)

		require.NoError(t, svc.DeleteAuthor(context.Background(), "A1"))
	})
}

type captureEnqueuer struct {
	topics   []string
	payloads []any
	err      error
}

func (c *captureEnqueuer) Enqueue(topic string, v any) error {
	c.topics = append(c.topics, topic)
	c.payloads = append(c.payloads, v)
	return c.err
}

func TestService_EmitsCatalogEvents(t *testing.T) {
	t.Parallel()
	events := &captureEnqueuer{}
	svc, repo := newService(t, events)
	repo.EXPECT().
		CreateAuthor(gomock.Any(), gomock.Any()).
		Return(model.Author{ID: "A1"}, nil)

	_, err := svc.CreateAuthor(context.Background(), model.AuthorInput{FirstName: "Frank", FamilyName: "Herbert"})
	require.NoError(t, err)
	require.Equal(t, []string{kafka.CatalogTopic}, events.topics)
	require.Equal(t, model.CatalogEvent{Kind: "author", ID: "A1", Action: "create"}, events.payloads[0])
}

func TestService_EnqueueFailureDoesNotFailWrite(t *testing.T) {
	t.Parallel()
	events := &captureEnqueuer{err: errors.New("broker down")}
	svc, repo := newService(t, events)
	repo.EXPECT().
		CreateAuthor(gomock.Any(), gomock.Any()).
		Return(model.Author{ID: "A1"}, nil)

	_, err := svc.CreateAuthor(context.Background(), model.AuthorInput{FirstName: "Frank", FamilyName: "Herbert"})
	require.NoError(t, err)
}
