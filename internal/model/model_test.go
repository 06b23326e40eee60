package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/myan0020/locallibrary/internal/model"
)

func TestCanonicalURLs(t *testing.T) {
	t.Parallel()
	require.Equal(t, "/catalog/author/a1", model.Author{ID: "a1"}.URL())
	require.Equal(t, "/catalog/genre/g1", model.Genre{ID: "g1"}.URL())
	require.Equal(t, "/catalog/book/b1", model.Book{ID: "b1"}.URL())
	require.Equal(t, "/catalog/bookinstance/i1", model.BookInstance{ID: "i1"}.URL())
}

func TestAuthorName(t *testing.T) {
	t.Parallel()
	require.Equal(t, "Herbert, Frank", model.Author{FirstName: "Frank", FamilyName: "Herbert"}.Name())
	require.Equal(t, "", model.Author{}.Name())
}

func TestAuthorLifespan(t *testing.T) {
	t.Parallel()
	birth := time.Date(1920, 10, 8, 0, 0, 0, 0, time.UTC)
	death := time.Date(1986, 2, 11, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "1920 - 1986", model.Author{DateOfBirth: &birth, DateOfDeath: &death}.Lifespan())
	require.Equal(t, "1920 - ", model.Author{DateOfBirth: &birth}.Lifespan())
	require.Equal(t, "", model.Author{}.Lifespan())
}

func TestDueBackRenderings(t *testing.T) {
	t.Parallel()
	due := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	inst := model.BookInstance{DueBack: due}
	require.Equal(t, "January 15, 2026", inst.DueBackFormatted())
	require.Equal(t, "2026-01-15", inst.DueBackInput())

	require.Equal(t, "", model.BookInstance{}.DueBackFormatted())
	require.Equal(t, "", model.BookInstance{}.DueBackInput())
}

func TestStatusValid(t *testing.T) {
	t.Parallel()
	for _, s := range model.Statuses {
		require.True(t, s.Valid())
	}
	require.False(t, model.Status("Orbiting").Valid())
	require.False(t, model.Status("").Valid())
}
