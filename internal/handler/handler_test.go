package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/handler"
	"github.com/myan0020/locallibrary/internal/model"
	"github.com/myan0020/locallibrary/pkg/render"

	service_mocks "github.com/myan0020/locallibrary/internal/handler/mocks"
)

func newEcho(t *testing.T) (*echo.Echo, *service_mocks.MockCatalogService, *handler.Handler) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockCatalogService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Renderer = render.NewJSON()
	return e, svc, h
}

func TestHandler_AuthorDetail(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		bodyContains []string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService, id string)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "a1",
			mockBehavior: func(r *service_mocks.MockCatalogService, id string) {
				r.EXPECT().
					AuthorDetail(context.Background(), id).
					Return(model.AuthorDetail{
						Author: model.Author{ID: id, FirstName: "Frank", FamilyName: "Herbert"},
						Books: []model.BookSummary{
							{ID: "b1", Title: "Dune", Summary: "Desert planet"},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				bodyContains: []string{`"view":"author_detail"`, "Herbert, Frank", "Dune"},
			},
		},
		{
			name: "err. not found",
			id:   "missing",
			mockBehavior: func(r *service_mocks.MockCatalogService, id string) {
				r.EXPECT().
					AuthorDetail(context.Background(), id).
					Return(model.AuthorDetail{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				bodyContains: []string{`{"message":"not found"}`},
			},
		},
		{
			name: "err. internal",
			id:   "a1",
			mockBehavior: func(r *service_mocks.MockCatalogService, id string) {
				r.EXPECT().
					AuthorDetail(context.Background(), id).
					Return(model.AuthorDetail{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				bodyContains: []string{`{"message":"db internal"}`},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newEcho(t)
			e.GET("/catalog/author/:id", h.AuthorDetail)

			r := httptest.NewRequest(http.MethodGet, "/catalog/author/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.id)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			for _, s := range tt.response.bodyContains {
				require.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestHandler_GenreCreate(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode     int
		expectedLocation string
		bodyContains     string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		form         url.Values
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. redirects to the new genre",
			form: url.Values{"name": {"Horror"}},
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					CreateGenre(context.Background(), model.GenreInput{Name: "Horror"}).
					Return(model.Genre{ID: "g2", Name: "Horror"}, nil)
			},
			response: response{
				expectedCode:     http.StatusFound,
				expectedLocation: "/catalog/genre/g2",
			},
		},
		{
			name: "ok. duplicate name redirects to the existing genre",
			form: url.Values{"name": {"Fantasy"}},
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					CreateGenre(context.Background(), model.GenreInput{Name: "Fantasy"}).
					Return(model.Genre{ID: "g1", Name: "Fantasy"}, nil)
			},
			response: response{
				expectedCode:     http.StatusFound,
				expectedLocation: "/catalog/genre/g1",
			},
		},
		{
			name:         "err. short name re-renders the form, no write",
			form:         url.Values{"name": {"ab"}},
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusOK,
				bodyContains: "must be at least 3 characters",
			},
		},
		{
			name:         "err. empty name re-renders the form, no write",
			form:         url.Values{"name": {"   "}},
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusOK,
				bodyContains: "must not be empty",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newEcho(t)
			e.POST("/catalog/genre/create", h.GenreCreate)

			r := httptest.NewRequest(http.MethodPost, "/catalog/genre/create", strings.NewReader(tt.form.Encode()))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedLocation != "" {
				require.Equal(t, tt.response.expectedLocation, w.Header().Get(echo.HeaderLocation))
			}
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			}
		})
	}
}

func TestHandler_AuthorCreate_ReRendersSanitizedInput(t *testing.T) {
	t.Parallel()
	e, _, h := newEcho(t)
	e.POST("/catalog/author/create", h.AuthorCreate)

	form := url.Values{
		"first_name":  {"  <Jane>  "},
		"family_name": {"Doe"},
	}
	r := httptest.NewRequest(http.MethodPost, "/catalog/author/create", strings.NewReader(form.Encode()))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, `"view":"author_form"`)
	require.Contains(t, body, "must contain only letters and numbers")
	// the payload echoes the sanitized value, never the raw input
	require.Contains(t, body, `&lt;Jane&gt;`)
	require.NotContains(t, body, "<Jane>")
}

func TestHandler_AuthorDeleteForm(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode     int
		expectedLocation string
		bodyContains     string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService, id string)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. shows the author and blocking books",
			id:   "a1",
			mockBehavior: func(r *service_mocks.MockCatalogService, id string) {
				r.EXPECT().
					AuthorDeleteView(context.Background(), id).
					Return(model.AuthorDeleteView{
						Author: model.Author{ID: id, FirstName: "Frank", FamilyName: "Herbert"},
						Books:  []model.Book{{ID: "b1", Title: "Dune"}},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				bodyContains: `"view":"author_delete"`,
			},
		},
		{
			name: "missing target redirects to the list instead of 404",
			id:   "gone",
			mockBehavior: func(r *service_mocks.MockCatalogService, id string) {
				r.EXPECT().
					AuthorDeleteView(context.Background(), id).
					Return(model.AuthorDeleteView{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode:     http.StatusFound,
				expectedLocation: "/catalog/authors",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newEcho(t)
			e.GET("/catalog/author/:id/delete", h.AuthorDeleteForm)

			r := httptest.NewRequest(http.MethodGet, "/catalog/author/"+tt.id+"/delete", http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.id)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedLocation != "" {
				require.Equal(t, tt.response.expectedLocation, w.Header().Get(echo.HeaderLocation))
			}
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			}
		})
	}
}

func TestHandler_BookInstanceDelete(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCatalogService, id string)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		expectedCode int
	}{
		{
			name: "ok",
			id:   "i1",
			mockBehavior: func(r *service_mocks.MockCatalogService, id string) {
				r.EXPECT().DeleteBookInstance(context.Background(), id).Return(nil)
			},
			expectedCode: http.StatusFound,
		},
		{
			name: "already gone still lands on the list",
			id:   "gone",
			mockBehavior: func(r *service_mocks.MockCatalogService, id string) {
				r.EXPECT().DeleteBookInstance(context.Background(), id).Return(errs.ErrNotFound)
			},
			expectedCode: http.StatusFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newEcho(t)
			e.POST("/catalog/bookinstance/:id/delete", h.BookInstanceDelete)

			r := httptest.NewRequest(http.MethodPost, "/catalog/bookinstance/"+tt.id+"/delete", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.id)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, "/catalog/bookinstances", w.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestHandler_AuthorDelete_ConflictWhenBooksRemain(t *testing.T) {
	t.Parallel()
	e, svc, h := newEcho(t)
	e.POST("/catalog/author/:id/delete", h.AuthorDelete)

	svc.EXPECT().
		DeleteAuthor(context.Background(), "a1").
		Return(errs.ErrConflict)

	r := httptest.NewRequest(http.MethodPost, "/catalog/author/a1/delete", http.NoBody)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}
