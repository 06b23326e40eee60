package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/myan0020/locallibrary/internal/errs"
	md "github.com/myan0020/locallibrary/pkg/middleware"
	"github.com/myan0020/locallibrary/pkg/validate"
)

const (
	authorListPath       = "/catalog/authors"
	genreListPath        = "/catalog/genres"
	bookListPath         = "/catalog/books"
	bookInstanceListPath = "/catalog/bookinstances"
)

type Handler struct {
	catalogSvc CatalogService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		log:        log,
	}
}

// NewRouter wires the catalog routes. Rendering is delegated to the injected
// renderer; handlers only pick a view name and payload or a redirect.
func (h *Handler) NewRouter(renderer echo.Renderer) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Renderer = renderer
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	catalog := e.Group("/catalog",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	catalog.GET("", h.Index)

	catalog.GET("/authors", h.AuthorList)
	catalog.GET("/author/create", h.AuthorCreateForm)
	catalog.POST("/author/create", h.AuthorCreate)
	catalog.GET("/author/:id", h.AuthorDetail)
	catalog.GET("/author/:id/update", h.AuthorUpdateForm)
	catalog.POST("/author/:id/update", h.AuthorUpdate)
	catalog.GET("/author/:id/delete", h.AuthorDeleteForm)
	catalog.POST("/author/:id/delete", h.AuthorDelete)

	catalog.GET("/genres", h.GenreList)
	catalog.GET("/genre/create", h.GenreCreateForm)
	catalog.POST("/genre/create", h.GenreCreate)
	catalog.GET("/genre/:id", h.GenreDetail)
	catalog.GET("/genre/:id/update", h.GenreUpdateForm)
	catalog.POST("/genre/:id/update", h.GenreUpdate)
	catalog.GET("/genre/:id/delete", h.GenreDeleteForm)
	catalog.POST("/genre/:id/delete", h.GenreDelete)

	catalog.GET("/books", h.BookList)
	catalog.GET("/book/create", h.BookCreateForm)
	catalog.POST("/book/create", h.BookCreate)
	catalog.GET("/book/:id", h.BookDetail)
	catalog.GET("/book/:id/update", h.BookUpdateForm)
	catalog.POST("/book/:id/update", h.BookUpdate)
	catalog.GET("/book/:id/delete", h.BookDeleteForm)
	catalog.POST("/book/:id/delete", h.BookDelete)

	catalog.GET("/bookinstances", h.BookInstanceList)
	catalog.GET("/bookinstance/create", h.BookInstanceCreateForm)
	catalog.POST("/bookinstance/create", h.BookInstanceCreate)
	catalog.GET("/bookinstance/:id", h.BookInstanceDetail)
	catalog.GET("/bookinstance/:id/update", h.BookInstanceUpdateForm)
	catalog.POST("/bookinstance/:id/update", h.BookInstanceUpdate)
	catalog.GET("/bookinstance/:id/delete", h.BookInstanceDeleteForm)
	catalog.POST("/bookinstance/:id/delete", h.BookInstanceDelete)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Index(c echo.Context) error {
	counts, err := h.catalogSvc.Index(c.Request().Context())
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "index", echo.Map{
		"title": "Local Library Home",
		"data":  counts,
	})
}

func httpErr(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalid):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
