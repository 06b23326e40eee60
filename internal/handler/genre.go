package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/form"
	"github.com/myan0020/locallibrary/internal/model"
)

func (h *Handler) GenreList(c echo.Context) error {
	genres, err := h.catalogSvc.GenreList(c.Request().Context())
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "genre_list", echo.Map{
		"title":      "Genre List",
		"genre_list": genres,
	})
}

func (h *Handler) GenreDetail(c echo.Context) error {
	detail, err := h.catalogSvc.GenreDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "genre_detail", echo.Map{
		"title":       detail.Genre.Name,
		"genre":       detail.Genre,
		"genre_books": detail.Books,
	})
}

func (h *Handler) GenreCreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "genre_form", echo.Map{
		"title": "Create Genre",
	})
}

// GenreCreate navigates to the existing record when the name is already
// taken; the service resolves the duplicate instead of persisting one.
func (h *Handler) GenreCreate(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	values, fieldErrs := form.GenreForm.Run(params)
	if len(fieldErrs) > 0 {
		return c.Render(http.StatusOK, "genre_form", echo.Map{
			"title":  "Create Genre",
			"genre":  genrePayload(values),
			"errors": fieldErrs,
		})
	}
	genre, err := h.catalogSvc.CreateGenre(c.Request().Context(), genreInput(values))
	if err != nil {
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, genre.URL())
}

func (h *Handler) GenreUpdateForm(c echo.Context) error {
	genre, err := h.catalogSvc.GetGenre(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "genre_form", echo.Map{
		"title": "Update Genre",
		"genre": genre,
	})
}

func (h *Handler) GenreUpdate(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	values, fieldErrs := form.GenreForm.Run(params)
	if len(fieldErrs) > 0 {
		return c.Render(http.StatusOK, "genre_form", echo.Map{
			"title":  "Update Genre",
			"genre":  genrePayload(values),
			"errors": fieldErrs,
		})
	}
	genre, err := h.catalogSvc.UpdateGenre(c.Request().Context(), c.Param("id"), genreInput(values))
	if err != nil {
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, genre.URL())
}

func (h *Handler) GenreDeleteForm(c echo.Context) error {
	detail, err := h.catalogSvc.GenreDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Redirect(http.StatusFound, genreListPath)
		}
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "genre_delete", echo.Map{
		"title":       "Delete Genre",
		"genre":       detail.Genre,
		"genre_books": detail.Books,
	})
}

func (h *Handler) GenreDelete(c echo.Context) error {
	if err := h.catalogSvc.DeleteGenre(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Redirect(http.StatusFound, genreListPath)
		}
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, genreListPath)
}

func genreInput(v form.Values) model.GenreInput {
	return model.GenreInput{Name: v.Get("name")}
}

func genrePayload(v form.Values) echo.Map {
	return echo.Map{"name": v.Get("name")}
}
