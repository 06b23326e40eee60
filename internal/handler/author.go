package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/form"
	"github.com/myan0020/locallibrary/internal/model"
)

func (h *Handler) AuthorList(c echo.Context) error {
	authors, err := h.catalogSvc.AuthorList(c.Request().Context())
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "author_list", echo.Map{
		"title":       "Author List",
		"author_list": authors,
	})
}

func (h *Handler) AuthorDetail(c echo.Context) error {
	detail, err := h.catalogSvc.AuthorDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "author_detail", echo.Map{
		"title":        detail.Author.Name(),
		"author":       detail.Author,
		"author_books": detail.Books,
	})
}

func (h *Handler) AuthorCreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "author_form", echo.Map{
		"title": "Create Author",
	})
}

func (h *Handler) AuthorCreate(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	values, fieldErrs := form.AuthorForm.Run(params)
	if len(fieldErrs) > 0 {
		return c.Render(http.StatusOK, "author_form", echo.Map{
			"title":  "Create Author",
			"author": authorPayload(values),
			"errors": fieldErrs,
		})
	}
	author, err := h.catalogSvc.CreateAuthor(c.Request().Context(), authorInput(values))
	if err != nil {
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, author.URL())
}

func (h *Handler) AuthorUpdateForm(c echo.Context) error {
	author, err := h.catalogSvc.GetAuthor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "author_form", echo.Map{
		"title":  "Update Author",
		"author": author,
	})
}

func (h *Handler) AuthorUpdate(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	values, fieldErrs := form.AuthorForm.Run(params)
	if len(fieldErrs) > 0 {
		return c.Render(http.StatusOK, "author_form", echo.Map{
			"title":  "Update Author",
			"author": authorPayload(values),
			"errors": fieldErrs,
		})
	}
	author, err := h.catalogSvc.UpdateAuthor(c.Request().Context(), c.Param("id"), authorInput(values))
	if err != nil {
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, author.URL())
}

// AuthorDeleteForm redirects to the author list when the target is already
// gone; detail views 404 instead.
func (h *Handler) AuthorDeleteForm(c echo.Context) error {
	view, err := h.catalogSvc.AuthorDeleteView(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Redirect(http.StatusFound, authorListPath)
		}
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "author_delete", echo.Map{
		"title":        "Delete Author",
		"author":       view.Author,
		"author_books": view.Books,
	})
}

func (h *Handler) AuthorDelete(c echo.Context) error {
	if err := h.catalogSvc.DeleteAuthor(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Redirect(http.StatusFound, authorListPath)
		}
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, authorListPath)
}

func authorInput(v form.Values) model.AuthorInput {
	return model.AuthorInput{
		FirstName:   v.Get("first_name"),
		FamilyName:  v.Get("family_name"),
		DateOfBirth: v.Date("date_of_birth"),
		DateOfDeath: v.Date("date_of_death"),
	}
}

func authorPayload(v form.Values) echo.Map {
	return echo.Map{
		"first_name":    v.Get("first_name"),
		"family_name":   v.Get("family_name"),
		"date_of_birth": v.Get("date_of_birth"),
		"date_of_death": v.Get("date_of_death"),
	}
}
