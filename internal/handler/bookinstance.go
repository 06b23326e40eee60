package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/form"
	"github.com/myan0020/locallibrary/internal/model"
)

func (h *Handler) BookInstanceList(c echo.Context) error {
	instances, err := h.catalogSvc.BookInstanceList(c.Request().Context())
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "bookinstance_list", echo.Map{
		"title":             "Book Instance List",
		"bookinstance_list": instances,
	})
}

func (h *Handler) BookInstanceDetail(c echo.Context) error {
	detail, err := h.catalogSvc.BookInstanceDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "bookinstance_detail", echo.Map{
		"title":        detail.Book.Title,
		"bookinstance": detail.Instance,
		"book":         detail.Book,
	})
}

func (h *Handler) BookInstanceCreateForm(c echo.Context) error {
	books, err := h.catalogSvc.BookList(c.Request().Context())
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "bookinstance_form", echo.Map{
		"title":    "Create BookInstance",
		"books":    books,
		"statuses": model.Statuses,
	})
}

func (h *Handler) BookInstanceCreate(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	values, fieldErrs := form.BookInstanceForm.Run(params)
	if len(fieldErrs) > 0 {
		books, err := h.catalogSvc.BookList(ctx)
		if err != nil {
			return httpErr(err)
		}
		return c.Render(http.StatusOK, "bookinstance_form", echo.Map{
			"title":        "Create BookInstance",
			"bookinstance": bookInstancePayload(values),
			"books":        books,
			"statuses":     model.Statuses,
			"errors":       fieldErrs,
		})
	}
	instance, err := h.catalogSvc.CreateBookInstance(ctx, bookInstanceInput(values))
	if err != nil {
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, instance.URL())
}

func (h *Handler) BookInstanceUpdateForm(c echo.Context) error {
	view, err := h.catalogSvc.BookInstanceUpdateView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "bookinstance_form", echo.Map{
		"title":        "Update BookInstance",
		"bookinstance": view.Instance,
		"books":        view.Books,
		"statuses":     model.Statuses,
	})
}

func (h *Handler) BookInstanceUpdate(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	values, fieldErrs := form.BookInstanceForm.Run(params)
	if len(fieldErrs) > 0 {
		books, err := h.catalogSvc.BookList(ctx)
		if err != nil {
			return httpErr(err)
		}
		return c.Render(http.StatusOK, "bookinstance_form", echo.Map{
			"title":        "Update BookInstance",
			"bookinstance": bookInstancePayload(values),
			"books":        books,
			"statuses":     model.Statuses,
			"errors":       fieldErrs,
		})
	}
	instance, err := h.catalogSvc.UpdateBookInstance(ctx, c.Param("id"), bookInstanceInput(values))
	if err != nil {
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, instance.URL())
}

func (h *Handler) BookInstanceDeleteForm(c echo.Context) error {
	detail, err := h.catalogSvc.BookInstanceDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Redirect(http.StatusFound, bookInstanceListPath)
		}
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "bookinstance_delete", echo.Map{
		"title":        "Delete BookInstance",
		"bookinstance": detail.Instance,
		"book":         detail.Book,
	})
}

func (h *Handler) BookInstanceDelete(c echo.Context) error {
	if err := h.catalogSvc.DeleteBookInstance(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Redirect(http.StatusFound, bookInstanceListPath)
		}
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, bookInstanceListPath)
}

func bookInstanceInput(v form.Values) model.BookInstanceInput {
	return model.BookInstanceInput{
		BookID:  v.Get("book"),
		Imprint: v.Get("imprint"),
		Status:  model.Status(v.Get("status")),
		DueBack: v.Date("due_back"),
	}
}

func bookInstancePayload(v form.Values) echo.Map {
	return echo.Map{
		"book":     v.Get("book"),
		"imprint":  v.Get("imprint"),
		"status":   v.Get("status"),
		"due_back": v.Get("due_back"),
	}
}
