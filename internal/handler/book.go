package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/myan0020/locallibrary/internal/errs"
	"github.com/myan0020/locallibrary/internal/form"
	"github.com/myan0020/locallibrary/internal/model"
)

func (h *Handler) BookList(c echo.Context) error {
	books, err := h.catalogSvc.BookList(c.Request().Context())
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "book_list", echo.Map{
		"title":     "Book List",
		"book_list": books,
	})
}

func (h *Handler) BookDetail(c echo.Context) error {
	detail, err := h.catalogSvc.BookDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "book_detail", echo.Map{
		"title":          detail.Book.Title,
		"book":           detail.Book,
		"author":         detail.Author,
		"genres":         detail.Genres,
		"book_instances": detail.Instances,
	})
}

func (h *Handler) BookCreateForm(c echo.Context) error {
	data, err := h.catalogSvc.BookFormData(c.Request().Context())
	if err != nil {
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "book_form", echo.Map{
		"title":   "Create Book",
		"authors": data.Authors,
		"genres":  markChecked(data.Genres, nil),
	})
}

// BookCreate re-fetches the selection lists on a validation failure so the
// form can redisplay with prior selections marked.
func (h *Handler) BookCreate(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	values, fieldErrs := form.BookForm.Run(params)
	if len(fieldErrs) > 0 {
		data, err := h.catalogSvc.BookFormData(ctx)
		if err != nil {
			return httpErr(err)
		}
		return c.Render(http.StatusOK, "book_form", echo.Map{
			"title":   "Create Book",
			"book":    bookPayload(values),
			"authors": data.Authors,
			"genres":  markChecked(data.Genres, values.List("genre")),
			"errors":  fieldErrs,
		})
	}
	book, err := h.catalogSvc.CreateBook(ctx, bookInput(values))
	if err != nil {
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, book.URL())
}

func (h *Handler) BookUpdateForm(c echo.Context) error {
	view, err := h.catalogSvc.BookUpdateView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpErr(err)
	}
	selected := make([]string, 0, len(view.Detail.Genres))
	for _, genre := range view.Detail.Genres {
		selected = append(selected, genre.ID)
	}
	return c.Render(http.StatusOK, "book_form", echo.Map{
		"title":   "Update Book",
		"book":    view.Detail.Book,
		"authors": view.Form.Authors,
		"genres":  markChecked(view.Form.Genres, selected),
	})
}

func (h *Handler) BookUpdate(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	values, fieldErrs := form.BookForm.Run(params)
	if len(fieldErrs) > 0 {
		data, err := h.catalogSvc.BookFormData(ctx)
		if err != nil {
			return httpErr(err)
		}
		return c.Render(http.StatusOK, "book_form", echo.Map{
			"title":   "Update Book",
			"book":    bookPayload(values),
			"authors": data.Authors,
			"genres":  markChecked(data.Genres, values.List("genre")),
			"errors":  fieldErrs,
		})
	}
	book, err := h.catalogSvc.UpdateBook(ctx, c.Param("id"), bookInput(values))
	if err != nil {
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, book.URL())
}

func (h *Handler) BookDeleteForm(c echo.Context) error {
	detail, err := h.catalogSvc.BookDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Redirect(http.StatusFound, bookListPath)
		}
		return httpErr(err)
	}
	return c.Render(http.StatusOK, "book_delete", echo.Map{
		"title":              "Delete Book",
		"book":               detail.Book,
		"book_bookinstances": detail.Instances,
	})
}

func (h *Handler) BookDelete(c echo.Context) error {
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Redirect(http.StatusFound, bookListPath)
		}
		return httpErr(err)
	}
	return c.Redirect(http.StatusFound, bookListPath)
}

type checkedGenre struct {
	model.Genre
	Checked bool `json:"checked"`
}

func markChecked(genres []model.Genre, selected []string) []checkedGenre {
	marked := make([]checkedGenre, 0, len(genres))
	for _, genre := range genres {
		checked := false
		for _, id := range selected {
			if id == genre.ID {
				checked = true
				break
			}
		}
		marked = append(marked, checkedGenre{Genre: genre, Checked: checked})
	}
	return marked
}

func bookInput(v form.Values) model.BookInput {
	return model.BookInput{
		Title:    v.Get("title"),
		Summary:  v.Get("summary"),
		ISBN:     v.Get("isbn"),
		AuthorID: v.Get("author"),
		GenreIDs: v.List("genre"),
	}
}

func bookPayload(v form.Values) echo.Map {
	return echo.Map{
		"title":   v.Get("title"),
		"author":  v.Get("author"),
		"summary": v.Get("summary"),
		"isbn":    v.Get("isbn"),
		"genre":   v.List("genre"),
	}
}
