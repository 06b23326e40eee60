// Package render holds the default presentation collaborator. Handlers emit
// a view name and a data payload; what a view looks like is not the
// catalog's concern, so the default renderer just serializes both for a
// frontend to consume.
package render

import (
	"encoding/json"
	"io"

	"github.com/labstack/echo/v4"
)

type JSON struct{}

func NewJSON() JSON {
	return JSON{}
}

func (JSON) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return json.NewEncoder(w).Encode(map[string]interface{}{
		"view": name,
		"data": data,
	})
}
