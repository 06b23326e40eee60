package form_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/myan0020/locallibrary/internal/form"
)

func TestBookForm_GenreAlwaysList(t *testing.T) {
	t.Parallel()
	base := url.Values{
		"title":   {"Dune"},
		"author":  {"a1"},
		"summary": {"Desert planet"},
		"isbn":    {"9780441013593"},
	}

	tests := []struct {
		name   string
		genres []string
		want   []string
	}{
		{name: "absent", genres: nil, want: []string{}},
		{name: "single", genres: []string{"g1"}, want: []string{"g1"}},
		{name: "many", genres: []string{"g1", "g2"}, want: []string{"g1", "g2"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := url.Values{}
			for k, v := range base {
				src[k] = v
			}
			if tt.genres != nil {
				src["genre"] = tt.genres
			}
			values, fieldErrs := form.BookForm.Run(src)
			require.Empty(t, fieldErrs)
			require.Equal(t, tt.want, values.List("genre"))
		})
	}
}

func TestAuthorForm_AccumulatesAllErrors(t *testing.T) {
	t.Parallel()
	src := url.Values{
		"first_name":    {"   "},
		"family_name":   {"O'Brien"},
		"date_of_birth": {"31-12-1999"},
	}
	_, fieldErrs := form.AuthorForm.Run(src)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	require.Equal(t, []string{"first_name", "family_name", "date_of_birth"}, fields)
}

func TestAuthorForm_SanitizesEvenOnError(t *testing.T) {
	t.Parallel()
	src := url.Values{
		"first_name":  {"  <Jane>  "},
		"family_name": {"Doe"},
	}
	values, fieldErrs := form.AuthorForm.Run(src)
	require.NotEmpty(t, fieldErrs) // "<Jane>" is not alphanumeric

	// trimmed and escaped, never the raw input
	require.Equal(t, "&lt;Jane&gt;", values.Get("first_name"))
	require.Equal(t, "Doe", values.Get("family_name"))
}

func TestBookForm_RoundTripSanitized(t *testing.T) {
	t.Parallel()
	src := url.Values{
		"title":   {"  <i>Dune</i> "},
		"author":  {"a1"},
		"summary": {"Desert & spice"},
		"isbn":    {"9780441013593"},
	}
	values, fieldErrs := form.BookForm.Run(src)
	require.Empty(t, fieldErrs)
	require.Equal(t, "&lt;i&gt;Dune&lt;/i&gt;", values.Get("title"))
	require.Equal(t, "Desert &amp; spice", values.Get("summary"))
}

func TestBookInstanceForm_Status(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{name: "omitted defaults downstream", status: "", wantErr: false},
		{name: "valid", status: "Loaned", wantErr: false},
		{name: "unknown value rejected", status: "Orbiting", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := url.Values{
				"book":    {"b1"},
				"imprint": {"Ace Books, 1990"},
			}
			if tt.status != "" {
				src.Set("status", tt.status)
			}
			_, fieldErrs := form.BookInstanceForm.Run(src)
			if tt.wantErr {
				require.Len(t, fieldErrs, 1)
				require.Equal(t, "status", fieldErrs[0].Field)
			} else {
				require.Empty(t, fieldErrs)
			}
		})
	}
}

func TestBookInstanceForm_DueBackCoercion(t *testing.T) {
	t.Parallel()
	src := url.Values{
		"book":     {"b1"},
		"imprint":  {"Ace Books, 1990"},
		"due_back": {"2026-01-15"},
	}
	values, fieldErrs := form.BookInstanceForm.Run(src)
	require.Empty(t, fieldErrs)
	require.NotNil(t, values.Date("due_back"))
	require.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *values.Date("due_back"))

	src.Set("due_back", "")
	values, fieldErrs = form.BookInstanceForm.Run(src)
	require.Empty(t, fieldErrs)
	require.Nil(t, values.Date("due_back"))
}
