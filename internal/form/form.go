// Package form applies ordered per-field validation and sanitization rules
// to submitted values. Validation failures are accumulated across all fields;
// sanitization always runs, so a redisplayed form shows sanitized values even
// when the submission was rejected. The pipeline never persists or redirects.
package form

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Field is one row of a form's rule table. Rules are validator var-tags,
// evaluated after trimming so that whitespace-only input fails "required".
type Field struct {
	Name   string
	Rules  string
	Escape bool // html-escape after validation
	Date   bool // coerce to time.Time (yyyy-mm-dd)
	List   bool // absent or scalar input is coerced to a list first
}

type Form struct {
	fields []Field
}

func New(fields ...Field) *Form {
	return &Form{fields: fields}
}

var validate = validator.New()

// Values holds the sanitized output of a pipeline run.
type Values struct {
	strs  map[string]string
	lists map[string][]string
	dates map[string]*time.Time
}

func (v Values) Get(name string) string {
	return v.strs[name]
}

func (v Values) List(name string) []string {
	if l, ok := v.lists[name]; ok {
		return l
	}
	return []string{}
}

func (v Values) Date(name string) *time.Time {
	return v.dates[name]
}

// Run executes the rule table against raw form values.
func (f *Form) Run(src url.Values) (Values, []FieldError) {
	out := Values{
		strs:  make(map[string]string),
		lists: make(map[string][]string),
		dates: make(map[string]*time.Time),
	}
	var fieldErrs []FieldError

	for _, fd := range f.fields {
		if fd.List {
			vals := src[fd.Name]
			list := make([]string, 0, len(vals))
			for _, raw := range vals {
				val := strings.TrimSpace(raw)
				if msg, ok := check(val, fd.Rules); !ok {
					fieldErrs = append(fieldErrs, FieldError{Field: fd.Name, Message: msg})
				}
				if fd.Escape {
					val = html.EscapeString(val)
				}
				list = append(list, val)
			}
			out.lists[fd.Name] = list
			continue
		}

		val := strings.TrimSpace(src.Get(fd.Name))
		if msg, ok := check(val, fd.Rules); !ok {
			fieldErrs = append(fieldErrs, FieldError{Field: fd.Name, Message: msg})
		}
		if fd.Escape {
			val = html.EscapeString(val)
		}
		out.strs[fd.Name] = val
		if fd.Date {
			if date, err := time.Parse(time.DateOnly, val); err == nil {
				out.dates[fd.Name] = &date
			}
		}
	}

	return out, fieldErrs
}

func check(val, rules string) (string, bool) {
	if rules == "" {
		return "", true
	}
	err := validate.Var(val, rules)
	if err == nil {
		return "", true
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "invalid value", false
	}
	return message(verrs[0].Tag(), verrs[0].Param()), false
}

func message(tag, param string) string {
	switch tag {
	case "required":
		return "must not be empty"
	case "alphanum":
		return "must contain only letters and numbers"
	case "min":
		return fmt.Sprintf("must be at least %s characters", param)
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "datetime":
		return "must be a valid yyyy-mm-dd date"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", param)
	default:
		return "invalid value"
	}
}
