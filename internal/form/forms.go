package form

// Rule tables for the four catalog forms. Order matters only for the order
// errors are reported in.

var AuthorForm = New(
	Field{Name: "first_name", Rules: "required,alphanum", Escape: true},
	Field{Name: "family_name", Rules: "required,alphanum", Escape: true},
	Field{Name: "date_of_birth", Rules: "omitempty,datetime=2006-01-02", Date: true},
	Field{Name: "date_of_death", Rules: "omitempty,datetime=2006-01-02", Date: true},
)

var GenreForm = New(
	Field{Name: "name", Rules: "required,min=3,max=100", Escape: true},
)

var BookForm = New(
	Field{Name: "title", Rules: "required", Escape: true},
	Field{Name: "author", Rules: "required", Escape: true},
	Field{Name: "summary", Rules: "required", Escape: true},
	Field{Name: "isbn", Rules: "required", Escape: true},
	Field{Name: "genre", Rules: "required", Escape: true, List: true},
)

var BookInstanceForm = New(
	Field{Name: "book", Rules: "required", Escape: true},
	Field{Name: "imprint", Rules: "required", Escape: true},
	Field{Name: "status", Rules: "omitempty,oneof=Available Maintenance Loaned Reserved", Escape: true},
	Field{Name: "due_back", Rules: "omitempty,datetime=2006-01-02", Date: true},
)
