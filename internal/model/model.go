package model

import (
	"time"
)

// Status is the circulation state of a book copy.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

var Statuses = []Status{StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved:
		return true
	}
	return false
}

type Author struct {
	ID          string     `json:"id" db:"author_id"`
	FirstName   string     `json:"firstName" db:"first_name"`
	FamilyName  string     `json:"familyName" db:"family_name"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	DateOfDeath *time.Time `json:"dateOfDeath,omitempty" db:"date_of_death"`
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID
}

func (a Author) Name() string {
	if a.FirstName == "" && a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan renders "1920 - 1992", with either side blank when unknown.
func (a Author) Lifespan() string {
	var birth, death string
	if a.DateOfBirth != nil {
		birth = a.DateOfBirth.Format("2006")
	}
	if a.DateOfDeath != nil {
		death = a.DateOfDeath.Format("2006")
	}
	if birth == "" && death == "" {
		return ""
	}
	return birth + " - " + death
}

type Genre struct {
	ID   string `json:"id" db:"genre_id"`
	Name string `json:"name" db:"name"`
}

func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID
}

type Book struct {
	ID       string `json:"id" db:"book_id"`
	Title    string `json:"title" db:"title"`
	Summary  string `json:"summary" db:"summary"`
	ISBN     string `json:"isbn" db:"isbn"`
	AuthorID string `json:"authorID" db:"author_id"`
}

func (b Book) URL() string {
	return "/catalog/book/" + b.ID
}

// BookSummary is the title+summary projection used on author pages.
type BookSummary struct {
	ID      string `json:"id" db:"book_id"`
	Title   string `json:"title" db:"title"`
	Summary string `json:"summary" db:"summary"`
}

func (b BookSummary) URL() string {
	return "/catalog/book/" + b.ID
}

// BookListItem carries the populated author name for the book list.
type BookListItem struct {
	ID         string `json:"id" db:"book_id"`
	Title      string `json:"title" db:"title"`
	AuthorName string `json:"authorName" db:"author_name"`
}

func (b BookListItem) URL() string {
	return "/catalog/book/" + b.ID
}

type BookInstance struct {
	ID      string    `json:"id" db:"book_instance_id"`
	BookID  string    `json:"bookID" db:"book_id"`
	Imprint string    `json:"imprint" db:"imprint"`
	Status  Status    `json:"status" db:"status"`
	DueBack time.Time `json:"dueBack" db:"due_back"`
}

func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID
}

// DueBackFormatted is the long-form rendering shown on detail pages.
func (bi BookInstance) DueBackFormatted() string {
	if bi.DueBack.IsZero() {
		return ""
	}
	return bi.DueBack.Format("January 2, 2006")
}

// DueBackInput is the yyyy-mm-dd rendering used to prefill date inputs.
func (bi BookInstance) DueBackInput() string {
	if bi.DueBack.IsZero() {
		return ""
	}
	return bi.DueBack.Format(time.DateOnly)
}

// BookInstanceListItem carries the populated book title for the copy list.
type BookInstanceListItem struct {
	BookInstance
	BookTitle string `json:"bookTitle" db:"book_title"`
}

type AuthorDetail struct {
	Author Author        `json:"author"`
	Books  []BookSummary `json:"books"`
}

// AuthorDeleteView carries full book records, unlike the detail projection.
type AuthorDeleteView struct {
	Author Author `json:"author"`
	Books  []Book `json:"books"`
}

type GenreDetail struct {
	Genre Genre  `json:"genre"`
	Books []Book `json:"books"`
}

type BookDetail struct {
	Book      Book           `json:"book"`
	Author    Author         `json:"author"`
	Genres    []Genre        `json:"genres"`
	Instances []BookInstance `json:"instances"`
}

type BookInstanceDetail struct {
	Instance BookInstance `json:"instance"`
	Book     Book         `json:"book"`
}

// BookFormData is the selection data for book create/update forms.
type BookFormData struct {
	Authors []Author `json:"authors"`
	Genres  []Genre  `json:"genres"`
}

type BookUpdateView struct {
	Detail BookDetail   `json:"detail"`
	Form   BookFormData `json:"form"`
}

type BookInstanceUpdateView struct {
	Instance BookInstance   `json:"instance"`
	Books    []BookListItem `json:"books"`
}

type IndexCounts struct {
	Books              int `json:"books"`
	BookInstances      int `json:"bookInstances"`
	AvailableInstances int `json:"availableInstances"`
	Authors            int `json:"authors"`
	Genres             int `json:"genres"`
}

type AuthorInput struct {
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

type GenreInput struct {
	Name string
}

type BookInput struct {
	Title    string
	Summary  string
	ISBN     string
	AuthorID string
	GenreIDs []string
}

type BookInstanceInput struct {
	BookID  string
	Imprint string
	Status  Status
	DueBack *time.Time
}

// CatalogEvent is published after every successful write.
type CatalogEvent struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Action string `json:"action"`
}
