package domain

import "strings"

// StockStatus describes how many copies of a book the library still holds.
type StockStatus int

const (
	// StockInStock indicates several copies are available.
	StockInStock StockStatus = iota
	// StockLastCopy indicates exactly one copy remains.
	StockLastCopy
	// StockOutOfStock indicates no copies remain.
	StockOutOfStock
)

// Author identifies a book author.
type Author struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// FullName returns the author's display name.
func (a Author) FullName() string {
	return strings.TrimSpace(a.Name + " " + a.Surname)
}

// Genre identifies a book genre.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Book is the full catalog record for one title.
type Book struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ISBN        string      `json:"isbn"`
	Description string      `json:"description"`
	GenreID     string      `json:"genreId"`
	Genre       string      `json:"genre"`
	Count       int         `json:"count"`
	Authors     []Author    `json:"authors"`
	ImageURL    string      `json:"imageURL"`
	StockStatus StockStatus `json:"bookStockStatus"`
}

// BookSummary is the denormalized book shape embedded in loan records.
type BookSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	ISBN    string   `json:"isbn"`
	Authors []Author `json:"authors"`
}

// AuthorLine joins all author display names for list rendering.
func AuthorLine(authors []Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.FullName())
	}
	return strings.Join(names, ", ")
}

// BookPage is one page of the catalog listing.
type BookPage struct {
	Items      []Book `json:"items"`
	TotalPages int    `json:"totalPages"`
}

// AddBookRequest is the payload for creating a book.
type AddBookRequest struct {
	Name        string   `json:"name"`
	ISBN        string   `json:"isbn"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageURL"`
	GenreID     string   `json:"genreId"`
	Count       int      `json:"count"`
	AuthorIDs   []string `json:"authorIds"`
}

// UpdateBookRequest is the payload for updating an existing book.
type UpdateBookRequest struct {
	Name        string   `json:"name"`
	ISBN        string   `json:"isbn"`
	Description string   `json:"description"`
	GenreID     string   `json:"genreId"`
	Count       int      `json:"count"`
	Authors     []Author `json:"authors"`
}
