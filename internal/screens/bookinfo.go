package screens

import (
	"context"
	"time"

	"github.com/openshelf/librarium/internal/domain"
	lberrors "github.com/openshelf/librarium/internal/errors"
	"github.com/openshelf/librarium/internal/errors/i18n"
	"github.com/openshelf/librarium/internal/guard"
	"github.com/openshelf/librarium/internal/platform/assets"
)

// renderBookInfo shows one book and its member and admin actions.
func (s *Shell) renderBookInfo(ctx context.Context, isbn string) (string, error) {
	book, err := s.gateway.BookInfo(ctx, isbn)
	if err != nil {
		s.fail(err)
		return guard.RouteCatalog, nil
	}

	for {
		s.printf("\n-- %s --\n", book.Name)
		s.printf("%s: %s\n", s.text(i18n.UIAuthor), domain.AuthorLine(book.Authors))
		if book.Genre != "" {
			s.printf("%s: %s\n", s.text(i18n.UIGenre), book.Genre)
		}
		if book.Description != "" {
			s.printf("%s: %s\n", s.text(i18n.UIDescription), book.Description)
		}
		s.printf("ISBN: %s\n", book.ISBN)
		s.printf("%s\n", s.stockLabel(book.StockStatus))
		s.printf("Cover: %s\n", s.coverFor(book))

		line, err := s.promptLine("book> ")
		if err != nil {
			return "", err
		}
		verb, arg := splitCommand(line)

		switch verb {
		case "", "help":
			s.printf("commands: take, edit, delete, back, go <path>, logout, quit\n")
		case "take", "t":
			s.takeBook(ctx, book)
		case "edit", "e":
			return s.Navigate("/book/edit/" + book.ID), nil
		case "delete", "d":
			if next, ok := s.deleteBook(ctx, book); ok {
				return next, nil
			}
		case "back", "b":
			return guard.RouteCatalog, nil
		case "go":
			return s.Navigate(arg), nil
		case "logout":
			return s.logout(ctx), nil
		case "quit", "q", "exit":
			return "", errQuit
		default:
			s.printf("unknown command %q\n", verb)
		}
	}
}

// coverFor resolves the book's image against the remote origin, falling
// back to the bundled placeholder.
func (s *Shell) coverFor(book domain.Book) string {
	if resolved := s.gateway.ResolveImageURL(book.ImageURL); resolved != "" {
		return resolved
	}
	return assets.PlaceholderCoverName
}

func (s *Shell) stockLabel(status domain.StockStatus) string {
	switch status {
	case domain.StockLastCopy:
		return s.text(i18n.UIStockLastCopy)
	case domain.StockOutOfStock:
		return s.text(i18n.UIStockOutOfStock)
	default:
		return s.text(i18n.UIStockInStock)
	}
}

// takeBook loans the book to the signed-in user and refreshes the
// session's user record so the new loan shows up immediately.
func (s *Shell) takeBook(ctx context.Context, book domain.Book) {
	user := s.session.User()
	if err := s.gateway.TakeBook(ctx, book.ID, user.ID); err != nil {
		s.fail(err)
		return
	}

	refreshed, err := s.gateway.User(ctx, user.ID)
	if err != nil {
		s.fail(err)
		return
	}
	if err := s.session.UpdateUser(ctx, refreshed); err != nil {
		s.fail(err)
		return
	}

	returnDate := ""
	for _, loan := range refreshed.ActiveLoans() {
		if loan.Book.ID == book.ID || loan.BookID == book.ID {
			returnDate = loan.ReturnDate.Format(time.DateOnly)
		}
	}
	s.printf("%s\n", s.format(i18n.UIBookTaken, map[string]string{"ReturnDate": returnDate}))
}

// deleteBook removes the book after the admin confirms. The second
// return value reports whether the screen should navigate away.
func (s *Shell) deleteBook(ctx context.Context, book domain.Book) (string, bool) {
	if s.state() != guard.Admin {
		s.fail(lberrors.New(lberrors.CodeAccessDenied, "deleting books requires the admin role"))
		return "", false
	}

	confirm, err := s.promptLine("Delete " + book.Name + "? (yes/no): ")
	if err != nil || confirm != "yes" {
		return "", false
	}
	if err := s.gateway.DeleteBook(ctx, book.ID); err != nil {
		s.fail(err)
		return "", false
	}
	s.printf("%s\n", s.text(i18n.UIBookDeleted))
	return guard.RouteCatalog, true
}
