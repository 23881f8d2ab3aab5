package screens

import (
	"context"
	"strconv"
	"strings"

	"github.com/openshelf/librarium/internal/domain"
	lberrors "github.com/openshelf/librarium/internal/errors"
	"github.com/openshelf/librarium/internal/errors/i18n"
	"github.com/openshelf/librarium/internal/guard"
)

// renderCatalog pages through the catalog until the user navigates away.
func (s *Shell) renderCatalog(ctx context.Context) (string, error) {
	page := 1
	for {
		result, err := s.gateway.BooksPage(ctx, page)
		if err != nil {
			s.fail(err)
			// Stepping back only helps when the page itself does not
			// exist; retrying a network failure on an earlier page
			// would just loop.
			if lberrors.IsNotFound(err) && page > 1 {
				page--
				continue
			}
			result = domain.BookPage{TotalPages: 1}
		}

		s.printf("\n-- %s --\n", s.text(i18n.UICatalogTitle))
		if len(result.Items) == 0 {
			s.printf("%s\n", s.text(i18n.UICatalogEmpty))
		}
		for i, book := range result.Items {
			s.printf("%2d. %s (%s)\n    %s\n", i+1, book.Name, book.ISBN, domain.AuthorLine(book.Authors))
		}
		s.printf("%s\n", s.format(i18n.UICatalogPage, map[string]string{
			"Page":  strconv.Itoa(page),
			"Total": strconv.Itoa(result.TotalPages),
		}))

		line, err := s.promptLine("catalog> ")
		if err != nil {
			return "", err
		}
		verb, arg := splitCommand(line)

		switch verb {
		case "", "help":
			s.printf("commands: next, prev, page <n>, open <isbn>, search <title>, filter <genre> [author], my, add, refresh, logout, quit\n")
		case "next", "n":
			if page < result.TotalPages {
				page++
			}
		case "prev", "p":
			if page > 1 {
				page--
			}
		case "page":
			if n, convErr := strconv.Atoi(arg); convErr == nil && n > 0 {
				page = n
			}
		case "open", "o":
			if arg != "" {
				return s.Navigate("/book/" + arg), nil
			}
		case "search", "s":
			s.searchCatalog(ctx, arg)
		case "filter", "f":
			genre, author := splitCommand(arg)
			s.filterCatalog(ctx, genre, author)
		case "my":
			return s.Navigate(guard.RouteMyBooks), nil
		case "refresh":
			s.refreshTokens(ctx)
		case "add":
			return s.Navigate(guard.RouteBookNew), nil
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

func (s *Shell) searchCatalog(ctx context.Context, title string) {
	if strings.TrimSpace(title) == "" {
		return
	}
	books, err := s.gateway.SearchBooks(ctx, title)
	if err != nil {
		s.fail(err)
		return
	}
	s.listBooks(books)
}

func (s *Shell) filterCatalog(ctx context.Context, genre, author string) {
	books, err := s.gateway.FilterBooks(ctx, genre, author)
	if err != nil {
		s.fail(err)
		return
	}
	s.listBooks(books)
}

func (s *Shell) listBooks(books []domain.Book) {
	if len(books) == 0 {
		s.printf("%s\n", s.text(i18n.UICatalogEmpty))
		return
	}
	for i, book := range books {
		s.printf("%2d. %s (%s)\n    %s\n", i+1, book.Name, book.ISBN, domain.AuthorLine(book.Authors))
	}
}

// splitCommand separates the first word from the remainder.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return strings.ToLower(parts[0]), ""
	}
	return strings.ToLower(parts[0]), strings.TrimSpace(parts[1])
}
