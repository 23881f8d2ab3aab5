package screens

import (
	"context"
	"strconv"
	"time"

	"github.com/openshelf/librarium/internal/domain"
	"github.com/openshelf/librarium/internal/errors/i18n"
	"github.com/openshelf/librarium/internal/guard"
)

// renderLoans shows the user's active loans and archive.
func (s *Shell) renderLoans(ctx context.Context) (string, error) {
	for {
		user := s.session.User()
		active := user.ActiveLoans()
		archived := user.ArchivedLoans()

		s.printf("\n-- %s --\n", s.text(i18n.UIMyBooks))
		if len(active) == 0 {
			s.printf("%s\n", s.text(i18n.UINoActiveBooks))
		}
		for i, loan := range active {
			s.printLoan(i+1, loan)
		}

		s.printf("\n-- %s --\n", s.text(i18n.UIArchive))
		if len(archived) == 0 {
			s.printf("%s\n", s.text(i18n.UINoArchivedBooks))
		}
		for i, loan := range archived {
			s.printLoan(i+1, loan)
		}

		line, err := s.promptLine("my-books> ")
		if err != nil {
			return "", err
		}
		verb, arg := splitCommand(line)

		switch verb {
		case "", "help":
			s.printf("commands: return <n>, open <isbn>, books, go <path>, logout, quit\n")
		case "return", "r":
			s.returnLoan(ctx, active, arg)
		case "open", "o":
			if arg != "" {
				return s.Navigate("/book/" + arg), nil
			}
		case "books":
			return s.Navigate(guard.RouteCatalog), nil
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

func (s *Shell) printLoan(index int, loan domain.UserLoan) {
	s.printf("%2d. %s (%s)\n", index, loan.Book.Name, loan.Book.ISBN)
	if !loan.DateTaken.IsZero() {
		s.printf("    %s: %s\n", s.text(i18n.UIDateTaken), loan.DateTaken.Format(time.DateOnly))
	}
	if !loan.ReturnDate.IsZero() {
		s.printf("    %s: %s\n", s.text(i18n.UIReturnDate), loan.ReturnDate.Format(time.DateOnly))
	}
	status := s.text(i18n.UILoanNotReturned)
	if loan.Status == domain.LoanReturned {
		status = s.text(i18n.UILoanReturned)
	}
	s.printf("    %s: %s\n", s.text(i18n.UILoanStatus), status)
}

// returnLoan closes the selected active loan and flips its status in the
// session copy, so the archive updates without a refetch.
func (s *Shell) returnLoan(ctx context.Context, active []domain.UserLoan, arg string) {
	loan, ok := pickLoan(active, arg)
	if !ok {
		s.printf("unknown loan %q\n", arg)
		return
	}

	user := s.session.User()
	if err := s.gateway.ReturnBook(ctx, loan.Book.ID, user.ID); err != nil {
		s.fail(err)
		return
	}

	if user.MarkReturned(loan.Book.ID) {
		if err := s.session.UpdateUser(ctx, user); err != nil {
			s.fail(err)
			return
		}
	}
	s.printf("%s\n", s.text(i18n.UIBookReturned))
}

// pickLoan resolves a 1-based index, book id or ISBN to an active loan.
func pickLoan(active []domain.UserLoan, arg string) (domain.UserLoan, bool) {
	if arg == "" {
		return domain.UserLoan{}, false
	}
	for i, loan := range active {
		if arg == loan.Book.ID || arg == loan.Book.ISBN || arg == loan.BookID {
			return loan, true
		}
		if n, err := strconv.Atoi(arg); err == nil && n == i+1 {
			return loan, true
		}
	}
	return domain.UserLoan{}, false
}
