package screens

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/openshelf/librarium/internal/domain"
	"github.com/openshelf/librarium/internal/errors/i18n"
	"github.com/openshelf/librarium/internal/guard"
)

// renderEditor runs the admin book form. An empty id creates a new book,
// otherwise the existing record is loaded and edited.
func (s *Shell) renderEditor(ctx context.Context, id string) (string, error) {
	authors, err := s.gateway.Authors(ctx)
	if err != nil {
		s.fail(err)
		return guard.RouteCatalog, nil
	}
	genres, err := s.gateway.Genres(ctx)
	if err != nil {
		s.fail(err)
		return guard.RouteCatalog, nil
	}

	draft := BookDraft{Count: 1}
	var original BookDraft
	if id != "" {
		book, err := s.gateway.Book(ctx, id)
		if err != nil {
			s.fail(err)
			return guard.RouteCatalog, nil
		}
		draft = draftFrom(book)
		original = draft
		s.printf("\n-- %s --\n", s.text(i18n.UIEditorTitleEdit))
	} else {
		s.printf("\n-- %s --\n", s.text(i18n.UIEditorTitleNew))
	}

	s.printf("%s:\n", s.text(i18n.UIGenre))
	for _, genre := range genres {
		s.printf("  %s - %s\n", genre.ID, genre.Name)
	}
	s.printf("%s:\n", s.text(i18n.UIAuthor))
	for _, author := range authors {
		s.printf("  %s - %s\n", author.ID, author.FullName())
	}

	if err := s.fillDraft(&draft); err != nil {
		return "", err
	}
	if err := draft.Validate(); err != nil {
		s.fail(err)
		if id != "" {
			return s.Navigate("/book/edit/" + id), nil
		}
		return guard.RouteBookNew, nil
	}

	if id == "" {
		return s.submitAdd(ctx, draft)
	}
	return s.submitUpdate(ctx, id, draft, original, authors)
}

// fillDraft prompts for each field, keeping the current value when the
// user enters nothing.
func (s *Shell) fillDraft(draft *BookDraft) error {
	var err error
	if draft.Name, err = s.promptDefault("Title", draft.Name); err != nil {
		return err
	}
	if draft.ISBN, err = s.promptDefault("ISBN", draft.ISBN); err != nil {
		return err
	}
	if draft.Description, err = s.promptDefault("Description", draft.Description); err != nil {
		return err
	}
	if draft.GenreID, err = s.promptDefault("Genre id", draft.GenreID); err != nil {
		return err
	}

	count, err := s.promptDefault("Copies", strconv.Itoa(draft.Count))
	if err != nil {
		return err
	}
	if n, convErr := strconv.Atoi(count); convErr == nil {
		draft.Count = n
	} else {
		draft.Count = 0
	}

	authorLine, err := s.promptDefault("Author ids (comma separated)", strings.Join(draft.AuthorIDs, ","))
	if err != nil {
		return err
	}
	draft.AuthorIDs = splitIDs(authorLine)

	return nil
}

func (s *Shell) promptDefault(label, current string) (string, error) {
	prompt := label + ": "
	if current != "" {
		prompt = label + " [" + current + "]: "
	}
	line, err := s.promptLine(prompt)
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}
	return line, nil
}

func (s *Shell) submitAdd(ctx context.Context, draft BookDraft) (string, error) {
	imageURL, err := s.promptDefault("Image URL (optional)", draft.ImageURL)
	if err != nil {
		return "", err
	}
	draft.ImageURL = imageURL

	req := domain.AddBookRequest{
		Name:        draft.Name,
		ISBN:        draft.ISBN,
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		GenreID:     draft.GenreID,
		Count:       draft.Count,
		AuthorIDs:   draft.AuthorIDs,
	}
	if err := s.gateway.AddBook(ctx, req); err != nil {
		s.fail(err)
		return guard.RouteBookNew, nil
	}
	s.printf("%s\n", s.text(i18n.UIBookAdded))
	return guard.RouteCatalog, nil
}

func (s *Shell) submitUpdate(ctx context.Context, id string, draft, original BookDraft, authors []domain.Author) (string, error) {
	if draftEqual(draft, original) {
		s.printf("%s\n", s.text(i18n.UINoChanges))
		return guard.RouteCatalog, nil
	}

	req := domain.UpdateBookRequest{
		Name:        draft.Name,
		ISBN:        draft.ISBN,
		Description: draft.Description,
		GenreID:     draft.GenreID,
		Count:       draft.Count,
		Authors:     resolveAuthors(draft.AuthorIDs, authors),
	}
	if err := s.gateway.UpdateBook(ctx, id, req); err != nil {
		s.fail(err)
		return s.Navigate("/book/edit/" + id), nil
	}
	s.printf("%s\n", s.text(i18n.UIBookUpdated))

	if err := s.offerImageUpload(ctx, id); err != nil {
		return "", err
	}
	return guard.RouteCatalog, nil
}

// offerImageUpload optionally uploads a local cover file and attaches it
// to the book.
func (s *Shell) offerImageUpload(ctx context.Context, id string) error {
	path, err := s.promptLine("Cover file to upload (blank to skip): ")
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		s.fail(err)
		return nil
	}
	defer file.Close()

	ref, err := s.gateway.UploadImage(ctx, filepath.Base(path), file)
	if err != nil {
		s.fail(err)
		return nil
	}
	if err := s.gateway.AddBookImage(ctx, id, ref); err != nil {
		s.fail(err)
		return nil
	}
	return nil
}

func draftFrom(book domain.Book) BookDraft {
	ids := make([]string, 0, len(book.Authors))
	for _, author := range book.Authors {
		ids = append(ids, author.ID)
	}
	return BookDraft{
		Name:        book.Name,
		ISBN:        book.ISBN,
		Description: book.Description,
		GenreID:     book.GenreID,
		Count:       book.Count,
		AuthorIDs:   ids,
		ImageURL:    book.ImageURL,
	}
}

func draftEqual(a, b BookDraft) bool {
	if a.Name != b.Name || a.ISBN != b.ISBN || a.Description != b.Description ||
		a.GenreID != b.GenreID || a.Count != b.Count || a.ImageURL != b.ImageURL {
		return false
	}
	if len(a.AuthorIDs) != len(b.AuthorIDs) {
		return false
	}
	for i := range a.AuthorIDs {
		if a.AuthorIDs[i] != b.AuthorIDs[i] {
			return false
		}
	}
	return true
}

// resolveAuthors maps selected ids back to full author records, the
// shape the update endpoint expects.
func resolveAuthors(ids []string, authors []domain.Author) []domain.Author {
	resolved := make([]domain.Author, 0, len(ids))
	for _, id := range ids {
		for _, author := range authors {
			if author.ID == id {
				resolved = append(resolved, author)
				break
			}
		}
	}
	return resolved
}

func splitIDs(line string) []string {
	parts := strings.Split(line, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
