package shell

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/bookshelf/cmd/bookshelf/book"
	"github.com/spf13/cobra"
)

type BookHandler struct {
	bookService book.ServiceAPI
	logger      *slog.Logger
}

func NewBookHandler(bookService book.ServiceAPI, logger *slog.Logger) *BookHandler {
	return &BookHandler{bookService: bookService, logger: logger}
}

type BookEntry struct {
	Title     string
	Author    string
	Pages     string
	BookCount string
	Price     string
}

func (h *BookHandler) commands(opts *Options) []*cobra.Command {
	return []*cobra.Command{
		h.listCommand(opts),
		h.showCommand(opts),
		h.createCommand(opts),
		h.updateCommand(opts),
		h.deleteCommand(opts),
	}
}

func (h *BookHandler) listCommand(opts *Options) *cobra.Command {
	var sortBy, direction string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.listBooks(cmd, opts, sortBy, direction)
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort-by", book.DefaultSort.Field, "field to sort by: id, title, author, pages, bookcount or price")
	cmd.Flags().StringVar(&direction, "direction", string(book.DefaultSort.Direction), "ascending or descending")
	return cmd
}

func (h *BookHandler) showCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.getBookById(cmd, opts, args[0])
		},
	}
}

func (h *BookHandler) createCommand(opts *Options) *cobra.Command {
	var entry BookEntry
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a book, the id is assigned automatically",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.createBook(cmd, opts, entry)
		},
	}
	bindEntryFlags(cmd, &entry)
	return cmd
}

func (h *BookHandler) updateCommand(opts *Options) *cobra.Command {
	var entry BookEntry
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace every field of a book but its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.updateBook(cmd, opts, args[0], entry)
		},
	}
	bindEntryFlags(cmd, &entry)
	return cmd
}

func (h *BookHandler) deleteCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.deleteBook(cmd, opts, args[0])
		},
	}
}

func bindEntryFlags(cmd *cobra.Command, entry *BookEntry) {
	cmd.Flags().StringVar(&entry.Title, "title", "", "book title")
	cmd.Flags().StringVar(&entry.Author, "author", "", "book author")
	cmd.Flags().StringVar(&entry.Pages, "pages", "", "number of pages")
	cmd.Flags().StringVar(&entry.BookCount, "bookcount", "", "copies available")
	cmd.Flags().StringVar(&entry.Price, "price", "", "price, e.g. Rs.2800")
}

/* Returns the stored books in the requested order. */
func (h *BookHandler) listBooks(cmd *cobra.Command, opts *Options, sortBy, direction string) error {
	sort, valid := extractOrderParams(sortBy, direction)
	if !valid {
		return book.ErrResponseSortDirectionInvalid
	}

	books, err := h.bookService.ListBooks(cmd.Context(), sort)
	if err != nil {
		h.logUnexpected(cmd, err)
		return err
	}
	return renderBooks(cmd.OutOrStdout(), opts.Format, books)
}

/* Returns the book with that specific ID. */
func (h *BookHandler) getBookById(cmd *cobra.Command, opts *Options, rawID string) error {
	id, err := isolateId(rawID)
	if err != nil {
		return err
	}

	returnedBook, err := h.bookService.GetBook(cmd.Context(), id)
	if err != nil {
		h.logUnexpected(cmd, err)
		return err
	}
	return renderBook(cmd.OutOrStdout(), opts.Format, returnedBook)
}

/* Validates the entry, then stores the entry as a new book. */
func (h *BookHandler) createBook(cmd *cobra.Command, opts *Options, entry BookEntry) error {
	err := FilledFields(entry) //Verify if all entry fields are filled.
	if err != nil {
		return err
	}

	storedBook, err := h.bookService.CreateBook(cmd.Context(), bookToCreateReq(entry))
	if err != nil {
		h.logUnexpected(cmd, err)
		return err
	}
	return renderBook(cmd.OutOrStdout(), opts.Format, storedBook)
}

/* Validates the entry, then updates the asked book. */
func (h *BookHandler) updateBook(cmd *cobra.Command, opts *Options, rawID string, entry BookEntry) error {
	id, err := isolateId(rawID)
	if err != nil {
		return err
	}

	err = FilledFields(entry)
	if err != nil {
		return err
	}

	updatedBook, err := h.bookService.UpdateBook(cmd.Context(), bookToUpdateReq(entry, id))
	if err != nil {
		h.logUnexpected(cmd, err)
		return err
	}
	return renderBook(cmd.OutOrStdout(), opts.Format, updatedBook)
}

/* Removes the book and shows it as it was. */
func (h *BookHandler) deleteBook(cmd *cobra.Command, opts *Options, rawID string) error {
	id, err := isolateId(rawID)
	if err != nil {
		return err
	}

	deletedBook, err := h.bookService.DeleteBook(cmd.Context(), id)
	if err != nil {
		h.logUnexpected(cmd, err)
		return err
	}
	return renderBook(cmd.OutOrStdout(), opts.Format, deletedBook)
}

// Coded errors are expected answers and are only rendered.
func (h *BookHandler) logUnexpected(cmd *cobra.Command, err error) {
	var errR book.ErrResponse
	if errors.As(err, &errR) {
		return
	}
	h.logger.ErrorContext(cmd.Context(), "command failed", "command", cmd.Name(), "error", err)
}

/* Verifies if all entry fields are filled and returns a warning message if so. */
func FilledFields(entry BookEntry) error {
	if entry.Title == "" {
		return book.ErrResponseBookEntryBlankFields
	}
	if entry.Author == "" {
		return book.ErrResponseBookEntryBlankFields
	}
	if entry.Pages == "" {
		return book.ErrResponseBookEntryBlankFields
	}
	if entry.BookCount == "" {
		return book.ErrResponseBookEntryBlankFields
	}
	if entry.Price == "" {
		return book.ErrResponseBookEntryBlankFields
	}

	return nil
}

func bookToCreateReq(e BookEntry) book.CreateBookRequest {
	return book.CreateBookRequest{
		Title:     e.Title,
		Author:    e.Author,
		Pages:     e.Pages,
		BookCount: e.BookCount,
		Price:     e.Price,
	}
}

func bookToUpdateReq(e BookEntry, id int) book.UpdateBookRequest {
	return book.UpdateBookRequest{
		ID:        id,
		Title:     e.Title,
		Author:    e.Author,
		Pages:     e.Pages,
		BookCount: e.BookCount,
		Price:     e.Price,
	}
}

/* Parses a book ID, which must be a positive integer. */
func isolateId(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, book.ErrResponseIdInvalidFormat
	}
	return id, nil
}

/*
Validates and prepares the ordering parameters. The field is passed through as is: an unknown
field lists the books in insertion order.
*/
func extractOrderParams(sortBy, direction string) (sort book.SortSpec, valid bool) {
	switch direction {
	case "", "asc":
		direction = string(book.Ascending)
	case "desc":
		direction = string(book.Descending)
	}
	sort.Direction = book.Direction(direction)
	if !sort.Direction.Valid() {
		return sort, false
	}

	sort.Field = sortBy
	if sort.Field == "" {
		sort.Field = book.DefaultSort.Field
	}
	return sort, true
}
