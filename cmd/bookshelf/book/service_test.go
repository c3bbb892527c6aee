package book_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/bookshelf/cmd/bookshelf/book"
	bookmock "github.com/bookshelf/cmd/bookshelf/book/mocks"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

var ctx context.Context = context.Background()

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestListBooks(t *testing.T) {

	t.Run("lists books with the requested order", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		sort := book.SortSpec{Field: "author", Direction: book.Descending}
		mockRepo.EXPECT().ListBooks(gomock.Any(), sort).Return(book.DefaultSeed(), nil)

		books, err := mS.ListBooks(ctx, sort)
		is.NoErr(err)
		is.Equal(books, book.DefaultSeed())
	})

	t.Run("fills an empty request with the default order", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		mockRepo.EXPECT().ListBooks(gomock.Any(), book.DefaultSort).Return([]book.Book{}, nil)

		_, err := mS.ListBooks(ctx, book.SortSpec{})
		is.NoErr(err)
	})

	t.Run("passes an unknown field through", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		sort := book.SortSpec{Field: "publisher", Direction: book.Ascending}
		mockRepo.EXPECT().ListBooks(gomock.Any(), sort).Return([]book.Book{}, nil)

		_, err := mS.ListBooks(ctx, sort)
		is.NoErr(err)
	})

	t.Run("expected sort direction error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		_, err := mS.ListBooks(ctx, book.SortSpec{Field: "id", Direction: "sideways"})
		is.True(errors.Is(err, book.ErrResponseSortDirectionInvalid))
	})
}

func TestCreateBook(t *testing.T) {

	t.Run("creates a book without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		reqBook := book.CreateBookRequest{
			Title:     "Service tester book",
			Author:    "Tester",
			Pages:     "100",
			BookCount: "9",
			Price:     "Rs.100",
		}

		mockRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, b book.Book) (book.Book, error) {
			is.Equal(b.ID, 0)
			is.Equal(b.Title, reqBook.Title)
			is.Equal(b.Author, reqBook.Author)
			is.Equal(b.Pages, reqBook.Pages)
			is.Equal(b.BookCount, reqBook.BookCount)
			is.Equal(b.Price, reqBook.Price)
			b.ID = 6
			return b, nil
		})

		createdBook, err := mS.CreateBook(ctx, reqBook)
		is.NoErr(err)
		is.Equal(createdBook.ID, 6)
		is.Equal(createdBook.Title, reqBook.Title)
	})
}

func TestUpdateBook(t *testing.T) {

	t.Run("updates a book without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		reqBook := book.UpdateBookRequest{
			ID:        2,
			Title:     "X",
			Author:    "Y",
			Pages:     "1",
			BookCount: "1",
			Price:     "Rs.1",
		}
		expected := book.Book{ID: 2, Title: "X", Author: "Y", Pages: "1", BookCount: "1", Price: "Rs.1"}

		mockRepo.EXPECT().UpdateBook(gomock.Any(), expected).Return(expected, nil)

		updatedBook, err := mS.UpdateBook(ctx, reqBook)
		is.NoErr(err)
		is.Equal(updatedBook, expected)
	})

	t.Run("expected not found error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		mockRepo.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).Return(book.Book{}, book.ErrResponseBookNotFound)

		_, err := mS.UpdateBook(ctx, book.UpdateBookRequest{ID: 42, Title: "X"})
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})
}

func TestDeleteBook(t *testing.T) {

	t.Run("deletes a book without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		removed := book.DefaultSeed()[2]
		mockRepo.EXPECT().DeleteBook(gomock.Any(), 3).Return(removed, nil)

		deletedBook, err := mS.DeleteBook(ctx, 3)
		is.NoErr(err)
		is.Equal(deletedBook, removed)
	})

	t.Run("expected not found error", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		mockRepo.EXPECT().DeleteBook(gomock.Any(), 3).Return(book.Book{}, book.ErrResponseBookNotFound)

		_, err := mS.DeleteBook(ctx, 3)
		is.True(errors.Is(err, book.ErrResponseBookNotFound))
	})
}

func TestGetBook(t *testing.T) {

	t.Run("Gets a book by ID without errors", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := bookmock.NewMockRepository(ctrl)
		mS := book.NewService(mockRepo, logger)

		expected := book.DefaultSeed()[0]
		mockRepo.EXPECT().GetBookByID(gomock.Any(), 1).Return(expected, nil)

		returnedBook, err := mS.GetBook(ctx, 1)
		is.NoErr(err)
		is.Equal(returnedBook, expected)
	})
}
