package book

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
)

type ServiceAPI interface {
	ListBooks(ctx context.Context, sort SortSpec) ([]Book, error)
	GetBook(ctx context.Context, id int) (Book, error)
	CreateBook(ctx context.Context, req CreateBookRequest) (Book, error)
	UpdateBook(ctx context.Context, req UpdateBookRequest) (Book, error)
	DeleteBook(ctx context.Context, id int) (Book, error)
}

type Repository interface {
	ListBooks(ctx context.Context, sort SortSpec) ([]Book, error)
	GetBookByID(ctx context.Context, id int) (Book, error)
	CreateBook(ctx context.Context, bookEntry Book) (Book, error)
	UpdateBook(ctx context.Context, bookEntry Book) (Book, error)
	DeleteBook(ctx context.Context, id int) (Book, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListBooks(ctx context.Context, sort SortSpec) ([]Book, error) {
	if sort.Field == "" {
		sort.Field = DefaultSort.Field
	}
	if sort.Direction == "" {
		sort.Direction = DefaultSort.Direction
	}
	if !sort.Direction.Valid() {
		return nil, ErrResponseSortDirectionInvalid
	}
	if !SortableField(sort.Field) {
		s.logger.DebugContext(ctx, "unknown sort field, keeping insertion order", "field", sort.Field)
	}

	books, err := s.repo.ListBooks(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return books, nil
}

func (s *Service) GetBook(ctx context.Context, id int) (Book, error) {
	return s.repo.GetBookByID(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req CreateBookRequest) (Book, error) {
	newBook := Book{
		Title:     req.Title,
		Author:    req.Author,
		Pages:     req.Pages,
		BookCount: req.BookCount,
		Price:     req.Price,
	}

	created, err := s.repo.CreateBook(ctx, newBook) //The store assigns the ID.
	if err != nil {
		return Book{}, fmt.Errorf("creating book: %w", err)
	}
	s.logger.InfoContext(ctx, "book created", "id", created.ID, "title", created.Title)
	return created, nil
}

func (s *Service) UpdateBook(ctx context.Context, req UpdateBookRequest) (Book, error) {
	bookEntry := Book{
		ID:        req.ID,
		Title:     req.Title,
		Author:    req.Author,
		Pages:     req.Pages,
		BookCount: req.BookCount,
		Price:     req.Price,
	}

	updated, err := s.repo.UpdateBook(ctx, bookEntry)
	if err != nil {
		return Book{}, fmt.Errorf("updating book: %w", err)
	}
	s.logger.InfoContext(ctx, "book updated", "id", updated.ID)
	return updated, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int) (Book, error) {
	deleted, err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("deleting book: %w", err)
	}
	s.logger.InfoContext(ctx, "book deleted", "id", deleted.ID)
	return deleted, nil
}
