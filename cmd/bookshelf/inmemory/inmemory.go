package inmemory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/bookshelf/cmd/bookshelf/book"
	"github.com/hashicorp/go-memdb"
	"golang.org/x/text/language"
)

const (
	bookTable     = "book"
	sequenceTable = "sequence"
	bookSequence  = "book"
)

/*
Holds the book collection and its id counter. Both live in go-memdb tables, so every mutation,
counter included, happens inside one write transaction. go-memdb allows a single writer at a time,
which makes each write transaction the critical section for that operation.
*/
type InMemoryStore struct {
	db     *memdb.MemDB
	locale language.Tag
}

type AdaptedBook struct {
	ID        int
	Title     string
	Author    string
	Pages     string
	BookCount string
	Price     string
}

type sequenceRow struct {
	Name  string
	Value int
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			bookTable: {
				Name: bookTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
			sequenceTable: {
				Name: sequenceTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Name"},
					},
				},
			},
		},
	}
}

/*
Creates a store holding the seed books. The counter starts at the highest seed id, so the first
created book gets the next one.
*/
func NewInMemoryStore(seed []book.Book, locale language.Tag) (*InMemoryStore, error) {
	if err := book.ValidateSeed(seed); err != nil {
		return nil, fmt.Errorf("seeding in-memory database: %w", err)
	}

	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()

	counter := 0
	for _, b := range seed {
		if err := txn.Insert(bookTable, adaptBook(b)); err != nil {
			return nil, fmt.Errorf("seeding in-memory database: %w", err)
		}
		counter = max(counter, b.ID)
	}
	if err := txn.Insert(sequenceTable, sequenceRow{Name: bookSequence, Value: counter}); err != nil {
		return nil, fmt.Errorf("seeding in-memory database: %w", err)
	}
	txn.Commit()

	return &InMemoryStore{db: db, locale: locale}, nil
}

func adaptBook(b book.Book) AdaptedBook {
	return AdaptedBook{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Pages:     b.Pages,
		BookCount: b.BookCount,
		Price:     b.Price,
	}
}

func adaptedToBook(a AdaptedBook) book.Book {
	return book.Book{
		ID:        a.ID,
		Title:     a.Title,
		Author:    a.Author,
		Pages:     a.Pages,
		BookCount: a.BookCount,
		Price:     a.Price,
	}
}

/*
Returns every book ordered by the sort request. The slice is built from a read transaction, so it
is a snapshot that later writes never touch.
*/
func (store *InMemoryStore) ListBooks(ctx context.Context, sort book.SortSpec) ([]book.Book, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(bookTable, "id")
	if err != nil {
		return []book.Book{}, fmt.Errorf("listing books from db: %w", err)
	}

	books := []book.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		books = append(books, adaptedToBook(obj.(AdaptedBook)))
	}

	// Ids only grow, so id order is insertion order. The stable sort keeps it for ties.
	slices.SortFunc(books, func(a, b book.Book) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(books, book.Sorter(sort, store.locale))

	return books, nil
}

func (store *InMemoryStore) GetBookByID(ctx context.Context, id int) (book.Book, error) {
	txn := store.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(bookTable, "id", id)
	if err != nil {
		return book.Book{}, fmt.Errorf("searching by ID: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("searching by ID %d: %w", id, book.ErrResponseBookNotFound)
	}

	return adaptedToBook(raw.(AdaptedBook)), nil
}

/* Stores a new book under the next id. Any ID set on bookEntry is ignored. */
func (store *InMemoryStore) CreateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(sequenceTable, "id", bookSequence)
	if err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("storing book on db: missing %q sequence", bookSequence)
	}
	seq := raw.(sequenceRow)
	seq.Value++

	newBook := adaptBook(bookEntry)
	newBook.ID = seq.Value

	if err := txn.Insert(bookTable, newBook); err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}
	if err := txn.Insert(sequenceTable, seq); err != nil {
		return book.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	txn.Commit()
	return adaptedToBook(newBook), nil
}

/* Overwrites every field of the stored book except its ID. */
func (store *InMemoryStore) UpdateBook(ctx context.Context, bookEntry book.Book) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(bookTable, "id", bookEntry.ID)
	if err != nil {
		return book.Book{}, fmt.Errorf("updating book on db: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("updating book %d on db: %w", bookEntry.ID, book.ErrResponseBookNotFound)
	}

	updatedBook := raw.(AdaptedBook)
	updatedBook.Title = bookEntry.Title
	updatedBook.Author = bookEntry.Author
	updatedBook.Pages = bookEntry.Pages
	updatedBook.BookCount = bookEntry.BookCount
	updatedBook.Price = bookEntry.Price

	if err := txn.Insert(bookTable, updatedBook); err != nil {
		return book.Book{}, fmt.Errorf("updating book on db: %w", err)
	}

	txn.Commit()
	return adaptedToBook(updatedBook), nil
}

/* Removes the book and returns it as it was before removal. The counter is left untouched. */
func (store *InMemoryStore) DeleteBook(ctx context.Context, id int) (book.Book, error) {
	txn := store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(bookTable, "id", id)
	if err != nil {
		return book.Book{}, fmt.Errorf("deleting book from db: %w", err)
	}
	if raw == nil {
		return book.Book{}, fmt.Errorf("deleting book %d from db: %w", id, book.ErrResponseBookNotFound)
	}

	if err := txn.Delete(bookTable, raw); err != nil {
		return book.Book{}, fmt.Errorf("deleting book from db: %w", err)
	}

	txn.Commit()
	return adaptedToBook(raw.(AdaptedBook)), nil
}
