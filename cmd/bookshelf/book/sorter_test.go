package book_test

import (
	"slices"
	"testing"

	"github.com/bookshelf/cmd/bookshelf/book"
	"github.com/matryer/is"
	"golang.org/x/text/language"
)

func sortSeed(spec book.SortSpec) []book.Book {
	books := book.DefaultSeed()
	slices.SortStableFunc(books, book.Sorter(spec, language.English))
	return books
}

func ids(books []book.Book) []int {
	result := []int{}
	for _, b := range books {
		result = append(result, b.ID)
	}
	return result
}

func TestSorter(t *testing.T) {

	t.Run("sorts by id ascending", func(t *testing.T) {
		is := is.New(t)

		books := sortSeed(book.SortSpec{Field: "id", Direction: book.Ascending})
		is.Equal(ids(books), []int{1, 2, 3, 4, 5})
	})

	t.Run("sorts by id descending", func(t *testing.T) {
		is := is.New(t)

		books := sortSeed(book.SortSpec{Field: "id", Direction: book.Descending})
		is.Equal(ids(books), []int{5, 4, 3, 2, 1})
	})

	t.Run("sorts ids numerically, not as text", func(t *testing.T) {
		is := is.New(t)

		books := []book.Book{{ID: 10}, {ID: 9}, {ID: 100}}
		slices.SortStableFunc(books, book.Sorter(book.SortSpec{Field: "id", Direction: book.Ascending}, language.English))
		is.Equal(ids(books), []int{9, 10, 100})
	})

	t.Run("sorts by author ascending with english collation", func(t *testing.T) {
		is := is.New(t)

		books := sortSeed(book.SortSpec{Field: "author", Direction: book.Ascending})

		authors := []string{}
		for _, b := range books {
			authors = append(authors, b.Author)
		}
		is.Equal(authors, []string{"Cassandra Clar", "F. Scott Fitzgerald", "J.R.R. Tolkien", "Jay Asher", "Marcel Proust"})
	})

	t.Run("sorts by title descending", func(t *testing.T) {
		is := is.New(t)

		books := sortSeed(book.SortSpec{Field: "title", Direction: book.Descending})
		is.Equal(ids(books), []int{4, 5, 3, 1, 2}) // Thirteen.., The Infernal.., The Hobbit, The Great.., In Search..
	})

	t.Run("sorts by price ascending", func(t *testing.T) {
		is := is.New(t)

		books := sortSeed(book.SortSpec{Field: "price", Direction: book.Ascending})
		is.Equal(ids(books), []int{3, 4, 5, 1, 2})
	})

	t.Run("sorts pages as text", func(t *testing.T) {
		is := is.New(t)

		books := sortSeed(book.SortSpec{Field: "pages", Direction: book.Ascending})
		is.Equal(ids(books), []int{2, 1, 4, 3, 5}) // "1225" < "208" < "288" < "304" < "784"
	})

	t.Run("ignores case differences at the primary level", func(t *testing.T) {
		is := is.New(t)

		books := []book.Book{{ID: 1, Title: "beta"}, {ID: 2, Title: "Alpha"}}
		slices.SortStableFunc(books, book.Sorter(book.SortSpec{Field: "title", Direction: book.Ascending}, language.English))
		is.Equal(ids(books), []int{2, 1})
	})

	t.Run("keeps the input order for an unknown field", func(t *testing.T) {
		is := is.New(t)

		books := book.DefaultSeed()
		slices.Reverse(books)
		slices.SortStableFunc(books, book.Sorter(book.SortSpec{Field: "publisher", Direction: book.Descending}, language.English))
		is.Equal(ids(books), []int{5, 4, 3, 2, 1})
	})

	t.Run("sorts ascending when the direction is empty", func(t *testing.T) {
		is := is.New(t)

		books := sortSeed(book.SortSpec{Field: "id"})
		is.Equal(ids(books), []int{1, 2, 3, 4, 5})
	})
}

func TestSortableField(t *testing.T) {
	is := is.New(t)

	for _, field := range []string{"id", "title", "author", "pages", "bookcount", "price"} {
		is.True(book.SortableField(field))
	}
	is.True(!book.SortableField("publisher"))
	is.True(!book.SortableField("Title"))
}
