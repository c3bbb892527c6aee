package book

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

/* Checks the direction against the two accepted values. */
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

type SortSpec struct {
	Field     string
	Direction Direction
}

var DefaultSort = SortSpec{Field: "id", Direction: Ascending}

// Text columns ordered by collation. "id" is handled apart since it is the only numeric column.
var textFields = map[string]func(Book) string{
	"title":     func(b Book) string { return b.Title },
	"author":    func(b Book) string { return b.Author },
	"pages":     func(b Book) string { return b.Pages },
	"bookcount": func(b Book) string { return b.BookCount },
	"price":     func(b Book) string { return b.Price },
}

/* Reports whether the field has a comparator other than the no-op one. */
func SortableField(field string) bool {
	if field == "id" {
		return true
	}
	_, ok := textFields[field]
	return ok
}

/*
Builds the comparator for a sort request. An unknown field yields a comparator that reports every
pair as equal, so a stable sort keeps the books in insertion order. Any direction other than
Descending sorts ascending.

The returned function owns its own collator and must not be shared between goroutines.
*/
func Sorter(spec SortSpec, locale language.Tag) func(a, b Book) int {
	var compare func(a, b Book) int

	if spec.Field == "id" {
		compare = func(a, b Book) int {
			return cmp.Compare(a.ID, b.ID)
		}
	} else if field, ok := textFields[spec.Field]; ok {
		c := collate.New(locale)
		compare = func(a, b Book) int {
			return c.CompareString(field(a), field(b))
		}
	} else {
		return func(a, b Book) int { return 0 }
	}

	if spec.Direction == Descending {
		return func(a, b Book) int {
			return compare(b, a)
		}
	}
	return compare
}
