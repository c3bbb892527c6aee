package shell

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bookshelf/cmd/bookshelf/book"
	jsoniter "github.com/json-iterator/go"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var ValidFormats = []string{FormatText, FormatJSON}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

type BookResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Pages     string `json:"pages"`
	BookCount string `json:"bookcount"`
	Price     string `json:"price"`
}

/*Copy the fields of a book object to a presentation struct with json tags*/
func bookToResponse(b book.Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Pages:     b.Pages,
		BookCount: b.BookCount,
		Price:     b.Price,
	}
}

/*Writes a JSON document followed by a newline.*/
func responseJSON(w io.Writer, body any) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(body)
}

/*Renders the books as an aligned table, or as a JSON array.*/
func renderBooks(w io.Writer, format string, books []book.Book) error {
	if format == FormatJSON {
		results := []BookResponse{}
		for _, b := range books {
			results = append(results, bookToResponse(b))
		}
		return responseJSON(w, results)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tPAGES\tBOOKCOUNT\tPRICE")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.Pages, b.BookCount, b.Price)
	}
	return tw.Flush()
}

func renderBook(w io.Writer, format string, b book.Book) error {
	if format == FormatJSON {
		return responseJSON(w, bookToResponse(b))
	}
	return renderBooks(w, format, []book.Book{b})
}

/*Writes the error with its code when it carries one. Unknown formats fall back to text.*/
func renderError(w io.Writer, format string, err error) {
	var errR book.ErrResponse
	if !errors.As(err, &errR) {
		errR = book.ErrResponse{Message: err.Error()}
	}

	if format == FormatJSON {
		if jsonErr := responseJSON(w, errR); jsonErr == nil {
			return
		}
	}
	if errR.Code == 0 {
		fmt.Fprintf(w, "error: %s\n", errR.Message)
		return
	}
	fmt.Fprintf(w, "error %d: %s\n", errR.Code, errR.Message)
}
