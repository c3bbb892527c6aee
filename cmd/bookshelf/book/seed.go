package book

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

/* Returns a fresh copy of the five books every store starts with. */
func DefaultSeed() []Book {
	return []Book{
		{ID: 1, Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Pages: "208", BookCount: "17", Price: "Rs.2800"},
		{ID: 2, Title: "In Search of Lost Time", Author: "Marcel Proust", Pages: "1225", BookCount: "12", Price: "Rs.4600"},
		{ID: 3, Title: "The Hobbit", Author: "J.R.R. Tolkien", Pages: "304", BookCount: "25", Price: "Rs.1650"},
		{ID: 4, Title: "Thirteen Reasons Why", Author: "Jay Asher", Pages: "288", BookCount: "22", Price: "Rs.2200"},
		{ID: 5, Title: "The Infernal Devices", Author: "Cassandra Clar", Pages: "784", BookCount: "15", Price: "Rs.2400"},
	}
}

type seedEntry struct {
	ID        int    `yaml:"id"`
	Title     string `yaml:"title"`
	Author    string `yaml:"author"`
	Pages     string `yaml:"pages"`
	BookCount string `yaml:"bookcount"`
	Price     string `yaml:"price"`
}

/* Reads a YAML list of books, as an alternative to DefaultSeed. */
func LoadSeed(r io.Reader) ([]Book, error) {
	var entries []seedEntry
	err := yaml.NewDecoder(r).Decode(&entries)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}

	books := make([]Book, 0, len(entries))
	for _, e := range entries {
		books = append(books, Book{
			ID:        e.ID,
			Title:     e.Title,
			Author:    e.Author,
			Pages:     e.Pages,
			BookCount: e.BookCount,
			Price:     e.Price,
		})
	}

	if err := ValidateSeed(books); err != nil {
		return nil, err
	}
	return books, nil
}

/* Verifies that every seed book has a positive id not used by another seed book. */
func ValidateSeed(books []Book) error {
	seen := make(map[int]bool, len(books))
	for _, b := range books {
		if b.ID <= 0 {
			return fmt.Errorf("validating seed id %d: %w", b.ID, ErrResponseSeedInvalid)
		}
		if seen[b.ID] {
			return fmt.Errorf("validating seed id %d: %w", b.ID, ErrResponseSeedInvalid)
		}
		seen[b.ID] = true
	}
	return nil
}
