package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bookshelf/cmd/bookshelf/book"
	"github.com/bookshelf/cmd/bookshelf/inmemory"
	"github.com/bookshelf/cmd/bookshelf/shell"
	"golang.org/x/text/language"
)

func main() {
	err := run()
	if err != nil {
		os.Exit(1)
	}
}

func run() error {
	logLevel := new(slog.LevelVar)
	if err := logLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "info"))); err != nil {
		logLevel.Set(slog.LevelInfo)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	locale, err := language.Parse(envOr("BOOKS_LOCALE", "en"))
	if err != nil {
		logger.Error("parsing BOOKS_LOCALE", "error", err)
		return fmt.Errorf("parsing locale: %w", err)
	}

	seed, err := loadSeed(os.Getenv("BOOKS_SEED_FILE"))
	if err != nil {
		logger.Error("loading seed", "error", err)
		return err
	}

	store, err := inmemory.NewInMemoryStore(seed, locale)
	if err != nil {
		logger.Error("creating store", "error", err)
		return fmt.Errorf("creating store: %w", err)
	}
	logger.Debug("store ready", "books", len(seed), "locale", locale.String())

	bookService := book.NewService(store, logger)
	bookHandler := shell.NewBookHandler(bookService, logger)
	sh := shell.New(bookHandler, shell.Config{
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Prompt:   "books> ",
		LogLevel: logLevel,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- sh.Execute(ctx, os.Args[1:])
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		logger.Info("interrupted, shutting down")
		return nil
	}
}

func loadSeed(path string) ([]book.Book, error) {
	if path == "" {
		return book.DefaultSeed(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	seed, err := book.LoadSeed(f)
	if err != nil {
		return nil, fmt.Errorf("loading seed file %s: %w", path, err)
	}
	return seed, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
