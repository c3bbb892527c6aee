package shell

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bookshelf/cmd/bookshelf/book"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Options holds the flags shared by every command.
type Options struct {
	Format  string
	Verbose bool
}

type Config struct {
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Prompt   string
	LogLevel *slog.LevelVar // raised to debug by --verbose, may be nil
}

/*
Shell is the presentation side of the book table. Without a subcommand it reads commands line by
line from Config.In, so every command of a session works on the same store.
*/
type Shell struct {
	handler *BookHandler
	cfg     Config
}

func New(h *BookHandler, cfg Config) *Shell {
	return &Shell{handler: h, cfg: cfg}
}

/* Runs one process invocation and renders its error, if any, on Config.Err. */
func (s *Shell) Execute(ctx context.Context, args []string) error {
	if args == nil {
		args = []string{} // cobra reads os.Args when given nil
	}
	opts := &Options{}
	root := s.rootCommand(opts)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		renderError(s.cfg.Err, opts.Format, err)
	}
	return err
}

func (s *Shell) rootCommand(opts *Options) *cobra.Command {
	cmd := s.baseCommand(opts)
	cmd.Short = "Browse and edit an in-memory table of books"
	cmd.Long = "Without a command, bookshelf reads commands from standard input until exit, quit or EOF."
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return s.session(cmd.Context(), *opts)
	}
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func (s *Shell) baseCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bookshelf",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return book.ErrResponseFormatInvalid
			}
			if opts.Verbose && s.cfg.LogLevel != nil {
				s.cfg.LogLevel.Set(slog.LevelDebug)
			}
			return nil
		},
	}
	cmd.SetIn(s.cfg.In)
	cmd.SetOut(s.cfg.Out)
	cmd.SetErr(s.cfg.Err)
	// Session lines inherit the format the session was started with.
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	cmd.PersistentFlags().StringVar(&opts.Format, "format", format, "output format (text|json)")
	cmd.AddCommand(s.handler.commands(opts)...)
	return cmd
}

func (s *Shell) session(ctx context.Context, defaults Options) error {
	logger := s.handler.logger.With("session", uuid.NewString())
	logger.InfoContext(ctx, "session started")

	scanner := bufio.NewScanner(s.cfg.In)
	for ctx.Err() == nil {
		fmt.Fprint(s.cfg.Out, s.cfg.Prompt)
		if !scanner.Scan() {
			break
		}

		args, err := splitLine(scanner.Text())
		if err != nil {
			renderError(s.cfg.Out, defaults.Format, err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			break
		}

		opts := defaults
		cmd := s.baseCommand(&opts)
		cmd.SetArgs(args)
		// Errors go to Out so that they interleave with the results they answer.
		if err := cmd.ExecuteContext(ctx); err != nil {
			logger.DebugContext(ctx, "command rejected", "command", args[0], "error", err)
			renderError(s.cfg.Out, opts.Format, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}

	logger.InfoContext(ctx, "session ended")
	return nil
}

/*
Splits a command line on spaces. Double quotes group words, so
	create --title "The Hobbit"
yields four arguments.
*/
func splitLine(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = ' '
	r.TrimLeadingSpace = true

	fields, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parsing command line: %w", err)
	}

	args := fields[:0]
	for _, f := range fields {
		if f != "" {
			args = append(args, f)
		}
	}
	return args, nil
}
