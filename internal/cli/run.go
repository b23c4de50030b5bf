package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/mrlokans/catalog/internal/catalog"
	"github.com/mrlokans/catalog/internal/config"
)

// RunCommand seeds the catalog and runs every catalog operation in sequence,
// printing each result.
type RunCommand struct {
	DatabasePath   string
	BooksPath      string
	RandomSeed     int64
	IncreaseDate   string
	IncreaseCopies int
	AuthorFirst    string
	AuthorLast     string

	Out io.Writer
	cfg *config.Config
}

func NewRunCommand(cfg *config.Config) *RunCommand {
	return &RunCommand{cfg: cfg, Out: os.Stdout}
}

func (cmd *RunCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the SQLite database file")
	fs.StringVar(&cmd.BooksPath, "books", cmd.cfg.Seed.BooksPath, "Path to a books seed file (defaults to the bundled file)")
	fs.Int64Var(&cmd.RandomSeed, "random-seed", cmd.cfg.Seed.RandomSeed, "Seed for author and category assignment (0 = time based)")
	fs.StringVar(&cmd.IncreaseDate, "increase-date", cmd.cfg.Demo.IncreaseDate, "Increase copies of books released after this date (dd MMM yyyy)")
	fs.IntVar(&cmd.IncreaseCopies, "increase-copies", cmd.cfg.Demo.IncreaseCopies, "Copies to add to each matching book")
	fs.StringVar(&cmd.AuthorFirst, "author-first", cmd.cfg.Demo.AuthorFirst, "First name for the author book count")
	fs.StringVar(&cmd.AuthorLast, "author-last", cmd.cfg.Demo.AuthorLast, "Last name for the author book count")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s run [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed the catalog, then run every query, the copy increase, the low stock\n")
		fmt.Fprintf(os.Stderr, "purge and the author book count, printing each result.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s run -increase-date \"04 Jul 1999\" -increase-copies 10\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.IncreaseCopies <= 0 {
		return fmt.Errorf("-increase-copies must be positive")
	}
	return nil
}

func (cmd *RunCommand) Run() error {
	dbCfg := cmd.cfg.Database
	dbCfg.Path = cmd.DatabasePath

	a, err := newApp(dbCfg, cmd.RandomSeed)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.seed(cmd.BooksPath); err != nil {
		return err
	}

	return cmd.runQueries(a.catalog)
}

func (cmd *RunCommand) printList(header string, items []string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", header, err)
	}
	fmt.Fprintf(cmd.Out, "\n=== %s ===\n", header)
	if len(items) == 0 {
		fmt.Fprintln(cmd.Out, "(none)")
	}
	for _, item := range items {
		fmt.Fprintln(cmd.Out, item)
	}
	return nil
}

func (cmd *RunCommand) printValue(header string, value any, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", header, err)
	}
	fmt.Fprintf(cmd.Out, "\n=== %s ===\n%v\n", header, value)
	return nil
}

func (cmd *RunCommand) runQueries(s *catalog.Service) error {
	steps := []func() error{
		func() error {
			titles, err := s.BookTitlesByAgeRestriction("miNor")
			return cmd.printList("Books for minors", titles, err)
		},
		func() error {
			titles, err := s.BookTitlesByEditionWithCopiesBelow("gold", 5000)
			return cmd.printList("Gold editions with fewer than 5000 copies", titles, err)
		},
		func() error {
			books, err := s.BooksPricedOutside(decimal.NewFromInt(5), decimal.NewFromInt(40))
			return cmd.printList("Books priced below $5 or above $40", books, err)
		},
		func() error {
			titles, err := s.BookTitlesNotReleasedIn(2000)
			return cmd.printList("Books not released in 2000", titles, err)
		},
		func() error {
			books, err := s.BooksReleasedBefore("12-04-1992")
			return cmd.printList("Books released before 12-04-1992", books, err)
		},
		func() error {
			authors, err := s.AuthorsWithFirstNameEndingWith("dy")
			return cmd.printList("Authors with first name ending in \"dy\"", authors, err)
		},
		func() error {
			titles, err := s.BookTitlesContaining("sK")
			return cmd.printList("Titles containing \"sK\"", titles, err)
		},
		func() error {
			books, err := s.BooksByAuthorLastNamePrefix("Ric")
			return cmd.printList("Books by authors whose last name starts with \"Ric\"", books, err)
		},
		func() error {
			count, err := s.CountBooksWithTitleLongerThan(40)
			return cmd.printValue("Books with titles longer than 40 characters", count, err)
		},
		func() error {
			totals, err := s.TotalCopiesByAuthor()
			return cmd.printList("Total copies by author", totals, err)
		},
		func() error {
			info, err := s.BookByTitle("Things Fall Apart")
			if errors.Is(err, catalog.ErrNotFound) {
				return cmd.printValue("Things Fall Apart", err, nil)
			}
			return cmd.printValue("Things Fall Apart", info, err)
		},
		func() error {
			updated, err := s.IncreaseCopiesReleasedAfter(cmd.IncreaseDate, cmd.IncreaseCopies)
			if err != nil {
				return cmd.printValue("Increase copies", nil, err)
			}
			summary := fmt.Sprintf("%d books updated, %d copies added", updated, updated*int64(cmd.IncreaseCopies))
			return cmd.printValue("Copies added after "+cmd.IncreaseDate, summary, nil)
		},
		func() error {
			removed, err := s.RemoveLowStockBooks()
			return cmd.printValue(fmt.Sprintf("Books removed with fewer than %d copies", config.LowStockThreshold), removed, err)
		},
		func() error {
			count, err := s.AuthorBookCount(cmd.AuthorFirst, cmd.AuthorLast)
			return cmd.printValue(fmt.Sprintf("Books by %s %s", cmd.AuthorFirst, cmd.AuthorLast), count, err)
		},
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
