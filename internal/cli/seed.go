package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/catalog/internal/config"
)

// SeedCommand populates the catalog database with reference data and books.
type SeedCommand struct {
	DatabasePath string
	BooksPath    string
	RandomSeed   int64

	cfg *config.Config
}

func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{cfg: cfg}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the SQLite database file")
	fs.StringVar(&cmd.BooksPath, "books", cmd.cfg.Seed.BooksPath, "Path to a books seed file (defaults to the bundled file)")
	fs.Int64Var(&cmd.RandomSeed, "random-seed", cmd.cfg.Seed.RandomSeed, "Seed for author and category assignment (0 = time based)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed categories, authors and books. Steps whose table already has rows are skipped.\n\n")
		fmt.Fprintf(os.Stderr, "Each line of a books file has the form:\n")
		fmt.Fprintf(os.Stderr, "  editionOrdinal d/M/yyyy copies price ageRestrictionOrdinal title...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
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

	fmt.Println("Seeding complete")
	return nil
}
