package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sponsorship/internal/adapter/repo"
	"sponsorship/internal/db"
	"sponsorship/internal/domain"
	"sponsorship/internal/infra"
)

type seedChild struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Country  string `json:"country"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
}

func main() {
	var (
		fileFlag   string
		schemaFlag bool
	)
	flag.StringVar(&fileFlag, "file", "", "path to a JSON array of children to load into the catalog")
	flag.BoolVar(&schemaFlag, "ensure-schema", false, "apply the database schema before loading")
	flag.Parse()

	path := strings.TrimSpace(fileFlag)
	if path == "" {
		exitWithError(errors.New("-file is required"))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		exitWithError(fmt.Errorf("failed to read %s: %w", path, err))
	}
	var seeds []seedChild
	if err := json.Unmarshal(raw, &seeds); err != nil {
		exitWithError(fmt.Errorf("failed to decode %s: %w", path, err))
	}
	if len(seeds) == 0 {
		exitWithError(fmt.Errorf("%s holds no children", path))
	}
	for i, seed := range seeds {
		if strings.TrimSpace(seed.Name) == "" || strings.TrimSpace(seed.Country) == "" {
			exitWithError(fmt.Errorf("entry %d: name and country are required", i))
		}
		if !domain.ValidChildAge(seed.Age) {
			exitWithError(fmt.Errorf("entry %d (%s): age %d is out of range", i, seed.Name, seed.Age))
		}
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	if schemaFlag {
		if err := db.EnsureSchema(ctx, pool); err != nil {
			exitWithError(err)
		}
	}

	logger := infra.NewLogger("cli").With().Str("cmd", "seedchildren").Logger()
	children := repo.NewChildRepository(infra.NewSQLRunner(pool, logger))

	inserted := 0
	for _, seed := range seeds {
		child := &domain.Child{
			Name:    strings.TrimSpace(seed.Name),
			Age:     seed.Age,
			Country: strings.ToUpper(strings.TrimSpace(seed.Country)),
		}
		if bio := strings.TrimSpace(seed.Bio); bio != "" {
			child.Bio = &bio
		}
		if photo := strings.TrimSpace(seed.PhotoURL); photo != "" {
			child.PhotoURL = &photo
		}
		created, err := children.Create(ctx, child)
		if err != nil {
			exitWithError(fmt.Errorf("failed to insert %s: %w", child.Name, err))
		}
		fmt.Printf("%s  %s (%d, %s)\n", created.ID, created.Name, created.Age, created.Country)
		inserted++
	}

	fmt.Printf("inserted %d children\n", inserted)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
