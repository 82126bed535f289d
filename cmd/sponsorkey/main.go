package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sponsorship/internal/adapter/repo"
	"sponsorship/internal/auth"
	"sponsorship/internal/domain"
	"sponsorship/internal/infra"
)

// sponsorkey rotates the API key of an existing sponsor. Useful when a key
// leaks or a sponsor locks themselves out; the old key stops working the
// moment the new one is stored.
func main() {
	var (
		idFlag    string
		emailFlag string
	)
	flag.StringVar(&idFlag, "id", "", "sponsor ID to rotate (UUID)")
	flag.StringVar(&emailFlag, "email", "", "sponsor email to rotate")
	flag.Parse()

	sponsorID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(emailFlag)
	if sponsorID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "sponsorkey").Logger()
	sponsors := repo.NewSponsorRepository(infra.NewSQLRunner(pool, logger))

	var sponsor *domain.Sponsor
	if sponsorID != "" {
		sponsor, err = sponsors.GetByID(ctx, sponsorID)
	} else {
		sponsor, err = sponsors.GetByEmail(ctx, email)
	}
	if err != nil {
		exitWithError(fmt.Errorf("failed to load sponsor: %w", err))
	}

	key, err := auth.NewAPIKey()
	if err != nil {
		exitWithError(err)
	}
	if err := sponsors.SetAPIKey(ctx, sponsor.ID, key); err != nil {
		exitWithError(fmt.Errorf("failed to store key: %w", err))
	}

	fmt.Printf("Sponsor %s (%s) issued a new API key\n", sponsor.ID, sponsor.Email)
	fmt.Println(key)
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
