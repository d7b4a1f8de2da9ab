// Command authctl registers an account directly against the configured
// store. It exists for bootstrapping and operations: the HTTP endpoint is
// the normal registration path.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eduauth/internal/cli"
	"github.com/dmitrijs2005/eduauth/internal/common"
	"github.com/dmitrijs2005/eduauth/internal/hashing"
	"github.com/dmitrijs2005/eduauth/internal/server/config"
	"github.com/dmitrijs2005/eduauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/eduauth/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	hasher, err := hashing.NewHasher(cfg.HashCost)
	if err != nil {
		return err
	}
	lookup, err := hashing.NewLookupKey([]byte(cfg.LookupKey))
	if err != nil {
		return err
	}
	svc := services.NewAccountService(db, rm, hasher, lookup)

	reader := bufio.NewReader(os.Stdin)

	identifier, err := cli.GetSimpleText(reader, "Identifier (national ID)", os.Stdout)
	if err != nil {
		return err
	}
	role, err := cli.GetSimpleText(reader, "Role (student/teacher)", os.Stdout)
	if err != nil {
		return err
	}
	secret, err := cli.GetSecret("Enter secret", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	account, err := svc.Register(ctx, identifier, string(secret), role)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("registered id=%s role=%s\n", account.ID, account.Role)
	return nil
}
