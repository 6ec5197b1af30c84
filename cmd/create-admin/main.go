// Command create-admin provisions an admin account in the configured database.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/memorybox/backend/internal/config"
	"github.com/memorybox/backend/internal/console"
	"github.com/memorybox/backend/internal/db"
	"github.com/memorybox/backend/internal/logging"
	"github.com/memorybox/backend/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)
	username := fs.String("username", cfg.Admin.Username, "admin username")
	password := fs.String("password", "", "admin password (prompted when empty)")
	_ = fs.Parse(os.Args[1:])

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *password == "" {
		pw, err := console.ReadPassword(bufio.NewReader(os.Stdin), os.Stdout, "Password for "+*username+": ")
		if err != nil {
			logger.Fatal("failed to read password", zap.Error(err))
		}
		*password = pw
	}

	if err := run(context.Background(), cfg, logger, *username, *password); err != nil {
		if errors.Is(err, service.ErrConflict) {
			fmt.Fprintf(os.Stderr, "admin %q already exists\n", *username)
			os.Exit(1)
		}
		logger.Fatal("failed to create admin", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger, username, password string) error {
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureAuthSchema(ctx); err != nil {
		return err
	}

	authService, err := service.NewAuthService(repo, cfg.Auth, logger.Named("auth"))
	if err != nil {
		return err
	}

	admin, err := authService.Provision(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Printf("admin %q created (id %s)\n", admin.Username, admin.ID)
	return nil
}
