// Command create-admin provisions an admin account with a role. It is used
// to bootstrap the first super_admin.
//
// Usage:
//
//	create-admin --name="Jane Doe" --email=jane@example.com --password=secret123 --role=super_admin
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/civicvoice/civicvoice-backend/internal/adapter/postgres"
	sessionrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/session"
	userrepo "github.com/civicvoice/civicvoice-backend/internal/adapter/postgres/user"
	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/config"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
	usersvc "github.com/civicvoice/civicvoice-backend/internal/service/user"
)

func main() {
	name := flag.String("name", "", "display name of the admin")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "password (8 to 72 characters)")
	role := flag.String("role", "super_admin", "admin role: super_admin, municipal_official or department_worker")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: create-admin --name=... --email=... --password=... [--role=super_admin]")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	svc := usersvc.NewService(
		logger,
		userrepo.New(pool),
		noWardCheck{},
		sessionrepo.New(pool),
		postgres.NewTxManager(pool),
		config.AuthConfig{PasswordHashCost: 10},
	)

	admin, err := svc.CreateAdmin(ctx, auth.Identity{}, usersvc.CreateAdminInput{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     domain.AdminRole(*role),
	})
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}

	fmt.Printf("Admin %q (id %d) created with role %s.\n", admin.Email, admin.ID, admin.Role)
}

// noWardCheck satisfies the ward checker; admin provisioning never sets a
// ward.
type noWardCheck struct{}

func (noWardCheck) WardExists(context.Context, int64) (bool, error) { return false, nil }
