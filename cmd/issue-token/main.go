// Command issue-token prints an HS256 access token for an existing user.
// It is meant for local development and scripted tests.
//
// Usage:
//
//	issue-token --email=ann@example.com [--ttl=1h]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/partsdb-backend/internal/auth"
	"github.com/heartmarshall/partsdb-backend/internal/config"
)

func main() {
	configPath := pflag.String("config", "", "path to the YAML config (default: $CONFIG_PATH or ./config.yaml)")
	email := pflag.String("email", "", "email of the user to issue a token for")
	ttl := pflag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	pflag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --email=user@example.com [--ttl=1h]")
		os.Exit(1)
	}

	token, err := run(*configPath, *email, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue-token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func run(configPath, email string, ttl time.Duration) (string, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return "", err
	}
	if cfg.Auth.JWTSecret == "" {
		return "", fmt.Errorf("auth.jwt_secret is not configured")
	}
	if ttl <= 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return "", err
	}
	defer pool.Close()

	u, err := user.New(pool).GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find user %s: %w", email, err)
	}

	m := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl, auth.GroupNames{
		Users:  cfg.Auth.UsersGroup,
		Admins: cfg.Auth.AdminsGroup,
	})
	return m.GenerateAccessToken(u)
}
