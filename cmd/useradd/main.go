// Command useradd creates or updates a lab member. It is used to bootstrap
// users before their first part is created, since parts are numbered with
// the member's abbreviation.
//
// Usage:
//
//	useradd --email=ann@example.com --name="Ann Bell" --abbr=AB [--id=<uuid>] [--groups=users,administrators]
//
// The id must equal the subject of the member's access tokens.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres"
	"github.com/heartmarshall/partsdb-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/partsdb-backend/internal/config"
	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

func main() {
	configPath := pflag.String("config", "", "path to the YAML config (default: $CONFIG_PATH or ./config.yaml)")
	id := pflag.String("id", "", "user id (token subject); a new one is generated when empty")
	email := pflag.String("email", "", "email address")
	name := pflag.String("name", "", "display name")
	abbr := pflag.String("abbr", "", "personal counter prefix, e.g. AB")
	groups := pflag.StringSlice("groups", []string{domain.GroupUsers}, "comma-separated groups")
	pflag.Parse()

	if *email == "" || *abbr == "" {
		fmt.Fprintln(os.Stderr, "Usage: useradd --email=user@example.com --abbr=AB [--name=...] [--id=...] [--groups=...]")
		os.Exit(1)
	}

	u := domain.User{
		Email:  strings.TrimSpace(*email),
		Name:   strings.TrimSpace(*name),
		Abbr:   strings.TrimSpace(*abbr),
		Groups: *groups,
	}
	if *id != "" {
		parsed, err := uuid.Parse(*id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --id: %v\n", err)
			os.Exit(1)
		}
		u.ID = parsed
	} else {
		u.ID = uuid.New()
	}

	if err := run(*configPath, u); err != nil {
		fmt.Fprintf(os.Stderr, "useradd: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, u domain.User) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	saved, err := user.New(pool).Upsert(ctx, u)
	if err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	fmt.Printf("User %s (%s, abbr %s, groups %s) saved.\n",
		saved.ID, saved.Email, saved.Abbr, strings.Join(saved.Groups, ","))
	return nil
}
