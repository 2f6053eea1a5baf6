// Command useradd inserts a user row with a bcrypt password hash. There is no
// registration endpoint; accounts are created by an operator.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/uutiset/config"
	"github.com/daniilsolovey/uutiset/internal/db"
	"github.com/daniilsolovey/uutiset/internal/uutiset"
)

var (
	flConfig   = flag.String("config", "config.toml", "path to TOML configuration file")
	flName     = flag.String("name", "", "display name of the new user")
	flEmail    = flag.String("email", "", "login email of the new user")
	flPassword = flag.String("password", "", "password of the new user")
)

func main() {
	flag.Parse()

	lg := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *flName == "" || *flEmail == "" || *flPassword == "" {
		lg.Error("name, email and password are required")
		os.Exit(1)
	}

	var cfg config.Config
	if _, err := toml.DecodeFile(*flConfig, &cfg); err != nil {
		lg.Error("failed to read config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	conn := pg.Connect(&cfg.Database)
	defer conn.Close()

	if err := conn.Ping(ctx); err != nil {
		lg.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	hash, err := uutiset.HashPassword(*flPassword, cfg.Auth.BcryptCost)
	if err != nil {
		lg.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	user := &db.User{
		Name:         *flName,
		Email:        *flEmail,
		PasswordHash: hash,
	}

	repo := db.New(conn)
	if err := repo.CreateUser(ctx, user); err != nil {
		lg.Error("failed to create user", "error", err)
		os.Exit(1)
	}

	lg.Info("user created", "id", user.ID, "email", user.Email)
}
