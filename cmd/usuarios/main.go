// Command usuarios creates a labmaint account with a bcrypt-hashed password.
//
//	usuarios [-u usuario] [-rol admin|solo_vista] [-d dsn]
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/labmaint/internal/server/config"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/labmaint/internal/server/services"
	"github.com/dmitrijs2005/labmaint/internal/server/usercli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	opts, err := usercli.ParseOptions(os.Args[1:])
	if err != nil {
		return err
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	us := services.NewUserService(db, repomanager.NewPostgresRepositoryManager(), cfg)
	return usercli.Run(context.Background(), us, opts, os.Stdin, os.Stdout)
}
