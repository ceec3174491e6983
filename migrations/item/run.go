package main

import (
	"embed"

	"github.com/ghuser/catalog/pkg/config"
	"github.com/ghuser/catalog/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.CatalogDatabaseURL, MigrationsFS); err != nil {
		panic(err)
	}
}
