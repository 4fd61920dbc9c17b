package main

import (
	"context"
	"fmt"
	"log"

	"github.com/khoahotran/me-api/adapters/persistence"
	"github.com/khoahotran/me-api/internal/config"
	"github.com/khoahotran/me-api/internal/domain/profile"
	"github.com/khoahotran/me-api/pkg/logger"
)

func main() {
	fmt.Println("seeding sample profile into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	appLogger := logger.NewZapLogger(cfg.App.Env)

	pg, err := persistence.ConnectPostgres(cfg, appLogger)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pg.Close()

	if err := persistence.RunMigrations(cfg.DB.Migrations, cfg.DB.DSN, appLogger); err != nil {
		log.Fatalf("cannot apply migrations: %v", err)
	}

	repo := persistence.NewPostgresProfileRepo(pg, appLogger)
	p, seeded, err := repo.SeedIfEmpty(context.Background(), profile.SampleProfile())
	if err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}
	if !seeded {
		fmt.Printf("profile '%s' already exists, nothing to do\n", p.Email)
		return
	}
	fmt.Printf("seeded profile '%s' (%s) successfully!\n", p.Email, p.ID)
}
