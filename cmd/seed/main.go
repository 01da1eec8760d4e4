// Comando de carga de datos de ejemplo contra la base configurada.
// Pensado para entornos de desarrollo; corre las migraciones antes.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"ruff-service/internal/adapters/storage/postgres"
	"ruff-service/internal/domain/homes"
	"ruff-service/internal/domain/pets"
	"ruff-service/internal/domain/users"
	"ruff-service/internal/platform/config"
	"ruff-service/internal/platform/logger"
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "ruff-seed",
	})

	if cfg.DatabaseURL == "" {
		log.Error("DATABASE_URL is required to seed", nil)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Error("migrations failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	usersSvc := users.NewService(postgres.NewUsersRepo(db), log)
	homesSvc := homes.NewService(postgres.NewHomesRepo(db), log)
	petsSvc := pets.NewService(postgres.NewPetsRepo(db), log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ana, err := usersSvc.Create(ctx, users.CreateInput{
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Quispe",
	})
	if err != nil {
		log.Error("seed user failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	bruno, err := usersSvc.Create(ctx, users.CreateInput{
		Email:     "bruno@example.com",
		FirstName: "Bruno",
		LastName:  "Torres",
	})
	if err != nil {
		log.Error("seed user failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	casa, err := homesSvc.Create(ctx, homes.CreateInput{
		Name:    "Casa Miraflores",
		OwnerID: ana.ID,
	})
	if err != nil {
		log.Error("seed home failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	if err := homesSvc.AddMember(ctx, casa.ID, bruno.ID); err != nil {
		log.Error("seed membership failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	rocky, err := petsSvc.Create(ctx, pets.CreateInput{
		Name:   "Rocky",
		Type:   "Dog",
		Gender: "Male",
		Breed:  "Labrador",
		DOB:    time.Date(2021, time.March, 14, 0, 0, 0, 0, time.UTC),
		HomeID: casa.ID,
	})
	if err != nil {
		log.Error("seed pet failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	misha, err := petsSvc.Create(ctx, pets.CreateInput{
		Name:   "Misha",
		Type:   "Cat",
		Gender: "Female",
		Breed:  "Siamese",
		DOB:    time.Date(2022, time.July, 2, 0, 0, 0, 0, time.UTC),
		HomeID: casa.ID,
	})
	if err != nil {
		log.Error("seed pet failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	now := time.Now().UTC()
	logs := []struct {
		petID string
		in    pets.CreateLogInput
	}{
		{rocky.ID, pets.CreateLogInput{Type: "Walk", Title: "Paseo por el malecón", OccurredAt: now.Add(-2 * time.Hour)}},
		{rocky.ID, pets.CreateLogInput{Type: "Food", Title: "Desayuno", Description: "Croquetas con pollo", OccurredAt: now.Add(-8 * time.Hour)}},
		{misha.ID, pets.CreateLogInput{Type: "Grooming", Title: "Cepillado", OccurredAt: now.Add(-24 * time.Hour)}},
	}
	for _, l := range logs {
		if _, err := petsSvc.CreateLog(ctx, l.petID, l.in); err != nil {
			log.Error("seed pet log failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}

	log.Info("seed complete", map[string]any{
		"users": 2,
		"homes": 1,
		"pets":  2,
		"logs":  len(logs),
	})
}
