package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "ruff-service/docs"
	mem "ruff-service/internal/adapters/storage/memory"
	pg "ruff-service/internal/adapters/storage/postgres"
	"ruff-service/internal/domain/auth"
	"ruff-service/internal/domain/health"
	"ruff-service/internal/domain/homes"
	"ruff-service/internal/domain/pets"
	"ruff-service/internal/domain/users"
	"ruff-service/internal/middleware"
	"ruff-service/internal/platform/logger"
)

type Options struct {
	// Si viene DB usa Postgres; si no, el store in-memory (dev/tests).
	DB *sql.DB

	JWTSecret string
	Logger    logger.Logger
}

func New(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	tokens := auth.NewTokenIssuer(opts.JWTSecret, auth.DefaultTokenTTL)
	r.Use(middleware.AuthContext(tokens))

	var (
		usersRepo users.Repository
		homesRepo homes.Repository
		petsRepo  pets.Repository
	)

	if opts.DB != nil {
		usersRepo = pg.NewUsersRepo(opts.DB)
		homesRepo = pg.NewHomesRepo(opts.DB)
		petsRepo = pg.NewPetsRepo(opts.DB)
	} else {
		store := mem.NewStore()
		usersRepo = store.Users()
		homesRepo = store.Homes()
		petsRepo = store.Pets()
	}

	// Services por módulo
	usersSvc := users.NewService(usersRepo, log)
	homesSvc := homes.NewService(homesRepo, log)
	petsSvc := pets.NewService(petsRepo, log)
	authSvc := auth.NewService(usersRepo, tokens, log)

	// Rutas por módulo
	health.RegisterRoutes(r)
	auth.RegisterRoutes(r, authSvc)
	users.RegisterRoutes(r, usersSvc)
	homes.RegisterRoutes(r, homesSvc)
	pets.RegisterRoutes(r, petsSvc)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
