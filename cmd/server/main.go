package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/Simplici0/costbook/internal/config"
	"github.com/Simplici0/costbook/internal/db"
	"github.com/Simplici0/costbook/internal/migrations"
	"github.com/Simplici0/costbook/internal/pricing"
	"github.com/Simplici0/costbook/internal/seed"
	"github.com/Simplici0/costbook/internal/store"
	"github.com/Simplici0/costbook/internal/summarycache"
)

type server struct {
	db       *sql.DB
	store    *store.Store
	cache    *summarycache.Cache
	rates    pricing.StatutoryRates
	validate *validator.Validate
}

func newServer(database *sql.DB, rates pricing.StatutoryRates) *server {
	return &server{
		db:       database,
		store:    store.New(database),
		cache:    summarycache.New(summarycache.DefaultCapacity),
		rates:    rates,
		validate: validator.New(),
	}
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	stats, err := seed.Run(database)
	if err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seeded %d default rows", stats.Inserts)
	}

	rates, err := config.LoadStatutoryRates(cfg.RatesPath)
	if err != nil {
		log.Fatalf("failed to load statutory rates: %v", err)
	}

	srv := newServer(database, rates)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Post("/summary", s.handleSummaryFromSnapshot)
		r.Get("/technicians/{id}/metrics", s.handleTechnicianMetrics)

		r.Post("/rates/hourly", s.handleHourlyRate)
		r.Post("/rates/markup", s.handleMarkup)
		r.Get("/materials/price", s.handleMaterialPrice)

		r.Get("/settings", s.handleSettingsGet)
		r.Put("/settings", s.handleSettingsUpdate)
		r.Post("/technicians", s.handleTechnicianCreate)
		r.Post("/technicians/{id}/unproductive-time", s.handleUnproductiveTimeCreate)
		r.Post("/office-staff", s.handleOfficeStaffCreate)
		r.Post("/vehicles", s.handleVehicleCreate)
		r.Post("/expense-categories", s.handleExpenseCategoryCreate)
		r.Post("/expense-categories/{id}/items", s.handleExpenseItemCreate)
		r.Post("/job-types", s.handleJobTypeCreate)
		r.Post("/markup-tiers", s.handleMarkupTierCreate)
	})

	return r
}
