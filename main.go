package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"notes-api/audit"
	"notes-api/cache"
	"notes-api/config"
	"notes-api/db"
	"notes-api/handlers"
	"notes-api/logger"
	"notes-api/metrics"
	appmw "notes-api/middleware"
	notes_repo "notes-api/repository/notes"
	users_repo "notes-api/repository/users"
	auth_serv "notes-api/service/auth"
	notes_serv "notes-api/service/notes"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(os.Stdout)

	metrics.Init()
	metrics.StartMetricsServer(cfg.MetricsAddr)

	conn, err := db.Connect(cfg.DSN)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	var recorder audit.Recorder
	if len(cfg.KafkaConfig.Brokers) > 0 {
		recorder, err = audit.NewKafkaRecorder(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic)
		if err != nil {
			logg.Fatal().Err(err).Msg("failed to init kafka audit sink")
		}
	} else {
		recorder = audit.NewLogRecorder(logg)
	}
	defer recorder.Close()

	authServ := auth_serv.NewDefaultService(
		users_repo.NewDefaultRepository(conn),
		[]byte(cfg.JWTSecret),
		cfg.TokenTTL,
		logg,
	)
	notesServ := notes_serv.NewDefaultService(
		notes_repo.NewDefaultRepository(conn),
		cache.NewMemory(),
		recorder,
		logg,
	)

	authHandler := handlers.NewAuthHandler(authServ, logg)
	noteHandler := handlers.NewNoteHandler(notesServ, logg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(authServ))
		r.Post("/api/logout", authHandler.Logout)
		r.Get("/api/notes", noteHandler.Index)
		r.Get("/api/notes/{id}", noteHandler.Show)
		r.Post("/api/notes", noteHandler.Store)
		r.Put("/api/notes/{id}", noteHandler.Update)
		r.Delete("/api/notes/{id}", noteHandler.Destroy)
	})

	logg.Info().Str("addr", cfg.HTTPAddr).Msg("server running")
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logg.Fatal().Err(err).Msg("server stopped")
	}
}
