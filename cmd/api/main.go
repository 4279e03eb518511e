package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/sjjames020/TranquiliTea/docs" // swagger docs

	"github.com/sjjames020/TranquiliTea/internal/cache"
	"github.com/sjjames020/TranquiliTea/internal/config"
	"github.com/sjjames020/TranquiliTea/internal/db"
	"github.com/sjjames020/TranquiliTea/internal/handler"
	"github.com/sjjames020/TranquiliTea/internal/repository"
	"github.com/sjjames020/TranquiliTea/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title TranquiliTea Mood Tracker API
// @version 1.0
// @description API de registro de estados de ánimo (Mongo, JWT)
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	c, err := cache.New(cfg)
	if err != nil {
		log.Fatalf("[redis] error conectando: %v", err)
	}

	// repos
	userRepo := repository.NewUserRepository(database)
	entryRepo := repository.NewMoodEntryRepository(database)

	idxCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(idxCtx); err != nil {
		cancel()
		log.Fatalf("[mongo] error creando índices: %v", err)
	}
	cancel()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.SecretKey)
	entrySvc := service.NewMoodEntryService(entryRepo, c)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	entryH := handler.NewMoodEntryHandler(entrySvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/register", authH.Register)
	r.Post("/login", authH.Login)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.SecretKey, userRepo)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Route("/mood-entries", func(r chi.Router) {
			r.Get("/", entryH.List)
			r.Post("/", entryH.Create)
			r.Put("/{id}", entryH.Update)
			r.Delete("/{id}", entryH.Delete)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
