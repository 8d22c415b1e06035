package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vflorencio/radar-leads/internal/infra/cache"
	"github.com/vflorencio/radar-leads/internal/infra/database"
	"github.com/vflorencio/radar-leads/internal/infra/http/handlers"
	"github.com/vflorencio/radar-leads/internal/infra/http/middleware"
	"github.com/vflorencio/radar-leads/internal/infra/integration/places"
	"github.com/vflorencio/radar-leads/internal/infra/mail"
	"github.com/vflorencio/radar-leads/internal/infra/queue"
	"github.com/vflorencio/radar-leads/internal/infra/worker"
	"github.com/vflorencio/radar-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		os.Getenv("RABBITMQ_USER"),
		os.Getenv("RABBITMQ_PASS"),
		os.Getenv("RABBITMQ_HOST"),
		os.Getenv("RABBITMQ_PORT"),
	)
	if err != nil {
		panic(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	searchCache, err := cache.NewSearchCache(os.Getenv("REDIS_URL"))
	if err != nil {
		// Cache fora do ar não derruba o serviço; busca vai direto na API.
		log.Printf("⚠️ Redis indisponível, busca sem cache: %v", err)
		searchCache = nil
	} else {
		defer searchCache.Close()
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	commentRepo := database.NewCommentRepository(db)
	businessRepo := database.NewBusinessRepository(db)
	settingsRepo := database.NewSettingsRepository(db)
	historyRepo := database.NewSearchHistoryRepository(db)

	// 2. Gateways e Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	placesClient := places.NewClient()

	mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
	if mailPort == 0 {
		mailPort = 587
	}
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	// 3. Workers
	eventWorker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go eventWorker.Start(queue.QueueName)

	staleWorker := worker.NewStaleLeadsWorker(db, producer)
	go staleWorker.Start(context.Background())

	// 4. Núcleo: sessões de board por usuário
	sessions := usecase.NewSessionManager(leadRepo, commentRepo, usecase.OpenPipelinePolicy{})
	promoteUC := usecase.NewPromoteBusinessUseCase(leadRepo, businessRepo, producer)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(sessions, promoteUC, producer)
	commentHandler := handlers.NewCommentHandler(sessions)
	searchHandler := handlers.NewSearchHandler(placesClient, searchCache, businessRepo, settingsRepo, historyRepo)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, searchCache)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-User-ID"},
	}))

	r.Get("/leads", leadHandler.HandleList)
	r.Get("/leads/board", leadHandler.HandleBoard)
	r.Get("/leads/{id}", leadHandler.HandleGet)
	r.Post("/leads", leadHandler.HandlePromote)
	r.Post("/leads/{id}/move", leadHandler.HandleMove)
	r.Post("/leads/{id}/comments", commentHandler.HandleAdd)
	r.Put("/comments/{id}", commentHandler.HandleEdit)
	r.Delete("/comments/{id}", commentHandler.HandleRemove)
	r.Get("/search", searchHandler.HandleSearch)
	r.Get("/search/history", searchHandler.HandleHistory)
	r.Get("/businesses", searchHandler.HandleListBusinesses)
	r.Get("/settings", settingsHandler.HandleGet)
	r.Put("/settings", settingsHandler.HandleUpdate)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Server Radar Leads rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
