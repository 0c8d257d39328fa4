package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/config"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/database"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/events"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/http/handlers"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/http/middleware"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/mail"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/queue"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/session"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/pkg/logger"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	// Database
	db, err := database.NewDBConnection(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	// Redis session store
	redisClient, err := session.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()
	sessions := session.NewStore(redisClient, cfg.Session.TTL)

	// RabbitMQ
	rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue.User, cfg.Queue.Pass, cfg.Queue.Host, cfg.Queue.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("rabbitmq connection failed")
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// Live sold feed: queue worker fans events out to SSE subscribers.
	broadcaster := events.NewBroadcaster()
	worker := queue.NewWorker(rabbitMQ.Ch, broadcaster, log)
	go worker.Start(queue.QueueName)

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewAuthorizedUserRepository(db)
	requestRepo := database.NewAccessRequestRepository(db)
	offerRepo := database.NewOfferRepository(db)

	mailSender := mail.NewEmailSender(
		cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password,
		cfg.Mail.From, cfg.Mail.TemplateDir,
	)

	// UseCases
	loginUC := usecase.NewLoginUseCase(userRepo, sessions, cfg.AdminEmail)
	requestAccessUC := usecase.NewRequestAccessUseCase(requestRepo, userRepo)
	approvalUC := usecase.NewAccessApprovalUseCase(requestRepo, userRepo, mailSender, log)
	checkoutUC := usecase.NewCheckoutUseCase(leadRepo, producer, cfg.Checkout.ProcessingDelay, log)
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo)
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	moderationUC := usecase.NewModerationUseCase(leadRepo)
	addUserUC := usecase.NewAddUserUseCase(userRepo)
	revokeUserUC := usecase.NewRevokeUserUseCase(userRepo, cfg.AdminEmail)
	offerUC := usecase.NewMakeOfferUseCase(offerRepo, leadRepo)
	newsletterUC := usecase.NewNewsletterUseCase(leadRepo, userRepo, mailSender, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(loginUC, requestAccessUC)
	catalogHandler := handlers.NewCatalogHandler(leadRepo)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUC)
	sellHandler := handlers.NewSellHandler(submitLeadUC)
	offerHandler := handlers.NewOfferHandler(offerUC, offerRepo)
	eventsHandler := handlers.NewEventsHandler(broadcaster)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterUC, cfg.CronSecret)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, redisClient, broadcaster)
	adminHandler := &handlers.AdminHandler{
		CreateLeadUC: createLeadUC,
		ModerationUC: moderationUC,
		AddUserUC:    addUserUC,
		RevokeUserUC: revokeUserUC,
		ApprovalUC:   approvalUC,
		OfferUC:      offerUC,
		LeadRepo:     leadRepo,
		UserRepo:     userRepo,
		RequestRepo:  requestRepo,
		OfferRepo:    offerRepo,
	}

	gate := middleware.NewAccessGate(sessions, userRepo, cfg.AdminEmail, log)
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(loginLimiter.Limit)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/access-requests", authHandler.HandleRequestAccess)
	})

	r.Post("/cron/newsletter", newsletterHandler.Handle)

	r.Group(func(r chi.Router) {
		r.Use(gate.Protect)

		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Get("/leads", catalogHandler.HandleList)
		r.Get("/leads/sold", catalogHandler.HandleSold)
		r.Get("/leads/{id}", catalogHandler.HandleGet)
		r.Get("/leads/events", eventsHandler.Handle)
		r.Post("/leads", sellHandler.Handle)

		r.Post("/checkout", checkoutHandler.Handle)

		r.Post("/leads/{id}/offers", offerHandler.HandleCreate)
		r.Get("/offers", offerHandler.HandleListMine)

		r.Route("/admin", func(r chi.Router) {
			r.Use(gate.RequireAdmin)

			r.Get("/leads", adminHandler.HandleListLeads)
			r.Post("/leads", adminHandler.HandleCreateLead)
			r.Post("/leads/{id}/approve", adminHandler.HandleApproveLead)
			r.Post("/leads/{id}/reject", adminHandler.HandleRejectLead)
			r.Delete("/leads/{id}", adminHandler.HandleDeleteLead)

			r.Get("/users", adminHandler.HandleListUsers)
			r.Post("/users", adminHandler.HandleAddUser)
			r.Delete("/users/{id}", adminHandler.HandleRevokeUser)

			r.Get("/access-requests", adminHandler.HandleListRequests)
			r.Post("/access-requests/{id}/approve", adminHandler.HandleApproveRequest)
			r.Post("/access-requests/{id}/reject", adminHandler.HandleRejectRequest)

			r.Get("/offers", adminHandler.HandleListOffers)
			r.Post("/offers/{id}/resolve", adminHandler.HandleResolveOffer)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
