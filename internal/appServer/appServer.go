package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhorlensofteng-web/rifa-maria-iza/config"
	repository "github.com/jhorlensofteng-web/rifa-maria-iza/internal/database/postgres"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/monitoring"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/service"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/transport"

	"github.com/jhorlensofteng-web/rifa-maria-iza/pkg/postgres"
	"github.com/jhorlensofteng-web/rifa-maria-iza/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	ticketRepo := repository.NewTicketRepository(db)

	// Seed the pool. Existing numbers keep their state, so restarts and
	// raising app.total_tickets are both safe.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	err = ticketRepo.Seed(seedCtx, cfg.App.TotalTickets)
	cancelSeed()
	if err != nil {
		logrus.Fatalf("Failed to seed tickets: %v", err)
	}
	logrus.Infof("Ticket pool ready: %d numbers", cfg.App.TotalTickets)

	ticketPrice, err := decimal.NewFromString(cfg.App.TicketPrice)
	if err != nil {
		logrus.Warnf("Invalid ticket price %q, revenue figures disabled", cfg.App.TicketPrice)
		ticketPrice = decimal.Zero
	}

	// Initialize services
	ticketService := service.NewTicketService(ticketRepo, cfg.App.TotalTickets, cfg.App.ResellPolicy)
	inventoryService := service.NewInventoryService(ticketRepo, cfg.App.TotalTickets, cfg.App.OnlineTickets, ticketPrice)
	reportService := service.NewReportService(ticketRepo, cfg.App.Title, ticketPrice)

	keyChecker := security.NewKeyChecker(cfg.Admin.Key, cfg.Admin.KeyHash)
	if cfg.Admin.Key == "" && cfg.Admin.KeyHash == "" {
		logrus.Warn("No admin key configured, organizer routes are locked")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize metrics collector
	if cfg.Metrics.Enabled {
		collector := monitoring.NewInventoryCollector(inventoryService, cfg.Metrics.CollectInterval)
		go collector.Start(ctx)
		logrus.Info("Inventory metrics collector started")
	}

	// Initialize handlers
	pageHandler := transport.NewPageHandler(inventoryService, reportService, keyChecker, cfg.App.Title, cfg.App.TotalTickets)
	ticketHandler := transport.NewTicketHandler(ticketService, inventoryService)
	reportHandler := transport.NewReportHandler(reportService)

	// Setup HTTP server
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	routes := transport.InitRoutes(pageHandler, ticketHandler, reportHandler, keyChecker, db, cfg.Metrics.Enabled, cfg.Server.Timeout)

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, routes); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
