package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/controller"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/middleware"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/http/router"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/repository/memory"
	"github.com/api-sage/pension-payment-processor/src/internal/adapter/repository/postgres"
	"github.com/api-sage/pension-payment-processor/src/internal/config"
	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
	"github.com/api-sage/pension-payment-processor/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	employeeRepo, paymentRepo, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer closeStorage()

	referenceRepo := memory.NewReferenceRepository(cfg.SenderAccounts, domain.TaxOffice{
		Name:    cfg.TaxOfficeName,
		BIN:     cfg.TaxOfficeBIN,
		Account: cfg.TaxOfficeAccount,
	})
	draftRepo := memory.NewDraftRepository()

	channelKeyHash, err := middleware.HashChannelKey(cfg.ChannelKey)
	if err != nil {
		log.Fatalf("hash channel key: %v", err)
	}

	paymentService := services.NewPaymentService(paymentRepo, referenceRepo)
	mux := router.New(
		controller.NewIINController(services.NewIINService()),
		controller.NewEmployeeController(services.NewEmployeeService(employeeRepo)),
		controller.NewPaymentController(paymentService),
		controller.NewDraftController(services.NewDraftService(draftRepo, employeeRepo, referenceRepo, paymentService, cfg.DefaultDocumentNumber)),
		controller.NewReferenceController(services.NewReferenceService(referenceRepo, employeeRepo, cfg.DefaultDocumentNumber)),
		middleware.BasicAuth(cfg.ChannelID, channelKeyHash),
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown failed", err, nil)
		}
	}()

	logger.Info("http server starting", logger.Fields{
		"addr":    cfg.HTTPAddr,
		"storage": cfg.StorageDriver,
	})
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server: %v", err)
	}
	logger.Info("http server stopped", nil)
}

func openStorage(ctx context.Context, cfg config.Config) (domain.EmployeeRepository, domain.PaymentRepository, func(), error) {
	if cfg.StorageDriver != config.StoragePostgres {
		seed, err := memory.DefaultEmployees()
		if err != nil {
			return nil, nil, nil, err
		}
		return memory.NewEmployeeRepository(seed), memory.NewPaymentRepository(), func() {}, nil
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(migrateCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		return nil, nil, nil, err
	}

	db, err := postgres.Open(migrateCtx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
			logger.Error("postgres close failed", err, nil)
		}
	}

	employeeRepo := postgres.NewEmployeeRepository(db)
	if err := seedDirectory(ctx, employeeRepo); err != nil {
		closeDB()
		return nil, nil, nil, err
	}

	return employeeRepo, postgres.NewPaymentRepository(db), closeDB, nil
}

// seedDirectory fills an empty employee directory with the built-in seed.
func seedDirectory(ctx context.Context, repo domain.EmployeeRepository) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	seed, err := memory.DefaultEmployees()
	if err != nil {
		return err
	}
	for _, employee := range seed {
		if _, err := repo.Create(ctx, employee); err != nil && !errors.Is(err, domain.ErrDuplicateIIN) {
			return err
		}
	}

	logger.Info("employee directory seeded", logger.Fields{
		"count": len(seed),
	})
	return nil
}
