package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/a2sh3r/groupmart/internal/config"
	"github.com/a2sh3r/groupmart/internal/database"
	"github.com/a2sh3r/groupmart/internal/handlers"
	"github.com/a2sh3r/groupmart/internal/logger"
	"github.com/a2sh3r/groupmart/internal/notify"
	"github.com/a2sh3r/groupmart/internal/repository"
	"github.com/a2sh3r/groupmart/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server     *http.Server
	core       *service.Core
	dispatcher *notify.Dispatcher
	worker     *service.ExpiryWorker

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	fallback, err := cfg.Fallback()
	if err != nil {
		return nil, err
	}
	rate, err := cfg.Rate()
	if err != nil {
		return nil, err
	}
	prices, err := config.LoadPrices(cfg.PricesFile)
	if err != nil {
		return nil, err
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return nil, err
	}

	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.NotifyURL != "" {
		notifier = notify.NewClient(cfg.NotifyURL)
	}
	dispatcher := notify.NewDispatcher(notifier, cfg.NotifyRate, cfg.NotifyQueue)

	core := service.NewCore(repo, dispatcher, service.Options{
		MaxLinks:        cfg.MaxLinks,
		DraftTimeout:    cfg.DraftTimeout,
		TransferTimeout: cfg.TransferTTL,
		EventRetention:  cfg.EventRetention,
		FallbackPrice:   fallback,
		INRRate:         rate,
		SeedPrices:      prices,
		SaveRetries:     cfg.SaveRetries,
	})
	if err := loadState(ctx, core, repo, cfg.RecoverCorrupt); err != nil {
		_ = repo.Close()
		return nil, err
	}

	handler := handlers.NewHandler(
		service.NewSubmissionService(core),
		service.NewWithdrawalService(core),
		service.NewBalanceService(core),
		service.NewApprovalProcessor(core),
	)
	if cfg.ApproverID == "" {
		logger.Log.Warn("no approver configured, approver commands will be refused")
	}
	r := handlers.NewRouter(handler, cfg.SecretKey, cfg.ApproverID)

	return &App{
		server: &http.Server{
			Addr:              cfg.RunAddress,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		core:       core,
		dispatcher: dispatcher,
		worker:     service.NewExpiryWorker(core, cfg.SweepInterval),
	}, nil
}

func openRepository(cfg *config.Config) (repository.DocumentRepository, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		logger.Log.Info("using file storage", zap.String("path", cfg.DocumentPath))
		return repository.NewFileRepository(cfg.DocumentPath, cfg.DocumentKey), nil
	case config.StoragePostgres:
		db, err := database.InitDB(cfg)
		if err != nil {
			logger.Log.Error("Database connection failed", zap.Error(err))
			return nil, err
		}
		return repository.NewPostgresRepository(db, cfg.DocumentKey), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// loadState refuses to start on a corrupt document unless recovery was
// asked for, in which case the document is moved aside and state starts empty.
func loadState(ctx context.Context, core *service.Core, repo repository.DocumentRepository, recoverCorrupt bool) error {
	err := core.Load(ctx)
	if err == nil || !repository.IsCorrupt(err) {
		return err
	}
	if !recoverCorrupt {
		return fmt.Errorf("refusing to start: %w", err)
	}

	q, ok := repo.(repository.Quarantiner)
	if !ok {
		return fmt.Errorf("storage cannot quarantine a corrupt document: %w", err)
	}
	where, qerr := q.Quarantine(ctx)
	if qerr != nil {
		return fmt.Errorf("quarantine corrupt document: %w", qerr)
	}
	logger.Log.Warn("corrupt document quarantined, starting with empty state",
		zap.String("moved_to", where), zap.Error(err))
	return core.Load(ctx)
}

func (a *App) Run(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		a.dispatcher.Run(ctx)
	}()
	go func() {
		defer a.wg.Done()
		a.worker.Run(ctx)
	}()

	go func() {
		logger.Log.Info("starting server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	if a.cancel != nil {
		a.cancel()
	}

	logger.Log.Info("flushing notifications...")
	if err := a.dispatcher.Close(shutdownCtx); err != nil {
		logger.Log.Warn("notifications not flushed", zap.Error(err))
	}
	a.wg.Wait()

	logger.Log.Info("closing storage...")
	if err := a.core.Close(); err != nil {
		logger.Log.Error("failed to close storage", zap.Error(err))
		return err
	}
	return nil
}
