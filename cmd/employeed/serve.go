package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/activity"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/api"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/approval"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/briefing"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/config"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/scheduler"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/service"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/stats"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/vault"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/watcher"
	"github.com/junaidulhaquesheikh208-jpg/ai-employee/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server, scheduler, and vault watcher",
		RunE: func(*cobra.Command, []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := newLogger(cfg.LogLevel)
	log.WithFields(logrus.Fields{
		"version": config.Version,
		"vault":   cfg.VaultPath,
		"addr":    cfg.Addr(),
	}).Info("Starting employeed")

	v := vault.New(cfg.VaultPath, log)
	if err := v.EnsureBuckets(); err != nil {
		return fmt.Errorf("prepare vault: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stores and workers.
	approvals := approval.NewRepository(v, log)
	journal := activity.NewLog(v, log)
	recorder := activity.NewWorker(journal, log, cfg.ActivityQueueSize)
	statsStore := stats.NewStore(v, log)
	hub := ws.NewHub(log)

	// Workflow services.
	executor := service.NewJournalExecutor(recorder, log)
	decisions := service.NewDecisionService(approvals, recorder, hub, executor, log)
	dashboard := service.NewDashboard(approvals, journal, statsStore, log)
	briefings := briefing.NewGenerator(v, nil, log)
	registry := service.NewProcessRegistry(service.ProcessDeps{
		Briefings: briefings,
		Activity:  recorder,
		Hub:       hub,
		Log:       log,
	})
	housekeeper := service.NewHousekeeper(v, recorder, hub, log)

	sched := scheduler.New(housekeeper, scheduler.AuditorFunc(func(ctx context.Context) error {
		_, err := registry.Dispatch(ctx, service.ActionAudit, nil)

		return err
	}), cfg.HousekeepInterval, cfg.AuditInterval, log)

	watch, err := watcher.New(v, hub, log)
	if err != nil {
		return fmt.Errorf("create vault watcher: %w", err)
	}

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:         log,
		Vault:       v,
		Hub:         hub,
		Dashboard:   dashboard,
		Approvals:   decisions,
		Process:     registry,
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)

		return nil
	})
	g.Go(func() error {
		recorder.Run(gctx)

		return nil
	})
	g.Go(func() error {
		sched.Run(gctx)

		return nil
	})
	g.Go(func() error {
		return watch.Run(gctx)
	})
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("HTTP shutdown did not complete cleanly")
		}
		hub.Shutdown()

		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("Stopped")

	return nil
}
