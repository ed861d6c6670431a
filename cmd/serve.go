package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"studycards.app/configs/configsdatabase"
	"studycards.app/configs/configslog"
	"studycards.app/database"
	"studycards.app/jobs"
	"studycards.app/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveMigrate bool
	serveSeed    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server and the scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "run database migrations before serving")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "insert the demo deck when the card table is empty")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer configslog.SyncLogger()

	if err := configsdatabase.InitDB(cfg); err != nil {
		return err
	}
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	svc, err := buildServices(cfg, db)
	if err != nil {
		return err
	}
	if err := database.Initialize(db, serveMigrate, serveSeed, svc.clock.Today()); err != nil {
		return err
	}

	if cfg.Scheduler.Enabled {
		loc, _ := cfg.App.Location()
		scheduler := jobs.New(svc.cards, loc, cfg.Scheduler.DigestAt)
		if err := scheduler.Start(); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	app := routes.NewApp(routes.Dependencies{
		AuthService:    svc.auth,
		CardService:    svc.cards,
		ReviewService:  svc.review,
		ImportService:  svc.imp,
		AuthRequired:   cfg.Auth.Required,
		SecureCookie:   cfg.App.Env == "production",
		UploadMaxBytes: cfg.App.UploadMaxBytes,
		RatePerSecond:  cfg.Auth.RatePerSecond,
		RateBurst:      cfg.Auth.RateBurst,
		RequestLog:     true,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		configslog.Log.Info("Sunucu başlatılıyor",
			zap.String("port", cfg.App.Port),
			zap.String("env", cfg.App.Env),
			zap.String("db", describeDB(cfg.DB)),
		)
		listenErr <- app.Listen(":" + cfg.App.Port)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	configslog.SLog.Infof("Kapatma sinyali alındı, %s içinde kapatılıyor...", cfg.App.ShutdownTimeout)
	if err := app.ShutdownWithTimeout(cfg.App.ShutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Sunucu kapatıldı.")
	return nil
}
