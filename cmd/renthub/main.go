package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/xxxsen/renthub/internal/config"
	"github.com/xxxsen/renthub/internal/db"
	"github.com/xxxsen/renthub/internal/gateway"
	"github.com/xxxsen/renthub/internal/handler"
	"github.com/xxxsen/renthub/internal/job"
	"github.com/xxxsen/renthub/internal/middleware"
	"github.com/xxxsen/renthub/internal/otp"
	"github.com/xxxsen/renthub/internal/repo"
	"github.com/xxxsen/renthub/internal/schedule"
	"github.com/xxxsen/renthub/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "renthub",
		Short: "renthub payments and account recovery server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run renthub server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))

			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer conn.Close()
			if err := db.ApplyMigrations(conn.DB); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, conn)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, conn *sqlx.DB) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("currency", cfg.Gateway.Currency),
		zap.Int("otp_ttl_minutes", cfg.OTP.TTLMinutes),
	)

	userRepo := repo.NewUserRepo(conn)
	leaseRepo := repo.NewLeaseRepo(conn)
	paymentRepo := repo.NewPaymentRepo(conn)

	otpTTL := time.Duration(cfg.OTP.TTLMinutes) * time.Minute
	otpStore, err := otp.NewStore(cfg.OTP.Capacity)
	if err != nil {
		return fmt.Errorf("init otp store: %w", err)
	}
	mailer := service.NewOtpMailer(service.NewEmailSender(cfg.Mail), otpTTL)
	resetService := service.NewPasswordResetService(userRepo, otpStore, mailer, otpTTL)
	paymentService := service.NewPaymentService(leaseRepo, paymentRepo, gateway.NewStripeClient(cfg.Gateway.StripeAPIKey), cfg.Gateway.Currency)

	deps, err := handler.NewRouterDeps(
		resetService,
		paymentService,
		handler.NewPropertiesHandler(cfg.Properties(), cfg.RateLimitSeconds),
		[]byte(cfg.JWTSecret),
		time.Duration(cfg.RateLimitSeconds)*time.Second,
	)
	if err != nil {
		return fmt.Errorf("init handlers: %w", err)
	}

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	engine, err := webapi.NewEngine(
		"/api/v1",
		addr,
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	sweep := job.NewOtpSweepJob(otpStore, time.Duration(cfg.OTP.SweepGraceMinutes)*time.Minute)
	if err := scheduler.AddJob(sweep, cfg.OTP.SweepSpec); err != nil {
		return err
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", addr))
	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
