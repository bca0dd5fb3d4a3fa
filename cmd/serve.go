package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"flowt.dev/flowt/internal/auth"
	config "flowt.dev/flowt/internal/configs"
	httpapi "flowt.dev/flowt/internal/http"
	"flowt.dev/flowt/internal/limiter"
	repository "flowt.dev/flowt/internal/repositories"
	"flowt.dev/flowt/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the Flowt Kanban HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		var store limiter.Store = limiter.NewMemoryStore()
		if cfg.RedisEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			store = limiter.NewRedisStore(redisClient, cfg.RedisLimiterPrefix)
		}

		userRepo := repository.NewUserRepository(database)
		groupRepo := repository.NewGroupRepository(database)
		boardRepo := repository.NewBoardRepository(database)
		columnRepo := repository.NewColumnRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		subtaskRepo := repository.NewSubtaskRepository(database)
		labelRepo := repository.NewLabelRepository(database)
		activityRepo := repository.NewActivityRepository(database)
		settingRepo := repository.NewSettingRepository(database)
		maintenanceRepo := repository.NewMaintenanceRepository(database)

		codec := auth.NewSessionCodec(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

		permissions := services.NewPermissionService(userRepo, groupRepo)
		authService := services.NewAuthService(userRepo)
		boardService := services.NewBoardService(boardRepo, columnRepo, taskRepo, settingRepo, permissions)
		taskService := services.NewTaskService(taskRepo, subtaskRepo, labelRepo, activityRepo, permissions)
		depService := services.NewDependencyService(taskRepo)
		adminService := services.NewAdminService(userRepo, groupRepo, maintenanceRepo)
		settingService := services.NewSettingService(settingRepo)
		activityService := services.NewActivityService(activityRepo)

		e := echo.New()
		handler := httpapi.NewHandler(
			codec,
			authService,
			boardService,
			taskService,
			depService,
			adminService,
			settingService,
			activityService,
		)
		httpapi.Register(e, handler, codec, store, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
