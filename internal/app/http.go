package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/config"
	v1 "github.com/adanyl0v/go-tasks/internal/delivery/http/v1"
	"github.com/adanyl0v/go-tasks/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP
	logger := componentLogger(componentHTTP)

	router := gin.New()
	router.Use(gin.Recovery())
	mustRegisterRoutes(router, logger)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	logger.Info().Msg("shut down http server")
}

func mustRegisterRoutes(router *gin.Engine, logger zerolog.Logger) {
	sessionCfg := config.Global().Session

	sessionService := services.NewSessionService(componentLogger(componentSessions), globalStorage)
	authService := services.NewAuthService(
		componentLogger(componentAuth),
		globalStorage,
		sessionService,
		nil,
		sessionCfg.Issuer,
		[]byte(sessionCfg.SecretKey),
		sessionCfg.TTL,
	)
	taskService := services.NewTaskService(componentLogger(componentTasks), globalStorage, nil)

	v1Handler := v1.New(logger, authService, taskService)
	err := v1.RegisterRoutes(router, v1Handler)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to register routes")
		panic(err)
	}
}
