package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/dummy-messages-api/internal/adapter/api/controller"
	"github.com/hugohenrick/dummy-messages-api/internal/adapter/api/route"
	"github.com/hugohenrick/dummy-messages-api/internal/domain/message"
	"github.com/hugohenrick/dummy-messages-api/internal/infrastructure/server"
	"github.com/hugohenrick/dummy-messages-api/pkg/logger"
	"github.com/hugohenrick/dummy-messages-api/pkg/random"
)

// App representa a aplicação e suas dependências
type App struct {
	router            *gin.Engine
	config            *server.Config
	logger            logger.Logger
	messageController *controller.MessageController
	infoController    *controller.InfoController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() *App {
	config := server.NewConfigFromEnv()
	log := logger.NewLogger()

	gin.SetMode(config.Mode)

	// Semente fixa torna as respostas reproduzíveis
	var rnd *random.LockedSource
	if config.Seed != nil {
		log.Info("usando semente fixa", "seed", *config.Seed)
		rnd = random.New(*config.Seed)
	} else {
		rnd = random.NewFromTime()
	}

	service := message.NewService(rnd)

	router := gin.New()
	if config.Mode != gin.TestMode {
		router.Use(gin.Logger())
	}

	app := &App{
		router:            router,
		config:            config,
		logger:            log,
		messageController: controller.NewMessageController(service, log),
		infoController:    controller.NewInfoController(time.Now),
	}
	app.SetupRoutes()

	return app
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	route.SetupRoutes(a.router, a.logger, route.Controllers{
		Info:    a.infoController,
		Message: a.messageController,
	}, a.config.SwaggerEnabled)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Start inicia o servidor e aguarda SIGINT/SIGTERM para encerrar
func (a *App) Start() error {
	srv := &http.Server{
		Addr:         a.config.Address(),
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	a.logger.Info("encerrando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	a.logger.Info("servidor encerrado")
	return nil
}
