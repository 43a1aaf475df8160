package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-insights-api/internal/api/handler"
	"github.com/vfg2006/clinic-insights-api/internal/api/handler/router"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/closing"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/pipeline"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/clinic-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	mover pipeline.Mover,
	closingReader closing.ClosingReader,
	authenticator authenticating.Authenticator,
	monthlyClosingJob handler.CronJob,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		MonthlyClosing: monthlyClosingJob,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Reports(reporter, config.App.Location)...),
		router.WithRoutes(handler.Closings(closingReader)...),
		router.WithRoutes(handler.Pipeline(mover)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia de middlewares e rotas do servidor
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run atende requisições até receber SIGINT/SIGTERM ou o contexto ser cancelado
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			logrus.WithError(err).Error("Servidor interrompido")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Encerrando servidor")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
