package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"bitbucket.org/Amartha/go-savings-engine/internal/common/graceful"
	commonhttp "bitbucket.org/Amartha/go-savings-engine/internal/common/http"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/http/middleware"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/config"
	"bitbucket.org/Amartha/go-savings-engine/internal/deliveries/http/health"
	"bitbucket.org/Amartha/go-savings-engine/internal/services"

	v1account "bitbucket.org/Amartha/go-savings-engine/internal/deliveries/http/v1/account"
	v1posting "bitbucket.org/Amartha/go-savings-engine/internal/deliveries/http/v1/posting"
	v1transaction "bitbucket.org/Amartha/go-savings-engine/internal/deliveries/http/v1/transaction"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

// @title GO SAVINGS ENGINE API DOCUMENTATION
// @version 1.0
// @description Savings account interest accrual and posting engine.

// @host localhost:9567
// @BasePath /api
// @schemes http
func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	accountService services.AccountService,
	transactionService services.TransactionService,
	postingService services.PostingService,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(echomiddleware.RequestID())
	app.Use(m.Context())
	app.Use(m.Logger())

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group
	v1Group := apiGroup.Group("/v1")
	// v1Group middleware
	v1Group.Use(m.InternalAuth())
	// v1Group register api
	v1account.New(v1Group, accountService)
	v1transaction.New(v1Group, transactionService)
	v1posting.New(v1Group, postingService)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
