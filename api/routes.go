package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/franchise-ledger/internal/auth"
	"github.com/carson-networks/franchise-ledger/internal/config"
	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/franchisee"
	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/report"
	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/franchise-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/franchise-ledger/internal/logging"
	"github.com/carson-networks/franchise-ledger/internal/metrics"
	"github.com/carson-networks/franchise-ledger/internal/service"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger  *logrus.Logger
	HTTP    config.HTTPConfig
	Service *service.Service
	Store   pinger
	JWT     *auth.JWTManager
	Metrics *metrics.Metrics
}

// Router builds the chi router with the huma API mounted on it.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	humaConfig := huma.DefaultConfig("Franchise Ledger", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	humaConfig.Security = []map[string][]string{{"bearer": {}}}

	api := humachi.New(router, humaConfig)
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))
	api.UseMiddleware(auth.Middleware(api, r.JWT))

	transaction.NewSubmitTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewListEventsHandler(r.Service.Transaction).Register(api)
	transaction.NewResolveTransactionHandler(r.Service.Approval).Register(api)
	report.NewGetSummaryHandler(r.Service.Report).Register(api)
	report.NewExportReportHandler(r.Service.Report).Register(api)
	franchisee.NewGetProfileHandler(r.Service.Franchisee).Register(api)
	franchisee.NewPutProfileHandler(r.Service.Franchisee).Register(api)

	statusHandler := status.NewHandler(r.Store)
	router.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	if r.Metrics != nil {
		router.Handle("/metrics", r.Metrics.Handler())
	}

	return router
}

// Serve listens until ctx is cancelled and then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.HTTP.Port,
		Handler:           r.Router(),
		ReadTimeout:       r.HTTP.ReadTimeout,
		WriteTimeout:      r.HTTP.WriteTimeout,
		IdleTimeout:       r.HTTP.IdleTimeout,
		ReadHeaderTimeout: r.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.HTTP.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.HTTP.WriteTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
