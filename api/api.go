package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/relayhq/relay"
	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/internal/pkg/metrics"
	"github.com/relayhq/relay/internal/pkg/middleware"
	"github.com/relayhq/relay/net"
	"github.com/relayhq/relay/pkg/log"
	"github.com/relayhq/relay/util"
)

type ApplicationHandler struct {
	Router http.Handler

	logger          log.StdLogger
	integrationRepo datastore.IntegrationRepository
	sender          net.Sender
}

func NewApplicationHandler(logger log.StdLogger, integrationRepo datastore.IntegrationRepository, sender net.Sender) *ApplicationHandler {
	return &ApplicationHandler{
		logger:          logger,
		integrationRepo: integrationRepo,
		sender:          sender,
	}
}

func (a *ApplicationHandler) BuildRoutes() *chi.Mux {
	router := chi.NewMux()

	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.WriteRequestIDHeader)
	router.Use(middleware.SetupCORS)
	router.Use(middleware.Recover)
	router.Use(middleware.JsonResponse)

	router.Route("/api/v1", func(v1Router chi.Router) {
		v1Router.Post("/notifications", a.CreateNotification)

		v1Router.Route("/workspaces/{workspaceID}/integrations", func(integrationRouter chi.Router) {
			integrationRouter.Post("/", a.CreateIntegration)
			integrationRouter.Get("/", a.GetIntegrations)

			integrationRouter.Route("/{integrationID}", func(subRouter chi.Router) {
				subRouter.Get("/", a.GetIntegration)
				subRouter.Put("/", a.UpdateIntegration)
				subRouter.Delete("/", a.DeleteIntegration)
			})
		})
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, util.NewServerResponse(fmt.Sprintf("Relay %v", relay.GetVersion()), nil, http.StatusOK))
	})

	router.Handle("/metrics", promhttp.HandlerFor(metrics.Reg(), promhttp.HandlerOpts{}))

	a.Router = router
	return router
}
