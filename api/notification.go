package api

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/relayhq/relay/api/models"
	"github.com/relayhq/relay/services"
	"github.com/relayhq/relay/util"
)

const noActiveIntegrationsMsg = "No active integrations for this notification type"

// CreateNotification validates the inbound notification and fans it out
// to the workspace's subscribed integrations. Partial delivery failure
// is still a success response; the failures ride along in the body.
func (a *ApplicationHandler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var newNotification models.CreateNotification
	err := util.ReadJSON(r, &newNotification)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err = newNotification.Validate(); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, models.ErrorResponse{Error: err.Error()})
		return
	}

	dn := services.DispatchNotificationService{
		IntegrationRepo: a.integrationRepo,
		Sender:          a.sender,
		N:               &newNotification,
	}

	summary, err := dn.Run(r.Context())
	if err != nil {
		a.logger.WithError(err).Error("failed to dispatch notification")
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, models.ErrorResponse{Error: err.Error()})
		return
	}

	if summary.Total == 0 {
		render.Status(r, http.StatusOK)
		render.JSON(w, r, models.NoopNotificationResponse{
			Success: true,
			Sent:    0,
			Message: noActiveIntegrationsMsg,
		})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, models.NotificationResponse{
		Success:  true,
		Sent:     summary.Sent,
		Total:    summary.Total,
		Failures: summary.Failures,
	})
}
