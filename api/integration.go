package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/relayhq/relay/api/models"
	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/services"
	"github.com/relayhq/relay/util"
)

func (a *ApplicationHandler) CreateIntegration(w http.ResponseWriter, r *http.Request) {
	var newIntegration models.CreateIntegration
	err := util.ReadJSON(r, &newIntegration)
	if err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	if err = newIntegration.Validate(); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	ci := services.CreateIntegrationService{
		IntegrationRepo: a.integrationRepo,
		I:               &newIntegration,
		WorkspaceID:     chi.URLParam(r, "workspaceID"),
	}

	integration, err := ci.Run(r.Context())
	if err != nil {
		_ = render.Render(w, r, util.NewServiceErrResponse(err))
		return
	}

	resp := &models.IntegrationResponse{Integration: integration}
	_ = render.Render(w, r, util.NewServerResponse("Integration created successfully", resp, http.StatusCreated))
}

func (a *ApplicationHandler) GetIntegrations(w http.ResponseWriter, r *http.Request) {
	integrations, err := a.integrationRepo.LoadWorkspaceIntegrations(r.Context(), chi.URLParam(r, "workspaceID"))
	if err != nil {
		a.logger.WithError(err).Error("failed to load integrations")
		_ = render.Render(w, r, util.NewErrorResponse("an error occurred while loading integrations", http.StatusBadRequest))
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Integrations fetched successfully", integrations, http.StatusOK))
}

func (a *ApplicationHandler) GetIntegration(w http.ResponseWriter, r *http.Request) {
	integration, err := a.integrationRepo.FindIntegrationByID(r.Context(),
		chi.URLParam(r, "workspaceID"), chi.URLParam(r, "integrationID"))
	if err != nil {
		if errors.Is(err, datastore.ErrIntegrationNotFound) {
			_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusNotFound))
			return
		}

		a.logger.WithError(err).Error("failed to find integration")
		_ = render.Render(w, r, util.NewErrorResponse("an error occurred while retrieving integration", http.StatusBadRequest))
		return
	}

	resp := &models.IntegrationResponse{Integration: integration}
	_ = render.Render(w, r, util.NewServerResponse("Integration fetched successfully", resp, http.StatusOK))
}

func (a *ApplicationHandler) UpdateIntegration(w http.ResponseWriter, r *http.Request) {
	var update models.UpdateIntegration
	err := util.ReadJSON(r, &update)
	if err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	if err = update.Validate(); err != nil {
		_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusBadRequest))
		return
	}

	ui := services.UpdateIntegrationService{
		IntegrationRepo: a.integrationRepo,
		I:               &update,
		WorkspaceID:     chi.URLParam(r, "workspaceID"),
		IntegrationID:   chi.URLParam(r, "integrationID"),
	}

	integration, err := ui.Run(r.Context())
	if err != nil {
		if errors.Is(err, datastore.ErrIntegrationNotFound) {
			_ = render.Render(w, r, util.NewErrorResponse(err.Error(), http.StatusNotFound))
			return
		}

		_ = render.Render(w, r, util.NewServiceErrResponse(err))
		return
	}

	resp := &models.IntegrationResponse{Integration: integration}
	_ = render.Render(w, r, util.NewServerResponse("Integration updated successfully", resp, http.StatusAccepted))
}

func (a *ApplicationHandler) DeleteIntegration(w http.ResponseWriter, r *http.Request) {
	err := a.integrationRepo.DeleteIntegration(r.Context(),
		chi.URLParam(r, "workspaceID"), chi.URLParam(r, "integrationID"))
	if err != nil {
		a.logger.WithError(err).Error("failed to delete integration")
		_ = render.Render(w, r, util.NewErrorResponse("an error occurred while deleting integration", http.StatusBadRequest))
		return
	}

	_ = render.Render(w, r, util.NewServerResponse("Integration deleted successfully", nil, http.StatusOK))
}
