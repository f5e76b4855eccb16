package services

import (
	"context"
	"errors"

	"github.com/relayhq/relay/api/models"
	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/pkg/log"
)

type UpdateIntegrationService struct {
	IntegrationRepo datastore.IntegrationRepository

	I             *models.UpdateIntegration
	WorkspaceID   string
	IntegrationID string
}

func (a *UpdateIntegrationService) Run(ctx context.Context) (*datastore.Integration, error) {
	integration, err := a.IntegrationRepo.FindIntegrationByID(ctx, a.WorkspaceID, a.IntegrationID)
	if err != nil {
		if errors.Is(err, datastore.ErrIntegrationNotFound) {
			return nil, &ServiceError{ErrMsg: err.Error(), Err: err}
		}

		log.FromContext(ctx).WithError(err).Error("failed to find integration")
		return nil, &ServiceError{ErrMsg: "an error occurred while retrieving integration", Err: err}
	}

	integration.Platform = datastore.IntegrationPlatform(a.I.Platform)
	integration.WebhookURL = a.I.WebhookURL
	integration.NotificationTypes = datastore.StringArray(a.I.NotificationTypes)

	if a.I.IsActive != nil {
		integration.IsActive = *a.I.IsActive
	}

	err = a.IntegrationRepo.UpdateIntegration(ctx, integration)
	if err != nil {
		log.FromContext(ctx).WithError(err).Error("failed to update integration")
		return nil, &ServiceError{ErrMsg: "an error occurred while updating integration", Err: err}
	}

	return integration, nil
}
