package services

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/relayhq/relay/api/models"
	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/pkg/log"
)

type CreateIntegrationService struct {
	IntegrationRepo datastore.IntegrationRepository

	I           *models.CreateIntegration
	WorkspaceID string
}

func (a *CreateIntegrationService) Run(ctx context.Context) (*datastore.Integration, error) {
	integration := &datastore.Integration{
		UID:               ulid.Make().String(),
		WorkspaceID:       a.WorkspaceID,
		Platform:          datastore.IntegrationPlatform(a.I.Platform),
		WebhookURL:        a.I.WebhookURL,
		NotificationTypes: datastore.StringArray(a.I.NotificationTypes),
		IsActive:          true,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if a.I.IsActive != nil {
		integration.IsActive = *a.I.IsActive
	}

	err := a.IntegrationRepo.CreateIntegration(ctx, integration)
	if err != nil {
		log.FromContext(ctx).WithError(err).Error("failed to create integration")
		return nil, &ServiceError{ErrMsg: "an error occurred while adding integration", Err: err}
	}

	return integration, nil
}
