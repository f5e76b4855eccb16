package datastore

import "context"

type IntegrationRepository interface {
	CreateIntegration(context.Context, *Integration) error
	FindIntegrationByID(ctx context.Context, workspaceID string, uid string) (*Integration, error)
	LoadWorkspaceIntegrations(ctx context.Context, workspaceID string) ([]Integration, error)
	UpdateIntegration(context.Context, *Integration) error
	DeleteIntegration(ctx context.Context, workspaceID string, uid string) error
}
