package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/relayhq/relay/database"
	"github.com/relayhq/relay/datastore"
)

var (
	ErrIntegrationNotCreated = errors.New("integration could not be created")
	ErrIntegrationNotUpdated = errors.New("integration could not be updated")
	ErrIntegrationNotDeleted = errors.New("integration could not be deleted")
)

const (
	createIntegration = `
	INSERT INTO relay.integrations (id, workspace_id, platform, webhook_url, notification_types, is_active)
	VALUES ($1, $2, $3, $4, $5, $6);
	`

	baseIntegrationFetch = `
	SELECT i.id, i.workspace_id, i.platform, i.webhook_url,
	i.notification_types, i.is_active, i.created_at, i.updated_at
	FROM relay.integrations AS i
	WHERE i.deleted_at IS NULL
	`

	fetchIntegrationByID = baseIntegrationFetch + ` AND i.id = $1 AND i.workspace_id = $2;`

	fetchWorkspaceIntegrations = baseIntegrationFetch + ` AND i.workspace_id = $1 AND i.is_active = TRUE ORDER BY i.created_at;`

	updateIntegration = `
	UPDATE relay.integrations SET
	platform = $3, webhook_url = $4, notification_types = $5,
	is_active = $6, updated_at = NOW()
	WHERE deleted_at IS NULL AND id = $1 AND workspace_id = $2;
	`

	deleteIntegration = `
	UPDATE relay.integrations SET deleted_at = NOW()
	WHERE deleted_at IS NULL AND id = $1 AND workspace_id = $2;
	`
)

type integrationRepo struct {
	db *sqlx.DB
}

func NewIntegrationRepo(db database.Database) datastore.IntegrationRepository {
	return &integrationRepo{db: db.GetDB()}
}

func (i *integrationRepo) CreateIntegration(ctx context.Context, integration *datastore.Integration) error {
	result, err := i.db.ExecContext(ctx, createIntegration,
		integration.UID,
		integration.WorkspaceID,
		integration.Platform,
		integration.WebhookURL,
		integration.NotificationTypes,
		integration.IsActive,
	)
	if err != nil {
		return err
	}

	nRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if nRows < 1 {
		return ErrIntegrationNotCreated
	}

	return nil
}

func (i *integrationRepo) FindIntegrationByID(ctx context.Context, workspaceID string, uid string) (*datastore.Integration, error) {
	integration := &datastore.Integration{}
	err := i.db.QueryRowxContext(ctx, fetchIntegrationByID, uid, workspaceID).StructScan(integration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, datastore.ErrIntegrationNotFound
		}
		return nil, err
	}

	return integration, nil
}

func (i *integrationRepo) LoadWorkspaceIntegrations(ctx context.Context, workspaceID string) ([]datastore.Integration, error) {
	rows, err := i.db.QueryxContext(ctx, fetchWorkspaceIntegrations, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	integrations := make([]datastore.Integration, 0)
	for rows.Next() {
		var integration datastore.Integration
		if err = rows.StructScan(&integration); err != nil {
			return nil, err
		}

		integrations = append(integrations, integration)
	}

	return integrations, rows.Err()
}

func (i *integrationRepo) UpdateIntegration(ctx context.Context, integration *datastore.Integration) error {
	result, err := i.db.ExecContext(ctx, updateIntegration,
		integration.UID,
		integration.WorkspaceID,
		integration.Platform,
		integration.WebhookURL,
		integration.NotificationTypes,
		integration.IsActive,
	)
	if err != nil {
		return err
	}

	nRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if nRows < 1 {
		return ErrIntegrationNotUpdated
	}

	return nil
}

func (i *integrationRepo) DeleteIntegration(ctx context.Context, workspaceID string, uid string) error {
	result, err := i.db.ExecContext(ctx, deleteIntegration, uid, workspaceID)
	if err != nil {
		return err
	}

	nRows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if nRows < 1 {
		return ErrIntegrationNotDeleted
	}

	return nil
}
