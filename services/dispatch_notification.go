package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/relayhq/relay/api/models"
	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/internal/pkg/metrics"
	"github.com/relayhq/relay/net"
	"github.com/relayhq/relay/notification"
	"github.com/relayhq/relay/notification/discord"
	"github.com/relayhq/relay/notification/generic"
	"github.com/relayhq/relay/notification/slack"
	"github.com/relayhq/relay/notification/teams"
	"github.com/relayhq/relay/pkg/log"
	"github.com/relayhq/relay/util"
)

// DispatchNotificationService fans one notification out to every active
// integration in the workspace subscribed to its type. Dispatches run
// concurrently with a single attempt each; one failed delivery never
// aborts or delays its siblings.
type DispatchNotificationService struct {
	IntegrationRepo datastore.IntegrationRepository
	Sender          net.Sender

	N *models.CreateNotification
}

type DispatchSummary struct {
	Sent     int
	Total    int
	Failures []string
}

type dispatchOutcome struct {
	platform datastore.IntegrationPlatform
	reason   string // empty on success
}

func (s *DispatchNotificationService) Run(ctx context.Context) (*DispatchSummary, error) {
	integrations, err := s.IntegrationRepo.LoadWorkspaceIntegrations(ctx, s.N.WorkspaceID)
	if err != nil {
		log.FromContext(ctx).WithError(err).Error("failed to load workspace integrations")
		return nil, &ServiceError{ErrMsg: "an error occurred while loading workspace integrations", Err: err}
	}

	notificationType := datastore.NotificationType(s.N.NotificationType)

	targets := make([]datastore.Integration, 0, len(integrations))
	for _, integration := range integrations {
		if integration.SubscribesTo(notificationType) {
			targets = append(targets, integration)
		}
	}

	metrics.IncNotificationReceived(s.N.NotificationType)

	summary := &DispatchSummary{Total: len(targets), Failures: []string{}}
	if len(targets) == 0 {
		return summary, nil
	}

	n := s.N.Transform()

	outcomes := make(chan dispatchOutcome, len(targets))

	var wg sync.WaitGroup
	for _, target := range targets {
		wg.Add(1)
		go func(integration datastore.Integration) {
			defer wg.Done()
			outcomes <- s.dispatch(ctx, &integration, n)
		}(target)
	}

	wg.Wait()
	close(outcomes)

	for outcome := range outcomes {
		if util.IsStringEmpty(outcome.reason) {
			summary.Sent++
			metrics.IncDispatch(outcome.platform.String(), "success")
			continue
		}

		summary.Failures = append(summary.Failures, outcome.reason)
		metrics.IncDispatch(outcome.platform.String(), "failure")
	}

	return summary, nil
}

func (s *DispatchNotificationService) dispatch(ctx context.Context, integration *datastore.Integration, n *notification.Notification) dispatchOutcome {
	outcome := dispatchOutcome{platform: integration.Platform}

	payload, err := json.Marshal(buildPayload(integration.Platform, n))
	if err != nil {
		outcome.reason = fmt.Sprintf("%s: %s", integration.Platform, err)
		return outcome
	}

	resp, err := s.Sender.SendWebhook(ctx, integration.WebhookURL, payload)
	if err != nil {
		log.FromContext(ctx).WithError(err).Errorf("failed to dispatch to %s integration %s", integration.Platform, integration.UID)
		outcome.reason = fmt.Sprintf("%s: %s", integration.Platform, err)
		return outcome
	}

	if !resp.IsSuccess() {
		reason := string(resp.Body)
		if util.IsStringEmpty(reason) {
			reason = resp.Status
		}

		outcome.reason = fmt.Sprintf("%s: %s", integration.Platform, reason)
	}

	return outcome
}

// buildPayload shapes the notification for the integration's platform.
// Unrecognized platforms get the generic envelope.
func buildPayload(platform datastore.IntegrationPlatform, n *notification.Notification) interface{} {
	switch platform {
	case datastore.SlackPlatform:
		return slack.NewMessage(n)
	case datastore.DiscordPlatform:
		return discord.NewMessage(n)
	case datastore.TeamsPlatform:
		return teams.NewMessageCard(n)
	default:
		return generic.NewEnvelope(n)
	}
}
