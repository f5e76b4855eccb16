package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/relayhq/relay/api/models"
	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/internal/pkg/metrics"
	"github.com/relayhq/relay/mocks"
	"github.com/relayhq/relay/net"
)

func provideDispatchNotificationService(ctrl *gomock.Controller, n *models.CreateNotification) *DispatchNotificationService {
	return &DispatchNotificationService{
		IntegrationRepo: mocks.NewMockIntegrationRepository(ctrl),
		Sender:          mocks.NewMockSender(ctrl),
		N:               n,
	}
}

func okResponse() *net.Response {
	return &net.Response{Status: "200 OK", StatusCode: http.StatusOK, Body: []byte("ok")}
}

func TestDispatchNotificationService_Run(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		notification *models.CreateNotification
		dbFn         func(ds *DispatchNotificationService)
		wantSummary  *DispatchSummary
		wantErr      bool
		wantErrMsg   string
	}{
		{
			name: "should_dispatch_to_subscribed_integration",
			notification: &models.CreateNotification{
				WorkspaceID:      "w1",
				NotificationType: "broadcast",
				Title:            "Hi",
				Message:          "Hello all",
			},
			dbFn: func(ds *DispatchNotificationService) {
				repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
				repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
					Times(1).
					Return([]datastore.Integration{
						{
							UID:               "in1",
							Platform:          datastore.SlackPlatform,
							WebhookURL:        "https://hooks.slack.com/services/T0/B0",
							NotificationTypes: datastore.StringArray{"broadcast"},
							IsActive:          true,
						},
					}, nil)

				sender, _ := ds.Sender.(*mocks.MockSender)
				sender.EXPECT().SendWebhook(gomock.Any(), "https://hooks.slack.com/services/T0/B0", gomock.Any()).
					Times(1).
					Return(okResponse(), nil)
			},
			wantSummary: &DispatchSummary{Sent: 1, Total: 1, Failures: []string{}},
		},
		{
			name: "should_skip_integration_not_subscribed_to_type",
			notification: &models.CreateNotification{
				WorkspaceID:      "w1",
				NotificationType: "broadcast",
				Title:            "Hi",
				Message:          "Hello all",
			},
			dbFn: func(ds *DispatchNotificationService) {
				repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
				repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
					Times(1).
					Return([]datastore.Integration{
						{
							UID:               "in1",
							Platform:          datastore.SlackPlatform,
							WebhookURL:        "https://hooks.slack.com/services/T0/B0",
							NotificationTypes: datastore.StringArray{"task_assignment"},
							IsActive:          true,
						},
					}, nil)
			},
			wantSummary: &DispatchSummary{Sent: 0, Total: 0, Failures: []string{}},
		},
		{
			name: "should_report_no_op_for_empty_workspace",
			notification: &models.CreateNotification{
				WorkspaceID:      "w2",
				NotificationType: "broadcast",
				Title:            "Hi",
			},
			dbFn: func(ds *DispatchNotificationService) {
				repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
				repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w2").
					Times(1).
					Return([]datastore.Integration{}, nil)
			},
			wantSummary: &DispatchSummary{Sent: 0, Total: 0, Failures: []string{}},
		},
		{
			name: "should_isolate_partial_failure",
			notification: &models.CreateNotification{
				WorkspaceID:      "w1",
				NotificationType: "broadcast",
				Title:            "Hi",
				Message:          "Hello all",
			},
			dbFn: func(ds *DispatchNotificationService) {
				repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
				repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
					Times(1).
					Return([]datastore.Integration{
						{
							UID:               "inA",
							Platform:          datastore.SlackPlatform,
							WebhookURL:        "https://hooks.slack.com/services/T0/A",
							NotificationTypes: datastore.StringArray{"broadcast"},
							IsActive:          true,
						},
						{
							UID:               "inB",
							Platform:          datastore.WebhookPlatform,
							WebhookURL:        "https://ops.example.com/hooks/relay",
							NotificationTypes: datastore.StringArray{"broadcast"},
							IsActive:          true,
						},
					}, nil)

				sender, _ := ds.Sender.(*mocks.MockSender)
				sender.EXPECT().SendWebhook(gomock.Any(), "https://hooks.slack.com/services/T0/A", gomock.Any()).
					Times(1).
					Return(&net.Response{Status: "500 Internal Server Error", StatusCode: http.StatusInternalServerError, Body: []byte("upstream exploded")}, nil)
				sender.EXPECT().SendWebhook(gomock.Any(), "https://ops.example.com/hooks/relay", gomock.Any()).
					Times(1).
					Return(okResponse(), nil)
			},
			wantSummary: &DispatchSummary{Sent: 1, Total: 2, Failures: []string{"slack: upstream exploded"}},
		},
		{
			name: "should_capture_network_error_as_failure",
			notification: &models.CreateNotification{
				WorkspaceID:      "w1",
				NotificationType: "deadline_reminder",
				Title:            "Due soon",
			},
			dbFn: func(ds *DispatchNotificationService) {
				repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
				repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
					Times(1).
					Return([]datastore.Integration{
						{
							UID:               "in1",
							Platform:          datastore.TeamsPlatform,
							WebhookURL:        "https://outlook.office.com/webhook/abc",
							NotificationTypes: datastore.StringArray{"deadline_reminder"},
							IsActive:          true,
						},
					}, nil)

				sender, _ := ds.Sender.(*mocks.MockSender)
				sender.EXPECT().SendWebhook(gomock.Any(), "https://outlook.office.com/webhook/abc", gomock.Any()).
					Times(1).
					Return(&net.Response{Error: "dial tcp: connection refused"}, errors.New("dial tcp: connection refused"))
			},
			wantSummary: &DispatchSummary{Sent: 0, Total: 1, Failures: []string{"teams: dial tcp: connection refused"}},
		},
		{
			name: "should_fail_when_integration_lookup_fails",
			notification: &models.CreateNotification{
				WorkspaceID:      "w1",
				NotificationType: "broadcast",
				Title:            "Hi",
			},
			dbFn: func(ds *DispatchNotificationService) {
				repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
				repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
					Times(1).
					Return(nil, errors.New("connection reset"))
			},
			wantErr:    true,
			wantErrMsg: "an error occurred while loading workspace integrations",
		},
		{
			name: "should_dispatch_unknown_type_to_subscribed_integration",
			notification: &models.CreateNotification{
				WorkspaceID:      "w1",
				NotificationType: "vendor_update",
				Title:            "Heads up",
			},
			dbFn: func(ds *DispatchNotificationService) {
				repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
				repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
					Times(1).
					Return([]datastore.Integration{
						{
							UID:               "in1",
							Platform:          datastore.WebhookPlatform,
							WebhookURL:        "https://ops.example.com/hooks/relay",
							NotificationTypes: datastore.StringArray{"vendor_update"},
							IsActive:          true,
						},
					}, nil)

				sender, _ := ds.Sender.(*mocks.MockSender)
				sender.EXPECT().SendWebhook(gomock.Any(), "https://ops.example.com/hooks/relay", gomock.Any()).
					Times(1).
					Return(okResponse(), nil)
			},
			wantSummary: &DispatchSummary{Sent: 1, Total: 1, Failures: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ds := provideDispatchNotificationService(ctrl, tt.notification)

			if tt.dbFn != nil {
				tt.dbFn(ds)
			}

			summary, err := ds.Run(ctx)
			if tt.wantErr {
				require.Error(t, err)
				serviceErr, ok := err.(*ServiceError)
				require.True(t, ok)
				require.Equal(t, tt.wantErrMsg, serviceErr.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantSummary, summary)
		})
	}
}

func notificationsReceived(t *testing.T, notificationType string) float64 {
	t.Helper()

	families, err := metrics.Reg().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "relay_notifications_received_total" {
			continue
		}

		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "type" && label.GetValue() == notificationType {
					return m.GetCounter().GetValue()
				}
			}
		}
	}

	return 0
}

func TestDispatchNotificationService_Run_CountsNoOpRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Unique type so parallel tests cannot touch this label.
	const notificationType = "maintenance_window"

	ds := provideDispatchNotificationService(ctrl, &models.CreateNotification{
		WorkspaceID:      "w1",
		NotificationType: notificationType,
		Title:            "Scheduled maintenance",
	})

	repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
	repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
		Return([]datastore.Integration{}, nil)

	before := notificationsReceived(t, notificationType)

	summary, err := ds.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, summary.Total)

	require.Equal(t, before+1, notificationsReceived(t, notificationType))
}

func TestDispatchNotificationService_Run_AggregatesAllFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ds := provideDispatchNotificationService(ctrl, &models.CreateNotification{
		WorkspaceID:      "w1",
		NotificationType: "broadcast",
		Title:            "Hi",
	})

	repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
	repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
		Return([]datastore.Integration{
			{UID: "inA", Platform: datastore.SlackPlatform, WebhookURL: "https://a.example.com", NotificationTypes: datastore.StringArray{"broadcast"}, IsActive: true},
			{UID: "inB", Platform: datastore.DiscordPlatform, WebhookURL: "https://b.example.com", NotificationTypes: datastore.StringArray{"broadcast"}, IsActive: true},
		}, nil)

	sender, _ := ds.Sender.(*mocks.MockSender)
	sender.EXPECT().SendWebhook(gomock.Any(), "https://a.example.com", gomock.Any()).
		Return(&net.Response{Status: "502 Bad Gateway", StatusCode: http.StatusBadGateway, Body: []byte("bad gateway")}, nil)
	sender.EXPECT().SendWebhook(gomock.Any(), "https://b.example.com", gomock.Any()).
		Return(&net.Response{Status: "404 Not Found", StatusCode: http.StatusNotFound}, nil)

	summary, err := ds.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, summary.Sent)
	require.Equal(t, 2, summary.Total)

	// Dispatches race each other; failure order is not guaranteed.
	sort.Strings(summary.Failures)
	require.Equal(t, []string{"discord: 404 Not Found", "slack: bad gateway"}, summary.Failures)
}

func TestDispatchNotificationService_Run_BuildsPlatformPayloads(t *testing.T) {
	tests := []struct {
		name     string
		platform datastore.IntegrationPlatform
		assertFn func(t *testing.T, payload []byte)
	}{
		{
			name:     "slack_payload_has_blocks",
			platform: datastore.SlackPlatform,
			assertFn: func(t *testing.T, payload []byte) {
				var body struct {
					Text   string `json:"text"`
					Blocks []struct {
						Type string `json:"type"`
					} `json:"blocks"`
				}
				require.NoError(t, json.Unmarshal(payload, &body))
				require.Equal(t, "Hi: Hello all", body.Text)
				require.Len(t, body.Blocks, 2)
				require.Equal(t, "header", body.Blocks[0].Type)
				require.Equal(t, "section", body.Blocks[1].Type)
			},
		},
		{
			name:     "discord_payload_has_embed",
			platform: datastore.DiscordPlatform,
			assertFn: func(t *testing.T, payload []byte) {
				var body struct {
					Embeds []struct {
						Title string `json:"title"`
						Color int    `json:"color"`
					} `json:"embeds"`
				}
				require.NoError(t, json.Unmarshal(payload, &body))
				require.Len(t, body.Embeds, 1)
				require.Equal(t, "Hi", body.Embeds[0].Title)
				require.Equal(t, 0x3B82F6, body.Embeds[0].Color)
			},
		},
		{
			name:     "teams_payload_is_message_card",
			platform: datastore.TeamsPlatform,
			assertFn: func(t *testing.T, payload []byte) {
				var body struct {
					Type       string `json:"@type"`
					ThemeColor string `json:"themeColor"`
				}
				require.NoError(t, json.Unmarshal(payload, &body))
				require.Equal(t, "MessageCard", body.Type)
				require.Equal(t, "#3B82F6", body.ThemeColor)
			},
		},
		{
			name:     "generic_payload_is_flat_envelope",
			platform: datastore.WebhookPlatform,
			assertFn: func(t *testing.T, payload []byte) {
				var body struct {
					Type    string `json:"type"`
					Title   string `json:"title"`
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(payload, &body))
				require.Equal(t, "broadcast", body.Type)
				require.Equal(t, "Hi", body.Title)
				require.Equal(t, "Hello all", body.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ds := provideDispatchNotificationService(ctrl, &models.CreateNotification{
				WorkspaceID:      "w1",
				NotificationType: "broadcast",
				Title:            "Hi",
				Message:          "Hello all",
			})

			repo, _ := ds.IntegrationRepo.(*mocks.MockIntegrationRepository)
			repo.EXPECT().LoadWorkspaceIntegrations(gomock.Any(), "w1").
				Return([]datastore.Integration{
					{UID: "in1", Platform: tt.platform, WebhookURL: "https://sink.example.com", NotificationTypes: datastore.StringArray{"broadcast"}, IsActive: true},
				}, nil)

			var captured []byte
			sender, _ := ds.Sender.(*mocks.MockSender)
			sender.EXPECT().SendWebhook(gomock.Any(), "https://sink.example.com", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, payload json.RawMessage) (*net.Response, error) {
					captured = payload
					return okResponse(), nil
				})

			summary, err := ds.Run(context.Background())
			require.NoError(t, err)
			require.Equal(t, 1, summary.Sent)

			tt.assertFn(t, captured)
		})
	}
}
