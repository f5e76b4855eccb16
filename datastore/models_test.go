package datastore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegrationPlatform_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		platform IntegrationPlatform
		want     bool
	}{
		{name: "slack", platform: SlackPlatform, want: true},
		{name: "discord", platform: DiscordPlatform, want: true},
		{name: "teams", platform: TeamsPlatform, want: true},
		{name: "webhook", platform: WebhookPlatform, want: true},
		{name: "unknown", platform: IntegrationPlatform("telegram"), want: false},
		{name: "empty", platform: IntegrationPlatform(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.platform.IsValid())
		})
	}
}

func TestStringArray_Scan(t *testing.T) {
	var s StringArray
	err := s.Scan([]byte(`["broadcast","task_assignment"]`))
	require.NoError(t, err)
	require.Equal(t, StringArray{"broadcast", "task_assignment"}, s)

	var empty StringArray
	err = empty.Scan(nil)
	require.NoError(t, err)
	require.Len(t, empty, 0)

	err = s.Scan(42)
	require.Error(t, err)
}

func TestIntegration_SubscribesTo(t *testing.T) {
	integration := &Integration{
		NotificationTypes: StringArray{"broadcast", "deadline_reminder"},
	}

	require.True(t, integration.SubscribesTo(BroadcastNotification))
	require.True(t, integration.SubscribesTo(DeadlineReminderNotification))
	require.False(t, integration.SubscribesTo(TaskAssignmentNotification))
	require.False(t, integration.SubscribesTo(NotificationType("my_custom_type")))
}
