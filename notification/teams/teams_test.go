package teams

import (
	"testing"

	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/notification"
	"github.com/stretchr/testify/require"
)

func TestNewMessageCard(t *testing.T) {
	n := &notification.Notification{
		Type:    datastore.DeadlineReminderNotification,
		Title:   "Due soon",
		Message: "Invoice approvals close Friday",
		Metadata: notification.Metadata{
			SenderName: "Grace",
			URL:        "https://app.example.com/invoices",
		},
	}

	card := NewMessageCard(n)

	require.Equal(t, "MessageCard", card.Type)
	require.Equal(t, "http://schema.org/extensions", card.Context)
	require.Equal(t, "#F59E0B", card.ThemeColor)
	require.Equal(t, "Due soon", card.Summary)

	require.Len(t, card.Sections, 1)
	require.Equal(t, "Due soon", card.Sections[0].ActivityTitle)
	require.Equal(t, "Grace", card.Sections[0].ActivitySubtitle)
	require.Equal(t, "Invoice approvals close Friday", card.Sections[0].Text)

	require.Len(t, card.PotentialAction, 1)
	require.Equal(t, "OpenUri", card.PotentialAction[0].Type)
	require.Equal(t, "View in App", card.PotentialAction[0].Name)
	require.Equal(t, []Target{{OS: "default", URI: "https://app.example.com/invoices"}}, card.PotentialAction[0].Targets)
}

func TestNewMessageCard_EmptyMetadata(t *testing.T) {
	n := &notification.Notification{
		Type:    datastore.BroadcastNotification,
		Title:   "Hi",
		Message: "Hello all",
	}

	card := NewMessageCard(n)

	require.Equal(t, "#3B82F6", card.ThemeColor)
	require.Equal(t, "System", card.Sections[0].ActivitySubtitle)
	require.Nil(t, card.PotentialAction)
}
