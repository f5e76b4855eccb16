package datastore

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/guregu/null.v4"
)

var ErrIntegrationNotFound = errors.New("integration not found")

type IntegrationPlatform string

const (
	SlackPlatform   IntegrationPlatform = "slack"
	DiscordPlatform IntegrationPlatform = "discord"
	TeamsPlatform   IntegrationPlatform = "teams"
	WebhookPlatform IntegrationPlatform = "webhook"
)

func (i IntegrationPlatform) IsValid() bool {
	switch i {
	case SlackPlatform, DiscordPlatform, TeamsPlatform, WebhookPlatform:
		return true
	}
	return false
}

func (i IntegrationPlatform) String() string {
	return string(i)
}

// NotificationType tags the category of event being announced. The set
// is open on the wire: unknown types are styled with the fallback color
// and still dispatched.
type NotificationType string

const (
	BroadcastNotification        NotificationType = "broadcast"
	TaskAssignmentNotification   NotificationType = "task_assignment"
	DeadlineReminderNotification NotificationType = "deadline_reminder"
	ChannelMessageNotification   NotificationType = "channel_message"
)

func (n NotificationType) String() string {
	return string(n)
}

// StringArray is a jsonb-backed set of strings.
type StringArray []string

func (s StringArray) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		s = StringArray{}
	}
	return json.Marshal(s)
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}

	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported value type %T", value)
	}

	return json.Unmarshal(b, s)
}

// Integration binds a workspace to a third-party webhook destination and
// the set of notification types it subscribes to. Records are owned by
// workspace administrators; the dispatch path only ever reads them.
type Integration struct {
	UID               string              `json:"uid" db:"id"`
	WorkspaceID       string              `json:"workspace_id" db:"workspace_id"`
	Platform          IntegrationPlatform `json:"platform" db:"platform"`
	WebhookURL        string              `json:"webhook_url" db:"webhook_url"`
	NotificationTypes StringArray         `json:"notification_types" db:"notification_types"`
	IsActive          bool                `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" db:"updated_at"`
	DeletedAt null.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// SubscribesTo reports whether the integration is subscribed to the
// given notification type.
func (i *Integration) SubscribesTo(notificationType NotificationType) bool {
	return i.NotificationTypes.Contains(notificationType.String())
}
