// Package notification holds the common notification envelope and the
// per-platform payload builders that shape it for delivery.
package notification

import (
	"github.com/relayhq/relay/datastore"
)

// Notification is the platform-agnostic event a workspace wants fanned
// out. Every metadata field is optional; builders omit the matching
// payload element when a field is absent.
type Notification struct {
	Type     datastore.NotificationType `json:"type"`
	Title    string                     `json:"title"`
	Message  string                     `json:"message"`
	Metadata Metadata                   `json:"metadata"`
}

type Metadata struct {
	TaskID     string `json:"task_id,omitempty"`
	ChannelID  string `json:"channel_id,omitempty"`
	SenderName string `json:"sender_name,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
	Priority   string `json:"priority,omitempty"`
	URL        string `json:"url,omitempty"`
}
