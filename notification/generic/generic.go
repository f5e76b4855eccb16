// Package generic shapes notifications into a flat JSON envelope for
// plain webhook consumers and unrecognized platforms.
package generic

import (
	"time"

	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/notification"
)

type Envelope struct {
	Type      datastore.NotificationType `json:"type"`
	Title     string                     `json:"title"`
	Message   string                     `json:"message"`
	Metadata  notification.Metadata      `json:"metadata"`
	Timestamp string                     `json:"timestamp"`
}

func NewEnvelope(n *notification.Notification) *Envelope {
	return &Envelope{
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
