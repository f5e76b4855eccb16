package models

import (
	"errors"
	"strings"

	"github.com/relayhq/relay/datastore"
	"github.com/relayhq/relay/notification"
	"github.com/relayhq/relay/util"
)

type CreateNotification struct {
	WorkspaceID      string    `json:"workspace_id"`
	NotificationType string    `json:"notification_type"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	Metadata         *Metadata `json:"metadata"`
}

type Metadata struct {
	TaskID     string `json:"task_id"`
	ChannelID  string `json:"channel_id"`
	SenderName string `json:"sender_name"`
	DueDate    string `json:"due_date"`
	Priority   string `json:"priority"`
	URL        string `json:"url"`
}

// Validate enforces presence of the required fields only. The
// notification type is deliberately not checked against the known set:
// unknown types dispatch with fallback styling.
func (c *CreateNotification) Validate() error {
	var missing []string

	if util.IsStringEmpty(c.WorkspaceID) {
		missing = append(missing, "workspace_id")
	}

	if util.IsStringEmpty(c.NotificationType) {
		missing = append(missing, "notification_type")
	}

	if util.IsStringEmpty(c.Title) {
		missing = append(missing, "title")
	}

	if len(missing) > 0 {
		return errors.New("Missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

func (c *CreateNotification) Transform() *notification.Notification {
	n := &notification.Notification{
		Type:    datastore.NotificationType(c.NotificationType),
		Title:   c.Title,
		Message: c.Message,
	}

	if c.Metadata != nil {
		n.Metadata = notification.Metadata{
			TaskID:     c.Metadata.TaskID,
			ChannelID:  c.Metadata.ChannelID,
			SenderName: c.Metadata.SenderName,
			DueDate:    c.Metadata.DueDate,
			Priority:   c.Metadata.Priority,
			URL:        c.Metadata.URL,
		}
	}

	return n
}

type NotificationResponse struct {
	Success  bool     `json:"success"`
	Sent     int      `json:"sent"`
	Total    int      `json:"total"`
	Failures []string `json:"failures"`
}

type NoopNotificationResponse struct {
	Success bool   `json:"success"`
	Sent    int    `json:"sent"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateIntegration struct {
	Platform          string   `json:"platform" valid:"required~please provide a platform,supported_platform~unsupported platform"`
	WebhookURL        string   `json:"webhook_url" valid:"required~please provide a webhook url,url~invalid webhook url"`
	NotificationTypes []string `json:"notification_types" valid:"required~please provide at least one notification type"`
	IsActive          *bool    `json:"is_active"`
}

func (c *CreateIntegration) Validate() error {
	return util.Validate(c)
}

type UpdateIntegration struct {
	Platform          string   `json:"platform" valid:"required~please provide a platform,supported_platform~unsupported platform"`
	WebhookURL        string   `json:"webhook_url" valid:"required~please provide a webhook url,url~invalid webhook url"`
	NotificationTypes []string `json:"notification_types" valid:"required~please provide at least one notification type"`
	IsActive          *bool    `json:"is_active"`
}

func (u *UpdateIntegration) Validate() error {
	return util.Validate(u)
}

type IntegrationResponse struct {
	*datastore.Integration
}
