// Package slack shapes notifications into Slack Block Kit webhook
// messages.
package slack

import (
	"fmt"

	"github.com/relayhq/relay/notification"
	"github.com/slack-go/slack"
)

// NewMessage builds the Block Kit message for n: a header block with
// the title, a mrkdwn section with the message and, when a deep link is
// present, an actions block with a single "View in App" button. The
// top-level text carries a flattened fallback for notification
// previews.
func NewMessage(n *notification.Notification) *slack.WebhookMessage {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, n.Title, false, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, n.Message, false, false), nil, nil),
	}

	if n.Metadata.URL != "" {
		btn := slack.NewButtonBlockElement("view_in_app", "",
			slack.NewTextBlockObject(slack.PlainTextType, "View in App", false, false))
		btn.URL = n.Metadata.URL

		blocks = append(blocks, slack.NewActionBlock("", btn))
	}

	return &slack.WebhookMessage{
		Text:   fmt.Sprintf("%s: %s", n.Title, n.Message),
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}
