// Package teams shapes notifications into legacy Office 365 connector
// MessageCards.
package teams

import (
	"github.com/relayhq/relay/notification"
)

type MessageCard struct {
	Type            string          `json:"@type"`
	Context         string          `json:"@context"`
	ThemeColor      string          `json:"themeColor"`
	Summary         string          `json:"summary"`
	Sections        []Section       `json:"sections"`
	PotentialAction []OpenURIAction `json:"potentialAction,omitempty"`
}

type Section struct {
	ActivityTitle    string `json:"activityTitle"`
	ActivitySubtitle string `json:"activitySubtitle"`
	Text             string `json:"text"`
}

type OpenURIAction struct {
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	Targets []Target `json:"targets"`
}

type Target struct {
	OS  string `json:"os"`
	URI string `json:"uri"`
}

// NewMessageCard builds the card for n. The activity subtitle falls
// back to "System" when the notification carries no sender.
func NewMessageCard(n *notification.Notification) *MessageCard {
	subtitle := n.Metadata.SenderName
	if subtitle == "" {
		subtitle = "System"
	}

	card := &MessageCard{
		Type:       "MessageCard",
		Context:    "http://schema.org/extensions",
		ThemeColor: notification.TypeColor(n.Type).Hex(),
		Summary:    n.Title,
		Sections: []Section{
			{
				ActivityTitle:    n.Title,
				ActivitySubtitle: subtitle,
				Text:             n.Message,
			},
		},
	}

	if n.Metadata.URL != "" {
		card.PotentialAction = []OpenURIAction{
			{
				Type: "OpenUri",
				Name: "View in App",
				Targets: []Target{
					{OS: "default", URI: n.Metadata.URL},
				},
			},
		}
	}

	return card
}
