// Package discord shapes notifications into Discord webhook embeds.
package discord

import (
	"time"

	"github.com/relayhq/relay/notification"
)

type Message struct {
	Embeds []Embed `json:"embeds"`
}

type Embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url,omitempty"`
	Color       int     `json:"color"`
	Timestamp   string  `json:"timestamp"`
	Author      *Author `json:"author,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
}

type Author struct {
	Name string `json:"name"`
}

type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NewMessage builds a single-embed message for n. Optional metadata
// maps to optional embed parts: sender to the author line, the deep
// link to the embed url, priority and due date to inline fields.
func NewMessage(n *notification.Notification) *Message {
	embed := Embed{
		Title:       n.Title,
		Description: n.Message,
		Color:       notification.TypeColor(n.Type).Int(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	if n.Metadata.SenderName != "" {
		embed.Author = &Author{Name: n.Metadata.SenderName}
	}

	if n.Metadata.URL != "" {
		embed.URL = n.Metadata.URL
	}

	if n.Metadata.Priority != "" {
		embed.Fields = append(embed.Fields, Field{Name: "Priority", Value: n.Metadata.Priority, Inline: true})
	}

	if n.Metadata.DueDate != "" {
		embed.Fields = append(embed.Fields, Field{Name: "Due Date", Value: n.Metadata.DueDate, Inline: true})
	}

	return &Message{Embeds: []Embed{embed}}
}
