package notification

import (
	"fmt"

	"github.com/relayhq/relay/datastore"
)

// Color is an RGB accent color shared by the Discord and Teams
// builders. Discord wants the integer form, Teams the hex string; both
// read from the same table so the two can never drift apart.
type Color uint32

const (
	ColorBlue  Color = 0x3B82F6
	ColorGreen Color = 0x10B981
	ColorAmber Color = 0xF59E0B
	ColorGray  Color = 0x6B7280
)

var typeColors = map[datastore.NotificationType]Color{
	datastore.BroadcastNotification:        ColorBlue,
	datastore.TaskAssignmentNotification:   ColorGreen,
	datastore.DeadlineReminderNotification: ColorAmber,
}

// TypeColor maps a notification type to its accent color. Unknown types
// fall through to gray.
func TypeColor(t datastore.NotificationType) Color {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return ColorGray
}

func (c Color) Int() int {
	return int(c)
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c))
}
