// Package notify sends desktop notifications over the freedesktop D-Bus
// interface. On platforms without D-Bus everything degrades to a no-op.
package notify

// Urgency follows the freedesktop notification spec levels.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is one message to show the user.
type Notification struct {
	Title      string  // summary line, required
	Body       string  // optional, may carry basic markup
	Icon       string  // icon name or image path, optional
	Timeout    int32   // display time in ms; -1 server default, 0 sticky
	ReplacesID uint32  // non-zero replaces an earlier notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows a notification and returns its server-assigned ID,
	// or 0 when notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close dismisses a previously shown notification.
	Close(id uint32) error
}
