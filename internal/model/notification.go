package model

import "context"

// NotificationSink receives "ready for verification" signals for freshly
// registered names. It is an observability channel for the driver script,
// not a business entity.
type NotificationSink interface {
	Notify(ctx context.Context, name string)
}

// NotificationLog is a sink whose pending notifications can be checked.
// Ready reports whether a notification is pending for name and consumes it;
// checking an absent name consumes nothing.
type NotificationLog interface {
	NotificationSink
	Ready(ctx context.Context, name string) bool
}
