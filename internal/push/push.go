package push

import "context"

// Notification is the visible part of a push alert.
type Notification struct {
	Title string
	Body  string
}

// Pusher delivers transient push alerts. Delivery is best-effort everywhere it
// is used; callers log failures and move on.
type Pusher interface {
	// Send delivers to a single device token.
	Send(ctx context.Context, token string, n Notification, data map[string]string) error
	// SendMulticast delivers to many tokens in one call and reports per-token
	// success and failure counts.
	SendMulticast(ctx context.Context, tokens []string, n Notification, data map[string]string) (success, failure int, err error)
}
