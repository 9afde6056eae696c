package push

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	"ministryhub-backend/internal/logger"
)

type fcmPusher struct {
	client *messaging.Client
}

// NewFCMPusher wraps a Firebase Cloud Messaging client.
func NewFCMPusher(client *messaging.Client) Pusher {
	return &fcmPusher{client: client}
}

func (p *fcmPusher) Send(ctx context.Context, token string, n Notification, data map[string]string) error {
	logger.ExternalServiceCall("fcm", "Send")
	_, err := p.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
	})
	logger.ExternalServiceResult("fcm", "Send", err)
	if err != nil {
		return fmt.Errorf("fcm send failed: %w", err)
	}
	return nil
}

func (p *fcmPusher) SendMulticast(ctx context.Context, tokens []string, n Notification, data map[string]string) (int, int, error) {
	logger.ExternalServiceCall("fcm", "SendEachForMulticast", "tokens", len(tokens))
	resp, err := p.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
	})
	logger.ExternalServiceResult("fcm", "SendEachForMulticast", err)
	if err != nil {
		return 0, len(tokens), fmt.Errorf("fcm multicast failed: %w", err)
	}
	return resp.SuccessCount, resp.FailureCount, nil
}
